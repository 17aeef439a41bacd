package configs

import "time"

// Monitor configures the background check-in monitor loop. The loop
// polls the store every PollInterval for due check-ins; after a
// pass-level failure it sleeps ErrorBackoff before resuming. Every
// store and collaborator call made during a pass carries CallTimeout.
type Monitor struct {
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	ErrorBackoff time.Duration `env:"ERROR_BACKOFF" envDefault:"5m"`
	CallTimeout  time.Duration `env:"CALL_TIMEOUT" envDefault:"10s"`
}
