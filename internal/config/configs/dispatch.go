package configs

import "time"

// Dispatch configures outbound contact delivery. Every channel posts to
// its own webhook endpoint; a channel without an endpoint is reported
// as unconfigured instead of being attempted.
type Dispatch struct {
	// DirectURL receives direct contact requests.
	DirectURL string `env:"DIRECT_URL"`
	// WebFormURL receives web form submissions.
	WebFormURL string `env:"WEB_FORM_URL"`
	// SMSURL receives SMS send requests.
	SMSURL string `env:"SMS_URL"`
	// ManualURL receives tasks for a human operator to follow up on.
	ManualURL string `env:"MANUAL_URL"`
	// Timeout bounds a single webhook call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
