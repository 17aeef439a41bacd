package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := newKeyedMutex()

	var mu sync.Mutex
	inCritical := map[string]int{}
	maxSeen := map[string]int{}

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b"} {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				unlock := km.Lock(key)
				defer unlock()

				mu.Lock()
				inCritical[key]++
				if inCritical[key] > maxSeen[key] {
					maxSeen[key] = inCritical[key]
				}
				mu.Unlock()

				mu.Lock()
				inCritical[key]--
				mu.Unlock()
			}(key)
		}
	}
	wg.Wait()

	require.Equal(t, 1, maxSeen["a"])
	require.Equal(t, 1, maxSeen["b"])
	require.Empty(t, km.locks, "all entries must be released")
}
