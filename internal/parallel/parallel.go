// Package parallel fans independent work items out to a bounded set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of worker goroutines.
	MinItems   int  // Below this many items work runs sequentially.
}

// DefaultConfig returns defaults based on CPU count.
//
// Items are expected to be coarse (a whole forward pass each), so
// even a handful of them is worth spreading over workers.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   2,
	}
}

// Sequential returns a configuration that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for every i in [0, n).
//
// Workers claim indices one at a time, so items of uneven cost are
// balanced. Falls back to a plain loop when parallelism is disabled,
// n is below MinItems, or only one worker is configured.
func For(n int, f func(i int), cfg Config) {
	workers := min(cfg.NumWorkers, n)
	if !cfg.Enabled || n < cfg.MinItems || workers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}
