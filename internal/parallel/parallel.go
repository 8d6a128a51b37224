// Package parallel spreads per-plane work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how plane loops are split.
type Config struct {
	Workers   int // Upper bound on goroutines; <= 1 runs inline.
	MinPixels int // Planes smaller than this many pixels in total run inline.
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		MinPixels: 1 << 14,
	}
}

// Planes calls f(p) for every p in [0, planes). pixels is the number of
// pixels per plane and decides whether splitting is worth it. Calls for
// distinct planes may run concurrently; Planes returns once all are done.
func Planes(planes, pixels int, f func(p int), cfg Config) {
	workers := min(cfg.Workers, planes)
	if workers <= 1 || planes*pixels < cfg.MinPixels {
		for p := 0; p < planes; p++ {
			f(p)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (planes + workers - 1) / workers
	for start := 0; start < planes; start += chunk {
		end := min(start+chunk, planes)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for p := s; p < e; p++ {
				f(p)
			}
		}(start, end)
	}
	wg.Wait()
}
