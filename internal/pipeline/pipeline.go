// Package pipeline fans work items out to a bounded pool of goroutines.
package pipeline

import (
	"runtime"
	"sync"
)

// Process calls fn once for every item using at most workers goroutines
// (NumCPU when workers <= 0) and returns the errors fn produced, in no
// particular order. It returns after every call has finished.
func Process[T any](items []T, workers int, fn func(T) error) []error {
	if len(items) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	workers = min(workers, len(items))

	jobs := make(chan T)
	errs := make(chan error, len(items))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				if err := fn(item); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, item := range items {
		jobs <- item
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
