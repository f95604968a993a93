package concurrency

import (
	"context"
	"sync"
)

// Small reusable worker pool pattern: fan a fixed number of workers out over
// indexed tasks and wait for all of them.

type WorkerFn func(ctx context.Context, index int)

func SimpleWorkerPool(ctx context.Context, concurrency int, fn WorkerFn) {
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			fn(ctx, idx)
		}(i)
	}
	wg.Wait()
}
