package simulation

import (
	"context"
	"sync"
)

const minParallelChunk = 64

// parallelFor runs fn over chunks of [0, n) across a small number of
// goroutines, adapted from the teacher's ParallelFor with an added
// context check: a cancelled ctx stops every worker from starting new
// chunks of work and parallelFor returns ctx.Err() once all in-flight
// chunks finish.
func parallelFor(ctx context.Context, n int, fn func(start, end int)) error {
	const numWorkers = 4

	if n <= minParallelChunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(0, n)
		return nil
	}

	workers := numWorkers
	if n/minParallelChunk < workers {
		workers = n / minParallelChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
	return ctx.Err()
}
