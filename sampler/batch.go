package sampler

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Batch samples n records on up to workers goroutines.
//
// Implementation:
//   - Stage 1: Under the lock, draw one seed per record from the sampler's
//     stream, in index order.
//   - Stage 2: Worker w owns indices [w·n/W, (w+1)·n/W); record i is drawn
//     from a stream seeded with seeds[i], checking ctx between records.
//
// Record i depends only on the sampler's state and i, so the output is the
// same for every worker count.
//
// Records carry a negative when a policy is configured (not PolicyNone).
// The first worker error cancels the others and is returned; no partial
// result is returned.
func (s *Sampler) Batch(ctx context.Context, n, workers int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("Batch: n=%d: %w", n, ErrBadCount)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}

	seeds := make([]int64, n)
	s.mu.Lock()
	for i := range seeds {
		seeds[i] = s.cfg.rng.Int63()
	}
	s.mu.Unlock()

	out := make([]Record, n)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		w := w
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(0))
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				rng.Seed(seeds[i])
				rec, err := s.record(rng, s.policy)
				if err != nil {
					return fmt.Errorf("Batch: worker %d record %d: %w", w, i, err)
				}
				out[i] = rec
			}
			s.cfg.logger.Debug("worker done", "worker", w, "records", hi-lo)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	s.cfg.logger.Info("batch sampled", "records", n, "workers", workers)
	return out, nil
}
