// Package batch implements the bounded-concurrency batch transfer scheduler.
//
// A single coordinator drains the work list and launches transfers, holding
// the in-flight count at or below a fixed cap. Failures are accumulated per
// file rather than aborting the run: the scheduler resolves only after every
// item has reached a terminal outcome, and the caller always observes either
// total success or the complete failure set.
package batch

import (
	"context"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/uploadtypes"
)

// TransferFunc performs one file's transfer. It is invoked at most once per
// file and must return nil on success or the failure cause otherwise.
type TransferFunc func(ctx context.Context, file uploadtypes.LocalFile) error

// Run drives up to limit concurrent transfers over files until every file
// has completed, then returns the mapping from local path to failure cause.
// An empty mapping means total success. The mapping is complete: one file's
// failure never cancels or blocks the others.
//
// Dispatch order is last-in-first-out relative to the input slice; that is
// an observable, tested policy. Completion order is not specified and
// callers must not rely on it.
//
// A non-positive limit is a configuration error and is rejected before any
// transfer starts. A limit larger than len(files) simply means every file
// launches immediately.
//
// If ctx is cancelled while waiting for capacity, files not yet dispatched
// are recorded as failed with ctx.Err() as the cause and the in-flight
// transfers are drained before Run returns, so the terminal-outcome
// invariant holds even under cancellation.
func Run(
	ctx context.Context,
	files []uploadtypes.LocalFile,
	limit int,
	transfer TransferFunc,
) (map[string]error, error) {
	if limit <= 0 {
		return nil, errors.ErrInvalidConcurrency
	}

	failures := make(map[string]error)
	if len(files) == 0 {
		return failures, nil
	}

	// The slice is drained destructively; copy so callers keep their input.
	pending := make([]uploadtypes.LocalFile, len(files))
	copy(pending, files)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, limit)
	)

	for len(pending) > 0 {
		// Stack pop: dispatch the most recently enumerated file first.
		file := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// Block until a concurrency slot frees. The semaphore is the hard
		// ceiling: a slot is held for the transfer's full duration.
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			mu.Lock()
			failures[file.Path] = ctx.Err()
			for _, remaining := range pending {
				failures[remaining.Path] = ctx.Err()
			}
			mu.Unlock()
			pending = nil
			continue
		}

		wg.Add(1)
		go func(file uploadtypes.LocalFile) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := transfer(ctx, file); err != nil {
				mu.Lock()
				failures[file.Path] = err
				mu.Unlock()
			}
		}(file)
	}

	// Resolve only once pending is empty and in-flight is zero.
	wg.Wait()

	return failures, nil
}
