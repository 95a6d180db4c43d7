// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/homecare-jobs/internal/logger"
)

// DefaultRefreshInterval is used when NewRefreshJob is given a non-positive
// interval.
const DefaultRefreshInterval = 30 * time.Second

// Refresh outcomes reported to a [RefreshRecorder].
const (
	RefreshResultRefreshed = "refreshed"
	RefreshResultSkipped   = "skipped"
	RefreshResultNoSession = "no_session"
	RefreshResultError     = "error"
)

// RefreshJob renews the stored session on a ticker so it never expires while
// the process runs. The job is idle until Start is called.
type RefreshJob struct {
	client   *Client
	interval time.Duration
	recorder RefreshRecorder
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that checks c's session every interval.
// recorder may be nil.
func NewRefreshJob(c *Client, interval time.Duration, recorder RefreshRecorder, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &RefreshJob{
		client:   c,
		interval: interval,
		recorder: recorder,
		logger:   log,
	}
}

// Start stops any previous run, then launches a goroutine that refreshes the
// session every interval until ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("session refresh job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop cancels the running goroutine and blocks until it has exited. It is a
// no-op when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *RefreshJob) tick(ctx context.Context) {
	_, refreshed, err := j.client.refreshIfDue(ctx)

	var result string
	switch {
	case errors.Is(err, ErrNoSession):
		result = RefreshResultNoSession
	case err != nil:
		if ctx.Err() != nil {
			return
		}
		result = RefreshResultError
		j.logger.Err(err).Msg("background session refresh failed")
	case refreshed:
		result = RefreshResultRefreshed
	default:
		result = RefreshResultSkipped
	}

	if j.recorder != nil {
		j.recorder.ObserveSessionRefresh(result)
	}
}
