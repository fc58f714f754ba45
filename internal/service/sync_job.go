package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

type clientSyncJob struct {
	requester Requester
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that requests FullSync followed by
// DownloadEntries on a ticker. The job is idle until Start is called.
func NewClientSyncJob(requester Requester, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{requester: requester, logger: log}
}

// Start implements ClientSyncJob.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
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

func (j *clientSyncJob) tick(ctx context.Context) {
	for _, req := range []models.ServerRequest{models.FullSync{}, models.DownloadEntries{}} {
		if err := j.requester.Request(ctx, req); err != nil {
			j.logger.Debug().Err(err).Str("func", "clientSyncJob.tick").Msg("sync request not queued")
			return
		}
	}
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
