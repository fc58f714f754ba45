// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// spyRequester считает запросы и запоминает их порядок.
type spyRequester struct {
	mu   sync.Mutex
	reqs []models.ServerRequest
	err  error
}

func (s *spyRequester) Request(_ context.Context, req models.ServerRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return s.err
}

func (s *spyRequester) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reqs)
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_RequestsSyncThenDownload(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	// Интервал 10ms, за 55ms должно быть несколько тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	require.GreaterOrEqual(t, spy.count(), 4)
	spy.mu.Lock()
	defer spy.mu.Unlock()
	assert.IsType(t, models.FullSync{}, spy.reqs[0])
	assert.IsType(t, models.DownloadEntries{}, spy.reqs[1])
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.count()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.count(), "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_FailedRequestSkipsDownload(t *testing.T) {
	spy := &spyRequester{err: context.Canceled}
	job := NewClientSyncJob(spy, logger.Nop()).(*clientSyncJob)

	job.tick(context.Background())
	assert.Equal(t, 1, spy.count())
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() { job.Stop(); close(done) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop не завершился после отмены контекста")
	}
}
