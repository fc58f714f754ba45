// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state owns the application state of the client.
//
// [Store] keeps the current models.AppState snapshot. Local mutations are
// committed with [Store.Commit], which publishes a models.SyncBatch to the
// observer channel; the sync engine reports its outcomes with [Store.Send],
// which runs the reducer. Snapshots handed out are never modified in place.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Store is the state container shared by the UI side and the sync engine.
type Store struct {
	mu      sync.RWMutex
	current *models.AppState
	batches chan models.SyncBatch
	logger  *logger.Logger

	closed    bool
	closeOnce sync.Once
}

// NewStore returns a Store starting from initial (an empty state when nil).
// The observer channel buffers bufferSize batches.
func NewStore(initial *models.AppState, bufferSize int, log *logger.Logger) *Store {
	if initial == nil {
		initial = models.NewAppState()
	}
	if bufferSize < 0 {
		bufferSize = 0
	}
	return &Store{
		current: initial,
		batches: make(chan models.SyncBatch, bufferSize),
		logger:  log,
	}
}

// Observe implements the observer side of the sync engine.
func (s *Store) Observe() <-chan models.SyncBatch {
	return s.batches
}

// Snapshot returns the current state.
func (s *Store) Snapshot() *models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Commit applies local changes and publishes them, together with requests,
// as one batch. Changed entities are marked dirty. The batch is ordered by
// kind dependency so containers are pushed before their dependents.
func (s *Store) Commit(ctx context.Context, changes []models.Entity, requests ...models.ServerRequest) error {
	now := time.Now()

	s.mu.Lock()
	next := s.current.Clone()
	data := make([]models.Entity, 0, len(changes))
	for _, e := range sortByKind(changes) {
		c := e.Common()
		c.IsDirty = true
		c.ModifiedAt = now
		e = models.WithCommon(e, c)
		upsert(next, e)
		data = append(data, e)
	}
	s.current = next
	s.mu.Unlock()

	batch := models.SyncBatch{State: next, SyncData: data, ServerRequests: requests}
	select {
	case s.batches <- batch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Request publishes server requests without entity changes.
func (s *Store) Request(ctx context.Context, requests ...models.ServerRequest) error {
	return s.Commit(ctx, nil, requests...)
}

// Send applies a message of the sync engine. When the message brings a new
// API token, an empty batch is published so changes queued before the login
// get drained; it is dropped if the observer channel is full.
func (s *Store) Send(msg models.DataMsg) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.current, msg)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "Store.Send").Msgf("%T not applied", msg)
		return
	}
	prevToken := s.current.User.APIToken
	s.current = next

	if s.closed || next.User.APIToken == "" || next.User.APIToken == prevToken {
		return
	}
	select {
	case s.batches <- models.SyncBatch{State: next}:
	default:
		s.logger.Warn().Str("func", "Store.Send").Msg("observer busy, queued changes wait for the next batch")
	}
}

// Close closes the observer channel. Commit must not be called afterwards.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.batches)
	})
}
