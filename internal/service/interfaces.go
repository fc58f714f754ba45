// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service is the offline synchronization engine.
//
// The [Dispatcher] turns changed entities into ordered, at-least-once
// delivery through the durable queue. The [RequestProcessor] runs
// authentication, full sync and download requests one at a time. The
// [Manager] feeds both from the state observer on two worker loops, and the
// [ClientSyncJob] triggers periodic pulls.
//
// Components never mutate the state they read; every outcome is sent back
// as a models.DataMsg to a [Sink].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
)

// Sink consumes the outcome messages of the engine.
type Sink interface {
	Send(msg models.DataMsg)
}

// StateSource is the observer side of the state container.
type StateSource interface {
	// Observe returns the channel of change batches.
	Observe() <-chan models.SyncBatch
	// Snapshot returns the current state. Callers must not modify it.
	Snapshot() *models.AppState
}

// StateStore is the state container seen by the engine: observer and sink.
type StateStore interface {
	Sink
	StateSource
}

// OutboundProcessor pushes one batch of changed entities.
type OutboundProcessor interface {
	Process(ctx context.Context, batch models.SyncBatch) (DispatchResult, error)
}

// RequestHandler executes one server request against a state snapshot.
// Failures are reported through the sink, never returned.
type RequestHandler interface {
	Handle(ctx context.Context, req models.ServerRequest, state *models.AppState)
}

// Requester accepts server requests for the request pipeline.
type Requester interface {
	Request(ctx context.Context, req models.ServerRequest) error
}

// ClientSyncJob periodically asks for a full sync and an entries download.
type ClientSyncJob interface {
	// Start launches the background goroutine, stopping a running one first.
	// A zero or negative interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}
