// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the durable outbound queue of the sync engine and the
// envelope codec of the items it carries.
//
// Two backends implement [Queue]: SQLite (mattn/go-sqlite3, schema managed by
// goose, statements built with squirrel) and BoltDB (bbolt). Both keep
// strict FIFO order per channel and survive process restarts.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_mock.go -package=mock

// Queue channels.
const (
	// ChannelSyncOut holds envelopes waiting to be sent to the server.
	ChannelSyncOut = "SYNC_OUT"
	// ChannelSyncRejected holds envelopes the server refused permanently.
	ChannelSyncRejected = "SYNC_REJECTED"
)

// Queue is a durable FIFO of string items grouped by channel.
type Queue interface {
	// Size returns the number of items in channel.
	Size(ctx context.Context, channel string) (int, error)
	// Peek returns the head of channel without removing it. ok is false when
	// the channel is empty.
	Peek(ctx context.Context, channel string) (item string, ok bool, err error)
	// Enqueue appends item to the tail of channel.
	Enqueue(ctx context.Context, channel, item string) error
	// Dequeue removes and returns the head of channel.
	Dequeue(ctx context.Context, channel string) (item string, ok bool, err error)
	// Reset removes every item of channel.
	Reset(ctx context.Context, channel string) error
	// Close releases the underlying storage.
	Close() error
}
