// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote time-tracking API.
//
// [RemoteClient] decouples the sync engine from the wire protocol; the
// package ships a resty implementation ([NewHTTPRemoteClient]) and a cached
// presence check ([NewHTTPPresence]).
//
// Transport failures are wrapped with [ErrNetwork]; HTTP statuses are mapped
// to the sentinels of errors.go by mapHTTPError. Callers classify with
// [IsNetworkFailure] and [IsRejection].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteClient is the remote API as seen by the sync engine. Every method
// that acts on behalf of a user takes its API token.
type RemoteClient interface {
	// Create posts a new object and returns the server copy with its id.
	Create(ctx context.Context, token string, obj models.RemoteObject) (models.RemoteObject, error)

	// Update puts obj, addressed by its remote id, and returns the server copy.
	Update(ctx context.Context, token string, obj models.RemoteObject) (models.RemoteObject, error)

	// Delete removes obj, addressed by its remote id.
	Delete(ctx context.Context, token string, obj models.RemoteObject) error

	// Get fetches a single object of kind by its remote id.
	Get(ctx context.Context, token string, kind models.Kind, remoteID int64) (models.RemoteObject, error)

	// ListTimeEntries returns the entries started within days before from.
	ListTimeEntries(ctx context.Context, token string, from time.Time, days int) ([]models.TimeEntryJSON, error)

	// GetChanges returns everything changed since the given time, or the full
	// account when since is nil.
	GetChanges(ctx context.Context, token string, since *time.Time) (models.ChangesJSON, error)

	// GetUser signs in with email and password. A nil user with a nil error
	// means the server returned no account.
	GetUser(ctx context.Context, username, password string) (*models.UserJSON, error)

	// GetUserWithGoogle signs in with a Google access token.
	GetUserWithGoogle(ctx context.Context, accessToken string) (*models.UserJSON, error)

	// CreateUser signs up a new account.
	CreateUser(ctx context.Context, user models.UserJSON) (*models.UserJSON, error)
}

// NetworkPresence reports whether the remote API is currently reachable.
type NetworkPresence interface {
	IsNetworkPresent(ctx context.Context) bool
}
