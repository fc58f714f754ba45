// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Envelope is the durable record of an entity mutation not yet acknowledged
// by the server: the kind tag paired with the serialized entity.
type Envelope struct {
	Type    Kind   `json:"type"`
	Payload string `json:"payload"`
}

// ServerRequest is a high-level operation handled by the request pipeline.
// The set is closed: Authenticate, AuthenticateWithGoogle, SignUp,
// SignUpWithGoogle, FullSync and DownloadEntries.
type ServerRequest interface {
	serverRequest()
}

// Authenticate signs in with email and password.
type Authenticate struct {
	Username string
	Password string
}

// AuthenticateWithGoogle signs in with a Google access token.
type AuthenticateWithGoogle struct {
	AccessToken string
}

// SignUp creates an account with email and password.
type SignUp struct {
	Email    string
	Password string
}

// SignUpWithGoogle creates an account from a Google access token.
type SignUpWithGoogle struct {
	AccessToken string
}

// FullSync pulls the full changeset since the last successful run.
type FullSync struct{}

// DownloadEntries pulls a window of recent time entries.
type DownloadEntries struct{}

func (Authenticate) serverRequest()           {}
func (AuthenticateWithGoogle) serverRequest() {}
func (SignUp) serverRequest()                 {}
func (SignUpWithGoogle) serverRequest()       {}
func (FullSync) serverRequest()               {}
func (DownloadEntries) serverRequest()        {}

// SyncTest lets tests override connectivity and observe the outcome of an
// outbound pass.
type SyncTest struct {
	// IsConnectionAvailable replaces the network presence check.
	IsConnectionAvailable bool

	// Continuation is called after the pass with the state the pass used,
	// the reconciled remote objects and the envelopes appended to the queue.
	Continuation func(state *AppState, remoteObjects []Entity, enqueued []Envelope)
}

// SyncBatch is one "entities changed" notification of the state observer.
type SyncBatch struct {
	// State is the snapshot current when the batch was produced.
	State *AppState
	// SyncData lists changed entities in dependency order.
	SyncData []Entity
	// ServerRequests are forwarded to the request pipeline after the pass.
	ServerRequests []ServerRequest
	// SyncTest is nil outside tests.
	SyncTest *SyncTest
}

// AuthResult classifies the outcome of an authentication request.
type AuthResult int

const (
	AuthSuccess AuthResult = iota
	AuthInvalidCredentials
	AuthNoGoogleAccount
	AuthNoDefaultWorkspace
	AuthNetworkError
	AuthSystemError
)

func (r AuthResult) String() string {
	switch r {
	case AuthSuccess:
		return "Success"
	case AuthInvalidCredentials:
		return "InvalidCredentials"
	case AuthNoGoogleAccount:
		return "NoGoogleAccount"
	case AuthNoDefaultWorkspace:
		return "NoDefaultWorkspace"
	case AuthNetworkError:
		return "NetworkError"
	case AuthSystemError:
		return "SystemError"
	default:
		return "Unknown"
	}
}

// AuthChangeReason tells which flow produced an authentication result.
type AuthChangeReason int

const (
	ReasonLogin AuthChangeReason = iota
	ReasonLoginGoogle
	ReasonSignup
	ReasonSignupGoogle
)

// DataMsg is a message consumed by the state reducer.
type DataMsg interface {
	dataMsg()
}

// ReceivedFromPush carries the server-reconciled copies of entities pushed
// in one outbound pass.
type ReceivedFromPush struct {
	// Data are created or updated entities with server identity set.
	Data []Entity
	// Removed are tombstones deleted remotely or discarded locally.
	Removed []Entity
	// Rejected are entities the server refused; they carry RemoteRejected.
	Rejected []Entity
}

// ReceivedFromDownload carries entities fetched by DownloadEntries, or the
// failure of that request.
type ReceivedFromDownload struct {
	Data []Entity
	// NextFrom is the end of the next download window.
	NextFrom time.Time
	Err      error
}

// ReceivedFromSync carries the result of FullSync, or its failure.
type ReceivedFromSync struct {
	Data      []Entity
	User      *UserData
	Timestamp time.Time
	Err       error
}

// UserDataPut carries the outcome of an authentication request. User is nil
// unless the server returned an account.
type UserDataPut struct {
	Result AuthResult
	Reason AuthChangeReason
	User   *UserData
}

func (ReceivedFromPush) dataMsg()     {}
func (ReceivedFromDownload) dataMsg() {}
func (ReceivedFromSync) dataMsg()     {}
func (UserDataPut) dataMsg()          {}
