// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the closed set of entity kinds the sync engine knows how to
// store, transmit and reconcile. The string value is the envelope type tag
// written to the durable queue and must never change for an existing kind.
type Kind string

const (
	KindWorkspace     Kind = "workspace"
	KindClient        Kind = "client"
	KindProject       Kind = "project"
	KindTask          Kind = "task"
	KindTag           Kind = "tag"
	KindUser          Kind = "user"
	KindProjectUser   Kind = "project_user"
	KindWorkspaceUser Kind = "workspace_user"
	KindTimeEntry     Kind = "time_entry"
)

// Kinds lists every supported kind in dependency order: containers come
// before the entities that reference them.
var Kinds = []Kind{
	KindWorkspace,
	KindUser,
	KindTag,
	KindClient,
	KindProject,
	KindTask,
	KindWorkspaceUser,
	KindProjectUser,
	KindTimeEntry,
}

// SyncState is the derived synchronization state of an entity.
// It is computed from [CommonData] and never stored.
type SyncState int

const (
	// InSync means the local copy equals the last copy acknowledged by the server.
	InSync SyncState = iota
	// CreatePending means the entity has never been acknowledged by the server.
	CreatePending
	// UpdatePending means the entity has a server identity and local changes.
	UpdatePending
	// PendingDelete means the entity is a tombstone that still needs a remote delete.
	PendingDelete
	// Discardable means the entity is a tombstone that never reached the server.
	Discardable
)

// String returns a human-readable name of the state, used in logs.
func (s SyncState) String() string {
	switch s {
	case InSync:
		return "InSync"
	case CreatePending:
		return "CreatePending"
	case UpdatePending:
		return "UpdatePending"
	case PendingDelete:
		return "PendingDelete"
	case Discardable:
		return "Discardable"
	default:
		return "Unknown"
	}
}

// CommonData is the base shape embedded by every synchronizable entity.
type CommonData struct {
	// ID is the client-generated identifier. It is assigned at creation,
	// never changes and is never reused.
	ID uuid.UUID `json:"id"`

	// RemoteID is the server-assigned identity. It is nil until the first
	// successful create acknowledgement and never changes afterwards.
	RemoteID *int64 `json:"remote_id"`

	// ModifiedAt is updated on every local mutation.
	ModifiedAt time.Time `json:"modified_at"`

	// DeletedAt is the tombstone timestamp. Once set the entity is
	// logically deleted.
	DeletedAt *time.Time `json:"deleted_at"`

	// IsDirty is true while the local state differs from the last state
	// acknowledged by the server.
	IsDirty bool `json:"is_dirty"`

	// RemoteRejected is a sticky flag set when the server permanently
	// refused this entity.
	RemoteRejected bool `json:"remote_rejected"`
}

// SyncState derives the synchronization state from the stored fields.
func (c CommonData) SyncState() SyncState {
	switch {
	case c.DeletedAt != nil && c.RemoteID != nil:
		return PendingDelete
	case c.DeletedAt != nil:
		return Discardable
	case c.RemoteID == nil:
		return CreatePending
	case c.IsDirty:
		return UpdatePending
	default:
		return InSync
	}
}

// Common returns the embedded base data.
func (c CommonData) Common() CommonData {
	return c
}

func (c CommonData) entity() {}

// Entity is implemented by every concrete entity type of this package.
// The set is closed: the unexported marker method is only provided by
// [CommonData].
type Entity interface {
	// Kind returns the envelope type tag of the concrete entity.
	Kind() Kind
	// Common returns a copy of the embedded [CommonData].
	Common() CommonData
	entity()
}

// WithCommon returns a copy of e with its base data replaced by c.
// It panics on a type outside the closed entity set.
func WithCommon(e Entity, c CommonData) Entity {
	switch v := e.(type) {
	case WorkspaceData:
		v.CommonData = c
		return v
	case ClientData:
		v.CommonData = c
		return v
	case ProjectData:
		v.CommonData = c
		return v
	case TaskData:
		v.CommonData = c
		return v
	case TagData:
		v.CommonData = c
		return v
	case UserData:
		v.CommonData = c
		return v
	case ProjectUserData:
		v.CommonData = c
		return v
	case WorkspaceUserData:
		v.CommonData = c
		return v
	case TimeEntryData:
		v.CommonData = c
		return v
	default:
		panic("models: unknown entity type")
	}
}

// Int64 returns a pointer to v. A zero v yields nil, matching the "not yet
// known" meaning of a zero remote identifier.
func Int64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

// Time returns a pointer to t.
func Time(t time.Time) *time.Time {
	return &t
}
