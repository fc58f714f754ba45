// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// FullSyncResult records the outcome of the last successful full sync.
type FullSyncResult struct {
	// SyncLastRun is the server timestamp of the last changeset applied.
	SyncLastRun *time.Time `json:"sync_last_run"`
}

// DownloadResult records how far back time entries were downloaded.
type DownloadResult struct {
	// DownloadFrom is the end of the next download window.
	DownloadFrom time.Time `json:"download_from"`
}

// AppState is the shared application state. Entities are kept in flat maps
// keyed by local ID; relations are IDs resolved through the lookup methods.
//
// Components must treat an AppState they receive as an immutable snapshot.
type AppState struct {
	User           UserData                        `json:"user"`
	Workspaces     map[uuid.UUID]WorkspaceData     `json:"workspaces"`
	Clients        map[uuid.UUID]ClientData        `json:"clients"`
	Projects       map[uuid.UUID]ProjectData       `json:"projects"`
	Tasks          map[uuid.UUID]TaskData          `json:"tasks"`
	Tags           map[uuid.UUID]TagData           `json:"tags"`
	TimeEntries    map[uuid.UUID]TimeEntryData     `json:"time_entries"`
	WorkspaceUsers map[uuid.UUID]WorkspaceUserData `json:"workspace_users"`
	ProjectUsers   map[uuid.UUID]ProjectUserData   `json:"project_users"`

	FullSyncResult FullSyncResult `json:"full_sync_result"`
	DownloadResult DownloadResult `json:"download_result"`
}

// NewAppState returns an empty state with all collections allocated.
func NewAppState() *AppState {
	return &AppState{
		Workspaces:     make(map[uuid.UUID]WorkspaceData),
		Clients:        make(map[uuid.UUID]ClientData),
		Projects:       make(map[uuid.UUID]ProjectData),
		Tasks:          make(map[uuid.UUID]TaskData),
		Tags:           make(map[uuid.UUID]TagData),
		TimeEntries:    make(map[uuid.UUID]TimeEntryData),
		WorkspaceUsers: make(map[uuid.UUID]WorkspaceUserData),
		ProjectUsers:   make(map[uuid.UUID]ProjectUserData),
	}
}

// Clone returns a copy whose maps can be modified without touching s.
// Entity values are copied; slices inside entities are shared and must be
// replaced, not mutated.
func (s *AppState) Clone() *AppState {
	c := &AppState{
		User:           s.User,
		Workspaces:     cloneMap(s.Workspaces),
		Clients:        cloneMap(s.Clients),
		Projects:       cloneMap(s.Projects),
		Tasks:          cloneMap(s.Tasks),
		Tags:           cloneMap(s.Tags),
		TimeEntries:    cloneMap(s.TimeEntries),
		WorkspaceUsers: cloneMap(s.WorkspaceUsers),
		ProjectUsers:   cloneMap(s.ProjectUsers),
		FullSyncResult: s.FullSyncResult,
		DownloadResult: s.DownloadResult,
	}
	return c
}

func cloneMap[T any](m map[uuid.UUID]T) map[uuid.UUID]T {
	c := make(map[uuid.UUID]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Get returns the entity of the given kind stored under id.
// For [KindUser] only the signed-in user is known.
func (s *AppState) Get(kind Kind, id uuid.UUID) (Entity, bool) {
	if s == nil {
		return nil, false
	}
	switch kind {
	case KindWorkspace:
		return lookup(s.Workspaces, id)
	case KindClient:
		return lookup(s.Clients, id)
	case KindProject:
		return lookup(s.Projects, id)
	case KindTask:
		return lookup(s.Tasks, id)
	case KindTag:
		return lookup(s.Tags, id)
	case KindTimeEntry:
		return lookup(s.TimeEntries, id)
	case KindWorkspaceUser:
		return lookup(s.WorkspaceUsers, id)
	case KindProjectUser:
		return lookup(s.ProjectUsers, id)
	case KindUser:
		if s.User.ID == id {
			return s.User, true
		}
	}
	return nil, false
}

func lookup[T Entity](m map[uuid.UUID]T, id uuid.UUID) (Entity, bool) {
	v, ok := m[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// RemoteIDOf returns the remote identifier of the entity of the given kind,
// if the entity is known and has synced.
func (s *AppState) RemoteIDOf(kind Kind, id uuid.UUID) (int64, bool) {
	e, ok := s.Get(kind, id)
	if !ok {
		return 0, false
	}
	rid := e.Common().RemoteID
	if rid == nil {
		return 0, false
	}
	return *rid, true
}

// LocalIDOf finds the local identifier of the entity of the given kind that
// carries remoteID.
func (s *AppState) LocalIDOf(kind Kind, remoteID int64) (uuid.UUID, bool) {
	if s == nil || remoteID == 0 {
		return uuid.Nil, false
	}
	switch kind {
	case KindWorkspace:
		return findByRemote(s.Workspaces, remoteID)
	case KindClient:
		return findByRemote(s.Clients, remoteID)
	case KindProject:
		return findByRemote(s.Projects, remoteID)
	case KindTask:
		return findByRemote(s.Tasks, remoteID)
	case KindTag:
		return findByRemote(s.Tags, remoteID)
	case KindTimeEntry:
		return findByRemote(s.TimeEntries, remoteID)
	case KindWorkspaceUser:
		return findByRemote(s.WorkspaceUsers, remoteID)
	case KindProjectUser:
		return findByRemote(s.ProjectUsers, remoteID)
	case KindUser:
		if s.User.RemoteID != nil && *s.User.RemoteID == remoteID {
			return s.User.ID, true
		}
	}
	return uuid.Nil, false
}

func findByRemote[T Entity](m map[uuid.UUID]T, remoteID int64) (uuid.UUID, bool) {
	for id, v := range m {
		if rid := v.Common().RemoteID; rid != nil && *rid == remoteID {
			return id, true
		}
	}
	return uuid.Nil, false
}

// HasRemote reports whether an entity of the given kind with remoteID is present.
func (s *AppState) HasRemote(kind Kind, remoteID int64) bool {
	_, ok := s.LocalIDOf(kind, remoteID)
	return ok
}

// TagByName returns the tag with the given name in the workspace identified
// by its remote ID.
func (s *AppState) TagByName(workspaceRemoteID int64, name string) (TagData, bool) {
	if s == nil {
		return TagData{}, false
	}
	for _, t := range s.Tags {
		if t.WorkspaceRemoteID == workspaceRemoteID && t.Name == name {
			return t, true
		}
	}
	return TagData{}, false
}
