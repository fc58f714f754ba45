package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-time-keeper/models"
)

// Reference names an entity by kind and local ID.
type Reference struct {
	Kind models.Kind
	ID   uuid.UUID
}

func (r Reference) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ID)
}

// LinkResult is the outcome of [Link]. When Pending is set the entity
// cannot be transmitted yet; Entity then holds whatever could be resolved.
type LinkResult struct {
	Entity models.Entity
	// TagNames are the names of the time entry tags, for time entries only.
	TagNames []string
	Pending  *Reference
}

// Resolved reports whether every reference got a remote ID.
func (r LinkResult) Resolved() bool {
	return r.Pending == nil
}

// Link fills the cached remote IDs of every foreign reference of e.
// A reference keeps its cached remote ID; otherwise it is looked up in sent
// (entities already transmitted in the current pass) and then in state.
func Link(e models.Entity, sent []models.Entity, state *models.AppState) (LinkResult, error) {
	l := linker{sent: sent, state: state}

	switch v := e.(type) {
	case models.WorkspaceData, models.UserData:
		// no references; the user's default workspace is informational
		return LinkResult{Entity: v}, nil
	case models.ClientData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		return l.result(v), nil
	case models.ProjectData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		v.ClientRemoteID = l.optional(models.KindClient, v.ClientID, v.ClientRemoteID)
		return l.result(v), nil
	case models.TaskData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		v.ProjectRemoteID = l.required(models.KindProject, v.ProjectID, v.ProjectRemoteID)
		return l.result(v), nil
	case models.TagData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		return l.result(v), nil
	case models.ProjectUserData:
		v.ProjectRemoteID = l.required(models.KindProject, v.ProjectID, v.ProjectRemoteID)
		v.UserRemoteID = l.required(models.KindUser, v.UserID, v.UserRemoteID)
		return l.result(v), nil
	case models.WorkspaceUserData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		v.UserRemoteID = l.required(models.KindUser, v.UserID, v.UserRemoteID)
		return l.result(v), nil
	case models.TimeEntryData:
		v.WorkspaceRemoteID = l.required(models.KindWorkspace, v.WorkspaceID, v.WorkspaceRemoteID)
		v.ProjectRemoteID = l.optional(models.KindProject, v.ProjectID, v.ProjectRemoteID)
		v.TaskRemoteID = l.optional(models.KindTask, v.TaskID, v.TaskRemoteID)
		v.UserRemoteID = l.required(models.KindUser, v.UserID, v.UserRemoteID)
		res := l.result(v)
		res.TagNames = l.tagNames(v.TagIDs)
		return res, nil
	default:
		return LinkResult{Entity: e}, fmt.Errorf("%w: %T", ErrUnrecognizedEntity, e)
	}
}

// ResolveSelf fills the own remote ID of e from sent or state when e does
// not carry one yet: an entity created and then changed or deleted before
// the first acknowledgement.
func ResolveSelf(e models.Entity, sent []models.Entity, state *models.AppState) models.Entity {
	c := e.Common()
	if c.RemoteID != nil {
		return e
	}
	l := linker{sent: sent, state: state}
	if rid, ok := l.lookup(e.Kind(), c.ID); ok {
		c.RemoteID = models.Int64(rid)
		return models.WithCommon(e, c)
	}
	return e
}

type linker struct {
	sent    []models.Entity
	state   *models.AppState
	pending *Reference
}

func (l *linker) result(e models.Entity) LinkResult {
	return LinkResult{Entity: e, Pending: l.pending}
}

func (l *linker) required(kind models.Kind, id uuid.UUID, cached int64) int64 {
	if cached != 0 {
		return cached
	}
	if rid, ok := l.lookup(kind, id); ok {
		return rid
	}
	l.markPending(kind, id)
	return 0
}

func (l *linker) optional(kind models.Kind, id uuid.UUID, cached *int64) *int64 {
	if cached != nil && *cached != 0 {
		return cached
	}
	if id == uuid.Nil {
		return nil
	}
	if rid, ok := l.lookup(kind, id); ok {
		return models.Int64(rid)
	}
	l.markPending(kind, id)
	return nil
}

func (l *linker) markPending(kind models.Kind, id uuid.UUID) {
	if l.pending == nil {
		l.pending = &Reference{Kind: kind, ID: id}
	}
}

func (l *linker) lookup(kind models.Kind, id uuid.UUID) (int64, bool) {
	if id == uuid.Nil {
		return 0, false
	}
	// the latest acknowledgement wins
	for i := len(l.sent) - 1; i >= 0; i-- {
		s := l.sent[i]
		if s.Kind() != kind || s.Common().ID != id {
			continue
		}
		if rid := s.Common().RemoteID; rid != nil {
			return *rid, true
		}
	}
	return l.state.RemoteIDOf(kind, id)
}

// tagNames drops IDs of unknown tags.
func (l *linker) tagNames(ids []uuid.UUID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := l.tagName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

func (l *linker) tagName(id uuid.UUID) (string, bool) {
	for i := len(l.sent) - 1; i >= 0; i-- {
		if t, ok := l.sent[i].(models.TagData); ok && t.ID == id {
			return t.Name, true
		}
	}
	if l.state == nil {
		return "", false
	}
	t, ok := l.state.Tags[id]
	return t.Name, ok
}
