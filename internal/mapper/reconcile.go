package mapper

import (
	"github.com/MKhiriev/go-time-keeper/models"
)

// Reconcile merges the server reply to a push into the entity that was sent.
// Server fields and identity win; the local ID, the local foreign IDs and
// the tag IDs of sent are kept. The result is not dirty.
func Reconcile(sent models.Entity, reply models.RemoteObject, state *models.AppState) models.Entity {
	mapped := Map(reply, state)
	if mapped == nil || mapped.Kind() != sent.Kind() {
		c := sent.Common()
		c.IsDirty = false
		return models.WithCommon(sent, c)
	}

	c := mapped.Common()
	c.ID = sent.Common().ID
	if c.RemoteID == nil {
		c.RemoteID = sent.Common().RemoteID
	}
	if c.ModifiedAt.IsZero() {
		c.ModifiedAt = sent.Common().ModifiedAt
	}
	c.IsDirty = false
	c.RemoteRejected = false

	return models.WithCommon(keepLocalRefs(mapped, sent), c)
}

func keepLocalRefs(mapped, sent models.Entity) models.Entity {
	switch m := mapped.(type) {
	case models.ClientData:
		s := sent.(models.ClientData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		return m
	case models.ProjectData:
		s := sent.(models.ProjectData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		m.ClientID = pick(s.ClientID, m.ClientID)
		return m
	case models.TaskData:
		s := sent.(models.TaskData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		m.ProjectID = pick(s.ProjectID, m.ProjectID)
		return m
	case models.TagData:
		s := sent.(models.TagData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		return m
	case models.UserData:
		s := sent.(models.UserData)
		m.DefaultWorkspaceID = pick(s.DefaultWorkspaceID, m.DefaultWorkspaceID)
		if m.APIToken == "" {
			m.APIToken = s.APIToken
		}
		return m
	case models.ProjectUserData:
		s := sent.(models.ProjectUserData)
		m.ProjectID = pick(s.ProjectID, m.ProjectID)
		m.UserID = pick(s.UserID, m.UserID)
		return m
	case models.WorkspaceUserData:
		s := sent.(models.WorkspaceUserData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		m.UserID = pick(s.UserID, m.UserID)
		return m
	case models.TimeEntryData:
		s := sent.(models.TimeEntryData)
		m.WorkspaceID = pick(s.WorkspaceID, m.WorkspaceID)
		m.ProjectID = pick(s.ProjectID, m.ProjectID)
		m.TaskID = pick(s.TaskID, m.TaskID)
		m.UserID = pick(s.UserID, m.UserID)
		m.TagIDs = s.TagIDs
		return m
	default:
		return mapped
	}
}

func pick[T comparable](local, mapped T) T {
	var zero T
	if local != zero {
		return local
	}
	return mapped
}
