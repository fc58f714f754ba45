package state

import (
	"sort"

	"github.com/MKhiriev/go-time-keeper/models"
)

// reduce returns the state after msg. A failed request leaves the state
// untouched and returns the failure.
func reduce(current *models.AppState, msg models.DataMsg) (*models.AppState, error) {
	switch m := msg.(type) {
	case models.ReceivedFromPush:
		next := current.Clone()
		for _, e := range m.Data {
			upsert(next, clean(e))
		}
		for _, e := range m.Removed {
			remove(next, e)
		}
		for _, e := range m.Rejected {
			c := e.Common()
			c.RemoteRejected = true
			upsert(next, models.WithCommon(e, c))
		}
		return next, nil

	case models.ReceivedFromSync:
		if m.Err != nil {
			return current, m.Err
		}
		next := current.Clone()
		applyServerData(next, m.Data)
		if m.User != nil {
			next.User = mergeUser(next.User, *m.User)
		}
		ts := m.Timestamp
		next.FullSyncResult.SyncLastRun = &ts
		return next, nil

	case models.ReceivedFromDownload:
		if m.Err != nil {
			return current, m.Err
		}
		next := current.Clone()
		applyServerData(next, m.Data)
		if !m.NextFrom.IsZero() {
			next.DownloadResult.DownloadFrom = m.NextFrom
		}
		return next, nil

	case models.UserDataPut:
		if m.User == nil || (m.Result != models.AuthSuccess && m.Result != models.AuthNoDefaultWorkspace) {
			return current, nil
		}
		next := current.Clone()
		next.User = mergeUser(next.User, *m.User)
		return next, nil

	default:
		return current, nil
	}
}

// applyServerData stores server copies. Server tombstones drop the entity;
// local entities with pending changes are kept, so the push wins its race.
func applyServerData(next *models.AppState, data []models.Entity) {
	for _, e := range data {
		if e.Common().DeletedAt != nil {
			remove(next, e)
			continue
		}
		if local, ok := find(next, e); ok && local.Common().IsDirty {
			continue
		}
		upsert(next, clean(e))
	}
}

func clean(e models.Entity) models.Entity {
	c := e.Common()
	c.IsDirty = false
	return models.WithCommon(e, c)
}

func mergeUser(current, incoming models.UserData) models.UserData {
	if incoming.APIToken == "" {
		incoming.APIToken = current.APIToken
	}
	return incoming
}

// find looks e up by local ID, then by remote ID.
func find(s *models.AppState, e models.Entity) (models.Entity, bool) {
	c := e.Common()
	if local, ok := s.Get(e.Kind(), c.ID); ok {
		return local, true
	}
	if c.RemoteID == nil {
		return nil, false
	}
	id, ok := s.LocalIDOf(e.Kind(), *c.RemoteID)
	if !ok {
		return nil, false
	}
	return s.Get(e.Kind(), id)
}

// upsert stores e, replacing the entity with the same local ID or, failing
// that, the one with the same remote ID. The stored copy keeps the local ID
// already known to the state.
func upsert(s *models.AppState, e models.Entity) {
	if local, ok := find(s, e); ok && local.Common().ID != e.Common().ID {
		c := e.Common()
		c.ID = local.Common().ID
		e = models.WithCommon(e, c)
	}

	switch v := e.(type) {
	case models.WorkspaceData:
		s.Workspaces[v.ID] = v
	case models.ClientData:
		s.Clients[v.ID] = v
	case models.ProjectData:
		s.Projects[v.ID] = v
	case models.TaskData:
		s.Tasks[v.ID] = v
	case models.TagData:
		s.Tags[v.ID] = v
	case models.UserData:
		s.User = mergeUser(s.User, v)
	case models.ProjectUserData:
		s.ProjectUsers[v.ID] = v
	case models.WorkspaceUserData:
		s.WorkspaceUsers[v.ID] = v
	case models.TimeEntryData:
		s.TimeEntries[v.ID] = v
	}
}

func remove(s *models.AppState, e models.Entity) {
	local, ok := find(s, e)
	if !ok {
		return
	}
	id := local.Common().ID
	switch e.Kind() {
	case models.KindWorkspace:
		delete(s.Workspaces, id)
	case models.KindClient:
		delete(s.Clients, id)
	case models.KindProject:
		delete(s.Projects, id)
	case models.KindTask:
		delete(s.Tasks, id)
	case models.KindTag:
		delete(s.Tags, id)
	case models.KindProjectUser:
		delete(s.ProjectUsers, id)
	case models.KindWorkspaceUser:
		delete(s.WorkspaceUsers, id)
	case models.KindTimeEntry:
		delete(s.TimeEntries, id)
	}
}

func sortByKind(changes []models.Entity) []models.Entity {
	rank := make(map[models.Kind]int, len(models.Kinds))
	for i, k := range models.Kinds {
		rank[k] = i
	}
	sorted := append([]models.Entity(nil), changes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank[sorted[i].Kind()] < rank[sorted[j].Kind()]
	})
	return sorted
}
