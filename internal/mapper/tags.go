package mapper

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-time-keeper/models"
)

func tagIDs(workspaceRemoteID int64, names []string, state *models.AppState, extra []models.TagData) []uuid.UUID {
	if len(names) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		if t, ok := state.TagByName(workspaceRemoteID, name); ok {
			ids = append(ids, t.ID)
			continue
		}
		if t, ok := findTag(extra, workspaceRemoteID, name); ok {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func findTag(tags []models.TagData, workspaceRemoteID int64, name string) (models.TagData, bool) {
	for _, t := range tags {
		if t.WorkspaceRemoteID == workspaceRemoteID && t.Name == name {
			return t, true
		}
	}
	return models.TagData{}, false
}
