package mapper

import (
	"github.com/MKhiriev/go-time-keeper/models"
)

// MapChanges converts a full changeset into entities ordered workspaces,
// tags, clients, projects, tasks, time entries. Entry tags are resolved
// against state and the tags of the same changeset.
func MapChanges(changes models.ChangesJSON, state *models.AppState) ([]models.Entity, *models.UserData) {
	size := len(changes.Workspaces) + len(changes.Tags) + len(changes.Clients) +
		len(changes.Projects) + len(changes.Tasks) + len(changes.TimeEntries)
	data := make([]models.Entity, 0, size)

	for _, w := range changes.Workspaces {
		data = append(data, Map(w, state))
	}

	tags := make([]models.TagData, 0, len(changes.Tags))
	for _, t := range changes.Tags {
		tag := Map(t, state).(models.TagData)
		tags = append(tags, tag)
		data = append(data, tag)
	}

	for _, c := range changes.Clients {
		data = append(data, Map(c, state))
	}
	for _, p := range changes.Projects {
		data = append(data, Map(p, state))
	}
	for _, t := range changes.Tasks {
		data = append(data, Map(t, state))
	}
	for _, te := range changes.TimeEntries {
		data = append(data, MapEntryWithTags(te, state, tags...))
	}

	var user *models.UserData
	if changes.User != nil {
		u := MapUser(*changes.User, state)
		user = &u
	}
	return data, user
}

// MapEntries converts downloaded time entries together with the containers
// fetched for them. The result has the same order as [MapChanges].
func MapEntries(entries []models.TimeEntryJSON, related []models.RemoteObject, state *models.AppState) []models.Entity {
	order := map[models.Kind]int{
		models.KindWorkspace: 0,
		models.KindTag:       1,
		models.KindClient:    2,
		models.KindProject:   3,
		models.KindTask:      4,
	}

	buckets := make([][]models.Entity, len(order))
	for _, r := range related {
		i, ok := order[r.Kind()]
		if !ok {
			continue
		}
		if e := Map(r, state); e != nil {
			buckets[i] = append(buckets[i], e)
		}
	}

	data := make([]models.Entity, 0, len(related)+len(entries))
	for _, b := range buckets {
		data = append(data, b...)
	}
	for _, te := range entries {
		data = append(data, MapEntryWithTags(te, state))
	}
	return data
}
