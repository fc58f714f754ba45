package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/models"
)

// endpoint describes how a kind is addressed by the API: the collection path
// and the key wrapping the object in request bodies.
type endpoint struct {
	path string
	key  string
}

var endpoints = map[models.Kind]endpoint{
	models.KindWorkspace:     {path: "/workspaces", key: "workspace"},
	models.KindClient:        {path: "/clients", key: "client"},
	models.KindProject:       {path: "/projects", key: "project"},
	models.KindTask:          {path: "/tasks", key: "task"},
	models.KindTag:           {path: "/tags", key: "tag"},
	models.KindTimeEntry:     {path: "/time_entries", key: "time_entry"},
	models.KindProjectUser:   {path: "/project_users", key: "project_user"},
	models.KindWorkspaceUser: {path: "/workspace_users", key: "workspace_user"},
	models.KindUser:          {path: "/me", key: "user"},
}

func endpointOf(kind models.Kind) (endpoint, error) {
	ep, ok := endpoints[kind]
	if !ok {
		return endpoint{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return ep, nil
}

// objectPath returns the address of a single object.
func objectPath(kind models.Kind, remoteID int64) (string, error) {
	ep, err := endpointOf(kind)
	if err != nil {
		return "", err
	}
	if kind == models.KindUser {
		return ep.path, nil
	}
	return fmt.Sprintf("%s/%d", ep.path, remoteID), nil
}

// dataEnvelope is the response wrapper of single-object endpoints.
type dataEnvelope struct {
	Since int64           `json:"since,omitempty"`
	Data  json.RawMessage `json:"data"`
}

func (e dataEnvelope) empty() bool {
	return len(e.Data) == 0 || bytes.Equal(e.Data, []byte("null"))
}

func decodeObject(kind models.Kind, raw []byte) (models.RemoteObject, error) {
	switch kind {
	case models.KindWorkspace:
		return decodeAs[models.WorkspaceJSON](raw)
	case models.KindClient:
		return decodeAs[models.ClientJSON](raw)
	case models.KindProject:
		return decodeAs[models.ProjectJSON](raw)
	case models.KindTask:
		return decodeAs[models.TaskJSON](raw)
	case models.KindTag:
		return decodeAs[models.TagJSON](raw)
	case models.KindTimeEntry:
		return decodeAs[models.TimeEntryJSON](raw)
	case models.KindProjectUser:
		return decodeAs[models.ProjectUserJSON](raw)
	case models.KindWorkspaceUser:
		return decodeAs[models.WorkspaceUserJSON](raw)
	case models.KindUser:
		return decodeAs[models.UserJSON](raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

func decodeAs[T models.RemoteObject](raw []byte) (models.RemoteObject, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", v.Kind(), err)
	}
	return v, nil
}

// changesData is the "data" document of GET /me?with_related_data=true.
type changesData struct {
	models.UserJSON

	Workspaces  []models.WorkspaceJSON `json:"workspaces"`
	Tags        []models.TagJSON       `json:"tags"`
	Clients     []models.ClientJSON    `json:"clients"`
	Projects    []models.ProjectJSON   `json:"projects"`
	Tasks       []models.TaskJSON      `json:"tasks"`
	TimeEntries []models.TimeEntryJSON `json:"time_entries"`
}
