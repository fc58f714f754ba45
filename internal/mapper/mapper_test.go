package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

var at = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func remote(id int64) models.CommonJSON {
	return models.CommonJSON{RemoteID: models.Int64(id), ModifiedAt: at}
}

func stateWithWorkspace(remoteID int64) (*models.AppState, uuid.UUID) {
	s := models.NewAppState()
	id := uuid.New()
	s.Workspaces[id] = models.WorkspaceData{CommonData: models.CommonData{ID: id, RemoteID: models.Int64(remoteID)}, Name: "ws"}
	return s, id
}

// ── Map ──

func TestMap_ReusesStateIdentity(t *testing.T) {
	state, wsID := stateWithWorkspace(10)

	got := Map(models.WorkspaceJSON{CommonJSON: remote(10), Name: "renamed"}, state)

	ws, ok := got.(models.WorkspaceData)
	require.True(t, ok)
	assert.Equal(t, wsID, ws.ID)
	assert.Equal(t, "renamed", ws.Name)
	assert.False(t, ws.IsDirty)
	assert.Equal(t, models.InSync, ws.SyncState())
}

func TestMap_DerivesIdentityForUnknownObject(t *testing.T) {
	a := Map(models.ClientJSON{CommonJSON: remote(5), WorkspaceRemoteID: 10}, nil)
	b := Map(models.ClientJSON{CommonJSON: remote(5), WorkspaceRemoteID: 10}, models.NewAppState())

	assert.Equal(t, a.Common().ID, b.Common().ID)
	assert.Equal(t, utils.RemoteDerivedID(string(models.KindClient), 5), a.Common().ID)
	assert.Equal(t, utils.RemoteDerivedID(string(models.KindWorkspace), 10), a.(models.ClientData).WorkspaceID)
}

func TestMap_ProjectReferences(t *testing.T) {
	state, wsID := stateWithWorkspace(10)

	got := Map(models.ProjectJSON{
		CommonJSON:        remote(30),
		Name:              "P",
		Color:             "7",
		WorkspaceRemoteID: 10,
		ClientRemoteID:    models.Int64(20),
	}, state).(models.ProjectData)

	assert.Equal(t, wsID, got.WorkspaceID)
	assert.Equal(t, 7, got.Color)
	assert.Equal(t, utils.RemoteDerivedID(string(models.KindClient), 20), got.ClientID)
	require.NotNil(t, got.ClientRemoteID)
	assert.Equal(t, int64(20), *got.ClientRemoteID)
}

func TestMap_ProjectColor(t *testing.T) {
	tests := []struct {
		name      string
		color     string
		hex       string
		wantColor int
		wantHex   string
	}{
		{name: "palette index", color: "3", hex: "#4dc3ff", wantColor: 3, wantHex: "#4dc3ff"},
		{name: "empty", wantHex: ""},
		{name: "hex in color field", color: "#06aaf5", wantHex: "#06aaf5"},
		{name: "hex field wins", color: "teal", hex: "#008080", wantHex: "#008080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(models.ProjectJSON{CommonJSON: remote(30), Color: tt.color, HexColor: tt.hex}, nil).(models.ProjectData)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, tt.wantHex, got.HexColor)
		})
	}
}

func TestMap_ProjectWithoutClient(t *testing.T) {
	got := Map(models.ProjectJSON{CommonJSON: remote(30), WorkspaceRemoteID: 10}, nil).(models.ProjectData)
	assert.Equal(t, uuid.Nil, got.ClientID)
	assert.Nil(t, got.ClientRemoteID)
}

func TestMap_ServerTombstone(t *testing.T) {
	deleted := at.Add(time.Hour)
	got := Map(models.TagJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(4), DeletedAt: &deleted}}, nil)
	assert.Equal(t, models.PendingDelete, got.Common().SyncState())
}

func TestMap_RunningEntry(t *testing.T) {
	got := Map(models.TimeEntryJSON{CommonJSON: remote(1), StartTime: at, Duration: -at.Unix(), WorkspaceRemoteID: 10}, nil)
	assert.Equal(t, models.TimeEntryRunning, got.(models.TimeEntryData).State)
}

// ── Tags ──

func TestMapEntryWithTags_UnknownTagOmitted(t *testing.T) {
	state, wsID := stateWithWorkspace(10)
	tagID := uuid.New()
	state.Tags[tagID] = models.TagData{
		CommonData:        models.CommonData{ID: tagID, RemoteID: models.Int64(40)},
		Name:              "billable",
		WorkspaceID:       wsID,
		WorkspaceRemoteID: 10,
	}

	got := MapEntryWithTags(models.TimeEntryJSON{
		CommonJSON:        remote(1),
		StartTime:         at,
		StopTime:          models.Time(at.Add(time.Hour)),
		Duration:          3600,
		WorkspaceRemoteID: 10,
		Tags:              []string{"billable", "ghost"},
	}, state)

	assert.Equal(t, []uuid.UUID{tagID}, got.TagIDs)
	assert.Equal(t, models.TimeEntryFinished, got.State)
}

func TestMapEntryWithTags_OtherWorkspaceTagIgnored(t *testing.T) {
	state := models.NewAppState()
	tagID := uuid.New()
	state.Tags[tagID] = models.TagData{CommonData: models.CommonData{ID: tagID}, Name: "x", WorkspaceRemoteID: 99}

	got := MapEntryWithTags(models.TimeEntryJSON{CommonJSON: remote(1), WorkspaceRemoteID: 10, Tags: []string{"x"}}, state)
	assert.Empty(t, got.TagIDs)
}

// ── MapChanges ──

func TestMapChanges_OrderAndChangesetTags(t *testing.T) {
	changes := models.ChangesJSON{
		User:        &models.UserJSON{CommonJSON: remote(100), Email: "u@x", DefaultWorkspaceRemoteID: 10, APIToken: "tok"},
		TimeEntries: []models.TimeEntryJSON{{CommonJSON: remote(1), WorkspaceRemoteID: 10, Tags: []string{"new", "ghost"}}},
		Tasks:       []models.TaskJSON{{CommonJSON: remote(2), WorkspaceRemoteID: 10, ProjectRemoteID: 3}},
		Projects:    []models.ProjectJSON{{CommonJSON: remote(3), WorkspaceRemoteID: 10}},
		Clients:     []models.ClientJSON{{CommonJSON: remote(4), WorkspaceRemoteID: 10}},
		Tags:        []models.TagJSON{{CommonJSON: remote(5), Name: "new", WorkspaceRemoteID: 10}},
		Workspaces:  []models.WorkspaceJSON{{CommonJSON: remote(10)}},
	}

	data, user := MapChanges(changes, models.NewAppState())

	kinds := make([]models.Kind, 0, len(data))
	for _, e := range data {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []models.Kind{
		models.KindWorkspace, models.KindTag, models.KindClient,
		models.KindProject, models.KindTask, models.KindTimeEntry,
	}, kinds)

	// задача и проект из одного changeset-а ссылаются на один и тот же ID
	assert.Equal(t, data[3].Common().ID, data[4].(models.TaskData).ProjectID)

	te := data[5].(models.TimeEntryData)
	assert.Equal(t, []uuid.UUID{data[1].Common().ID}, te.TagIDs)

	require.NotNil(t, user)
	assert.Equal(t, "tok", user.APIToken)
	assert.Equal(t, data[0].Common().ID, user.DefaultWorkspaceID)
}

func TestMapEntries_Order(t *testing.T) {
	data := MapEntries(
		[]models.TimeEntryJSON{{CommonJSON: remote(1), WorkspaceRemoteID: 10}},
		[]models.RemoteObject{
			models.ProjectJSON{CommonJSON: remote(3), WorkspaceRemoteID: 10},
			models.WorkspaceJSON{CommonJSON: remote(10)},
		},
		nil,
	)

	require.Len(t, data, 3)
	assert.Equal(t, models.KindWorkspace, data[0].Kind())
	assert.Equal(t, models.KindProject, data[1].Kind())
	assert.Equal(t, models.KindTimeEntry, data[2].Kind())
}

// ── ToRemote / Reconcile ──

func TestToRemote_Project(t *testing.T) {
	p := models.ProjectData{
		CommonData:        models.CommonData{ID: uuid.New(), ModifiedAt: at, DeletedAt: models.Time(at)},
		Name:              "P",
		Color:             3,
		WorkspaceRemoteID: 10,
		ClientRemoteID:    models.Int64(20),
	}

	got := ToRemote(p).(models.ProjectJSON)
	assert.Nil(t, got.RemoteID)
	assert.Nil(t, got.DeletedAt)
	assert.Equal(t, "3", got.Color)
	assert.Equal(t, int64(10), got.WorkspaceRemoteID)
	assert.Equal(t, int64(20), *got.ClientRemoteID)
}

func TestEntryToRemote_Duration(t *testing.T) {
	finished := models.TimeEntryData{State: models.TimeEntryFinished, StartTime: at, StopTime: models.Time(at.Add(90 * time.Minute))}
	running := models.TimeEntryData{State: models.TimeEntryRunning, StartTime: at}

	assert.Equal(t, int64(5400), EntryToRemote(finished, []string{"a"}).Duration)
	assert.Equal(t, -at.Unix(), EntryToRemote(running, nil).Duration)
	assert.Equal(t, []string{}, ToRemote(running).(models.TimeEntryJSON).Tags)
}

func TestReconcile_KeepsLocalIdentity(t *testing.T) {
	localID, wsID, tagID := uuid.New(), uuid.New(), uuid.New()
	sent := models.TimeEntryData{
		CommonData:        models.CommonData{ID: localID, ModifiedAt: at, IsDirty: true},
		Description:       "draft",
		WorkspaceID:       wsID,
		WorkspaceRemoteID: 10,
		TagIDs:            []uuid.UUID{tagID},
	}
	reply := models.TimeEntryJSON{CommonJSON: remote(77), Description: "draft", WorkspaceRemoteID: 10, Tags: []string{"t"}}

	got := Reconcile(sent, reply, models.NewAppState()).(models.TimeEntryData)

	assert.Equal(t, localID, got.ID)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, int64(77), *got.RemoteID)
	assert.Equal(t, wsID, got.WorkspaceID)
	assert.Equal(t, []uuid.UUID{tagID}, got.TagIDs)
	assert.Equal(t, models.InSync, got.SyncState())
}

func TestReconcile_UserKeepsToken(t *testing.T) {
	sent := models.UserData{CommonData: models.CommonData{ID: uuid.New(), RemoteID: models.Int64(1), IsDirty: true}, APIToken: "tok"}

	got := Reconcile(sent, models.UserJSON{CommonJSON: remote(1), Email: "new@x"}, nil).(models.UserData)
	assert.Equal(t, "tok", got.APIToken)
	assert.Equal(t, "new@x", got.Email)
	assert.Equal(t, sent.ID, got.ID)
}
