package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mock"
	"github.com/MKhiriev/go-time-keeper/models"
)

func newTestProcessor(t *testing.T) (*RequestProcessor, *mock.MockRemoteClient, *recordingSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteClient(ctrl)
	sink := &recordingSink{}
	p := NewRequestProcessor(remote, sink, 9, logger.Nop())
	p.now = func() time.Time { return at }
	return p, remote, sink
}

func onlyMsg[T models.DataMsg](t *testing.T, sink *recordingSink) T {
	t.Helper()
	msgs := sink.all()
	require.Len(t, msgs, 1)
	msg, ok := msgs[0].(T)
	require.True(t, ok, "unexpected message %T", msgs[0])
	return msg
}

// ── Authentication ──

func TestHandle_Authenticate(t *testing.T) {
	cases := []struct {
		name     string
		user     *models.UserJSON
		err      error
		want     models.AuthResult
		wantUser bool
	}{
		{name: "success", user: &models.UserJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(1)}, DefaultWorkspaceRemoteID: 3, APIToken: "tok"}, want: models.AuthSuccess, wantUser: true},
		{name: "no default workspace", user: &models.UserJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(1)}}, want: models.AuthNoDefaultWorkspace, wantUser: true},
		{name: "forbidden", err: fmt.Errorf("login: %w", adapter.ErrForbidden), want: models.AuthInvalidCredentials},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: models.AuthInvalidCredentials},
		{name: "validation", err: adapter.ErrBadRequest, want: models.AuthInvalidCredentials},
		{name: "nil user", want: models.AuthInvalidCredentials},
		{name: "network", err: fmt.Errorf("login: %w: %w", adapter.ErrNetwork, context.DeadlineExceeded), want: models.AuthNetworkError},
		{name: "server", err: adapter.ErrInternalServerError, want: models.AuthSystemError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, remote, sink := newTestProcessor(t)
			remote.EXPECT().GetUser(gomock.Any(), "a@b.c", "secret").Return(tc.user, tc.err)

			p.Handle(context.Background(), models.Authenticate{Username: "a@b.c", Password: "secret"}, nil)

			msg := onlyMsg[models.UserDataPut](t, sink)
			assert.Equal(t, tc.want, msg.Result)
			assert.Equal(t, models.ReasonLogin, msg.Reason)
			if tc.wantUser {
				require.NotNil(t, msg.User)
			} else {
				assert.Nil(t, msg.User)
			}
		})
	}
}

func TestHandle_GoogleLoginWithoutAccount(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	remote.EXPECT().GetUserWithGoogle(gomock.Any(), "g-token").Return(nil, nil)

	p.Handle(context.Background(), models.AuthenticateWithGoogle{AccessToken: "g-token"}, nil)

	msg := onlyMsg[models.UserDataPut](t, sink)
	assert.Equal(t, models.AuthNoGoogleAccount, msg.Result)
	assert.Nil(t, msg.User)
}

func TestHandle_SignUp(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	remote.EXPECT().CreateUser(gomock.Any(), models.UserJSON{Email: "new@x", Password: "pw"}).
		Return(&models.UserJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(8)}, Email: "new@x", DefaultWorkspaceRemoteID: 2, APIToken: "fresh"}, nil)

	p.Handle(context.Background(), models.SignUp{Email: "new@x", Password: "pw"}, nil)

	msg := onlyMsg[models.UserDataPut](t, sink)
	assert.Equal(t, models.AuthSuccess, msg.Result)
	assert.Equal(t, models.ReasonSignup, msg.Reason)
	assert.Equal(t, "fresh", msg.User.APIToken)
}

func TestHandle_SignUpWithGoogle(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	remote.EXPECT().CreateUser(gomock.Any(), models.UserJSON{GoogleAccessToken: "g"}).Return(nil, adapter.ErrUnprocessableEntity)

	p.Handle(context.Background(), models.SignUpWithGoogle{AccessToken: "g"}, nil)

	msg := onlyMsg[models.UserDataPut](t, sink)
	assert.Equal(t, models.AuthInvalidCredentials, msg.Result)
	assert.Equal(t, models.ReasonSignupGoogle, msg.Reason)
}

// ── FullSync ──

func TestNormalizeSince(t *testing.T) {
	now := time.Date(2026, 6, 15, 13, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -1, 0)
	old := now.AddDate(0, -3, 0)
	edge := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, normalizeSince(nil, now))
	assert.Equal(t, &recent, normalizeSince(&recent, now))
	assert.Nil(t, normalizeSince(&old, now))
	assert.Equal(t, &edge, normalizeSince(&edge, now))

	beforeEdge := edge.Add(-time.Second)
	assert.Nil(t, normalizeSince(&beforeEdge, now))
}

func TestHandle_FullSyncOldCursorPullsEverything(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	state := authedState()
	state.FullSyncResult.SyncLastRun = models.Time(at.AddDate(0, -3, 0))

	remote.EXPECT().GetChanges(gomock.Any(), "tok", (*time.Time)(nil)).Return(models.ChangesJSON{}, nil)

	p.Handle(context.Background(), models.FullSync{}, state)

	msg := onlyMsg[models.ReceivedFromSync](t, sink)
	require.NoError(t, msg.Err)
	assert.Equal(t, at, msg.Timestamp)
}

func TestHandle_FullSyncRecentCursor(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	state := authedState()
	since := at.Add(-time.Hour)
	state.FullSyncResult.SyncLastRun = &since
	serverTime := at.Add(time.Minute)

	remote.EXPECT().GetChanges(gomock.Any(), "tok", &since).Return(models.ChangesJSON{
		User:       &models.UserJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(500)}, DefaultWorkspaceRemoteID: 1},
		Workspaces: []models.WorkspaceJSON{{CommonJSON: models.CommonJSON{RemoteID: models.Int64(1)}}},
		TimeEntries: []models.TimeEntryJSON{
			{CommonJSON: models.CommonJSON{RemoteID: models.Int64(2)}, WorkspaceRemoteID: 1, Tags: []string{"ghost"}},
		},
		Timestamp: serverTime,
	}, nil)

	p.Handle(context.Background(), models.FullSync{}, state)

	msg := onlyMsg[models.ReceivedFromSync](t, sink)
	require.NoError(t, msg.Err)
	require.Len(t, msg.Data, 2)
	assert.Equal(t, models.KindWorkspace, msg.Data[0].Kind())
	assert.Empty(t, msg.Data[1].(models.TimeEntryData).TagIDs)
	require.NotNil(t, msg.User)
	assert.Equal(t, state.User.ID, msg.User.ID)
	assert.Equal(t, "tok", msg.User.APIToken)
	assert.Equal(t, serverTime, msg.Timestamp)
}

func TestHandle_FullSyncFailure(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	remote.EXPECT().GetChanges(gomock.Any(), "tok", gomock.Any()).Return(models.ChangesJSON{}, adapter.ErrNetwork)

	p.Handle(context.Background(), models.FullSync{}, authedState())

	msg := onlyMsg[models.ReceivedFromSync](t, sink)
	require.ErrorIs(t, msg.Err, adapter.ErrNetwork)
	assert.Empty(t, msg.Data)
}

func TestHandle_FullSyncWithoutToken(t *testing.T) {
	p, _, sink := newTestProcessor(t)

	p.Handle(context.Background(), models.FullSync{}, models.NewAppState())

	msg := onlyMsg[models.ReceivedFromSync](t, sink)
	require.ErrorIs(t, msg.Err, ErrNotAuthenticated)
}

// ── DownloadEntries ──

func TestHandle_DownloadBackfillsEachObjectOnce(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	state := authedState()
	known := models.WorkspaceData{CommonData: synced(1)}
	state.Workspaces[known.ID] = known

	entries := []models.TimeEntryJSON{
		{CommonJSON: models.CommonJSON{RemoteID: models.Int64(100)}, WorkspaceRemoteID: 1, ProjectRemoteID: models.Int64(30)},
		{CommonJSON: models.CommonJSON{RemoteID: models.Int64(101)}, WorkspaceRemoteID: 1, ProjectRemoteID: models.Int64(30), TaskRemoteID: models.Int64(40)},
		{CommonJSON: models.CommonJSON{RemoteID: models.Int64(102)}, WorkspaceRemoteID: 2},
	}

	remote.EXPECT().ListTimeEntries(gomock.Any(), "tok", at, 9).Return(entries, nil)
	remote.EXPECT().Get(gomock.Any(), "tok", models.KindProject, int64(30)).
		Return(models.ProjectJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(30)}, WorkspaceRemoteID: 1, ClientRemoteID: models.Int64(20)}, nil)
	remote.EXPECT().Get(gomock.Any(), "tok", models.KindClient, int64(20)).
		Return(models.ClientJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(20)}, WorkspaceRemoteID: 1}, nil)
	remote.EXPECT().Get(gomock.Any(), "tok", models.KindTask, int64(40)).Return(nil, adapter.ErrNotFound)
	remote.EXPECT().Get(gomock.Any(), "tok", models.KindWorkspace, int64(2)).
		Return(models.WorkspaceJSON{CommonJSON: models.CommonJSON{RemoteID: models.Int64(2)}}, nil)

	p.Handle(context.Background(), models.DownloadEntries{}, state)

	msg := onlyMsg[models.ReceivedFromDownload](t, sink)
	require.NoError(t, msg.Err)
	kinds := make([]models.Kind, 0, len(msg.Data))
	for _, e := range msg.Data {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []models.Kind{
		models.KindWorkspace, models.KindClient, models.KindProject,
		models.KindTimeEntry, models.KindTimeEntry, models.KindTimeEntry,
	}, kinds)
	assert.Equal(t, at.AddDate(0, 0, -9), msg.NextFrom)
}

func TestHandle_DownloadUsesCursor(t *testing.T) {
	p, remote, sink := newTestProcessor(t)
	state := authedState()
	state.DownloadResult.DownloadFrom = at.AddDate(0, 0, -9)

	remote.EXPECT().ListTimeEntries(gomock.Any(), "tok", at.AddDate(0, 0, -9), 9).Return(nil, nil)

	p.Handle(context.Background(), models.DownloadEntries{}, state)

	msg := onlyMsg[models.ReceivedFromDownload](t, sink)
	require.NoError(t, msg.Err)
	assert.Equal(t, at.AddDate(0, 0, -18), msg.NextFrom)
}

func TestHandle_DownloadBackfillFailure(t *testing.T) {
	p, remote, sink := newTestProcessor(t)

	remote.EXPECT().ListTimeEntries(gomock.Any(), "tok", at, 9).
		Return([]models.TimeEntryJSON{{CommonJSON: models.CommonJSON{RemoteID: models.Int64(1)}, WorkspaceRemoteID: 7}}, nil)
	remote.EXPECT().Get(gomock.Any(), "tok", models.KindWorkspace, int64(7)).Return(nil, adapter.ErrBadGateway)

	p.Handle(context.Background(), models.DownloadEntries{}, authedState())

	msg := onlyMsg[models.ReceivedFromDownload](t, sink)
	require.ErrorIs(t, msg.Err, adapter.ErrBadGateway)
	assert.Empty(t, msg.Data)
}

func TestHandle_UnknownRequestIsIgnored(t *testing.T) {
	p, _, sink := newTestProcessor(t)

	p.Handle(context.Background(), nil, nil)
	assert.Empty(t, sink.all())
}
