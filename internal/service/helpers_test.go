package service

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

var at = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

// recordingSink запоминает все сообщения, пришедшие в state
type recordingSink struct {
	mu   sync.Mutex
	msgs []models.DataMsg
}

func (s *recordingSink) Send(msg models.DataMsg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSink) all() []models.DataMsg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DataMsg(nil), s.msgs...)
}

func newBoltQueue(t *testing.T) store.Queue {
	t.Helper()
	q, err := store.NewBoltQueue(filepath.Join(t.TempDir(), "queue.bolt"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func authedState() *models.AppState {
	s := models.NewAppState()
	s.User = models.UserData{
		CommonData:               models.CommonData{ID: utils.NewLocalID(), RemoteID: models.Int64(500)},
		APIToken:                 "tok",
		DefaultWorkspaceRemoteID: 1,
	}
	return s
}

func dirty() models.CommonData {
	return models.CommonData{ID: utils.NewLocalID(), ModifiedAt: at, IsDirty: true}
}

func synced(remoteID int64) models.CommonData {
	return models.CommonData{ID: utils.NewLocalID(), RemoteID: models.Int64(remoteID), ModifiedAt: at}
}

func online() *models.SyncTest  { return &models.SyncTest{IsConnectionAvailable: true} }
func offline() *models.SyncTest { return &models.SyncTest{IsConnectionAvailable: false} }
