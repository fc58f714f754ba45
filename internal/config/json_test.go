package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": { "download_days": 12, "log_path": "/var/log/tk.log" },
		"auth": { "email": "a@b.c", "password": "pw" },
		"storage": { "queue": { "driver": "bolt", "dsn": "/var/lib/tk/queue.bolt" } },
		"adapter": {
			"http_address": "https://example.com/api/v8",
			"request_timeout": "20s",
			"presence_ttl": "5s"
		},
		"workers": { "sync_interval": "10m", "buffer_size": 16 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.App.DownloadDays)
	assert.Equal(t, "/var/log/tk.log", cfg.App.LogPath)
	assert.Equal(t, "a@b.c", cfg.Auth.Email)
	assert.Equal(t, "pw", cfg.Auth.Password)
	assert.Equal(t, QueueDriverBolt, cfg.Storage.Queue.Driver)
	assert.Equal(t, "/var/lib/tk/queue.bolt", cfg.Storage.Queue.DSN)
	assert.Equal(t, "https://example.com/api/v8", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.PresenceTTL)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 16, cfg.Workers.BufferSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))
		_, err := parseJSON(p)
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"workers":{"sync_interval":"soon"}}`), 0o600))
		_, err := parseJSON(p)
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
