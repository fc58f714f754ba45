package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
	}{
		{name: "https url", input: "https://api.track.toggl.com/api/v8"},
		{name: "http localhost", input: "http://localhost:8080/api"},
		{name: "no scheme", input: "localhost:8080", expectError: true, errorMsg: "http or https"},
		{name: "ftp scheme", input: "ftp://host/x", expectError: true, errorMsg: "http or https"},
		{name: "no host", input: "https:///path", expectError: true, errorMsg: "host"},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr URLAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestURLAddress_StringEmpty(t *testing.T) {
	var addr URLAddress
	assert.Equal(t, "", addr.String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "https://example.com/api/v8",
				"-request-timeout", "15s",
				"-presence-ttl", "3s",
				"-queue-driver", "bolt",
				"-d", "/tmp/q.bolt",
				"-sync-interval", "1m",
				"-buffer", "32",
				"-download-days", "7",
				"-log", "/tmp/client.log",
				"-email", "a@b.c",
				"-password", "secret",
				"-token", "tok",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://example.com/api/v8", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 3*time.Second, cfg.Adapter.PresenceTTL)
				assert.Equal(t, QueueDriverBolt, cfg.Storage.Queue.Driver)
				assert.Equal(t, "/tmp/q.bolt", cfg.Storage.Queue.DSN)
				assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, 32, cfg.Workers.BufferSize)
				assert.Equal(t, 7, cfg.App.DownloadDays)
				assert.Equal(t, "/tmp/client.log", cfg.App.LogPath)
				assert.Equal(t, "a@b.c", cfg.Auth.Email)
				assert.Equal(t, "secret", cfg.Auth.Password)
				assert.Equal(t, "tok", cfg.Auth.APIToken)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not a url"})
	assert.Error(t, err)
}
