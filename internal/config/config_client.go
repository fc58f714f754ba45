package config

import (
	"fmt"
	"time"
)

// ClientApp holds engine settings derived from the structured config.
type ClientApp struct {
	// DownloadDays is the DownloadEntries window in days.
	DownloadDays int
	// LogPath is the log file location.
	LogPath string
}

// ClientAuth holds startup credentials.
type ClientAuth struct {
	Email    string
	Password string
	APIToken string
}

// ClientAdapter holds the remote API settings.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// PresenceTTL is how long a presence check is cached.
	PresenceTTL time.Duration
}

// ClientQueue selects the durable queue backend.
type ClientQueue struct {
	Driver string
	DSN    string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	Queue ClientQueue
}

// ClientWorkers contains background loop settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// BufferSize is the capacity of the worker channels.
	BufferSize int
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Auth    ClientAuth
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DownloadDays: cfg.App.DownloadDays,
			LogPath:      cfg.App.LogPath,
		},
		Auth: ClientAuth{
			Email:    cfg.Auth.Email,
			Password: cfg.Auth.Password,
			APIToken: cfg.Auth.APIToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PresenceTTL:    cfg.Adapter.PresenceTTL,
		},
		Storage: ClientStorage{
			Queue: ClientQueue{
				Driver: cfg.Storage.Queue.Driver,
				DSN:    cfg.Storage.Queue.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			BufferSize:   cfg.Workers.BufferSize,
		},
	}
}
