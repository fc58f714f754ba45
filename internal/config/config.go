// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Queue drivers accepted by Storage.Queue.Driver.
const (
	QueueDriverSQLite = "sqlite"
	QueueDriverBolt   = "bolt"
)

// StructuredConfig is the top-level configuration container of the
// go-time-keeper client. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds engine-level settings such as the download window.
	App App `envPrefix:"APP_"`

	// Auth holds optional credentials used to sign in on startup.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the durable queue settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API endpoint and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background loop settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds engine-level settings.
type App struct {
	// DownloadDays is the width of the DownloadEntries window in days.
	// Env: APP_DOWNLOAD_DAYS
	DownloadDays int `env:"DOWNLOAD_DAYS"`

	// LogPath is the client log file. A relative path is resolved next to
	// the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Auth holds credentials. Either Email and Password or APIToken may be set.
type Auth struct {
	// Env: AUTH_EMAIL
	Email string `env:"EMAIL"`
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
	// APIToken skips the login request when set.
	// Env: AUTH_API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// Storage groups the persistence settings.
type Storage struct {
	Queue Queue `envPrefix:"QUEUE_"`
}

// Queue selects the durable queue backend.
type Queue struct {
	// Driver is either "sqlite" or "bolt".
	// Env: STORAGE_QUEUE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite data source name or the BoltDB file path.
	// Env: STORAGE_QUEUE_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote time-tracking API settings.
type Adapter struct {
	// HTTPAddress is the API base URL (e.g. "https://api.track.toggl.com/api/v8").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PresenceTTL is how long a network presence check result is cached.
	// Env: ADAPTER_PRESENCE_TTL
	PresenceTTL time.Duration `env:"PRESENCE_TTL"`
}

// Workers holds background loop settings.
type Workers struct {
	// SyncInterval is the period of the FullSync/DownloadEntries job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// BufferSize is the capacity of the batch and request channels.
	// Env: WORKERS_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DownloadDays: 9,
			LogPath:      "logs",
		},
		Storage: Storage{
			Queue: Queue{
				Driver: QueueDriverSQLite,
				DSN:    "sync_queue.db",
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "https://api.track.toggl.com/api/v8",
			RequestTimeout: 30 * time.Second,
			PresenceTTL:    10 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
			BufferSize:   64,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
