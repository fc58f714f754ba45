// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig]. Only values that cannot be
// repaired by the client view are rejected here.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Queue.Driver {
	case "", QueueDriverSQLite, QueueDriverBolt:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQueueDriver, cfg.Storage.Queue.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Queue.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Queue.Driver != QueueDriverSQLite && cfg.Storage.Queue.Driver != QueueDriverBolt {
		return fmt.Errorf("%w: %q", ErrUnknownQueueDriver, cfg.Storage.Queue.Driver)
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PresenceTTL < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.BufferSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DownloadDays <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Auth.APIToken == "" && (cfg.Auth.Email == "") != (cfg.Auth.Password == "") {
		return ErrInvalidAuthConfigs
	}

	return nil
}
