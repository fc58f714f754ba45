package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		DownloadDays int    `json:"download_days"`
		LogPath      string `json:"log_path"`
	} `json:"app,omitempty"`

	Auth struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		APIToken string `json:"api_token"`
	} `json:"auth,omitempty"`

	Storage struct {
		Queue struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"queue,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PresenceTTL    Duration `json:"presence_ttl"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		BufferSize   int      `json:"buffer_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DownloadDays: jsonCfg.App.DownloadDays,
			LogPath:      jsonCfg.App.LogPath,
		},
		Auth: Auth{
			Email:    jsonCfg.Auth.Email,
			Password: jsonCfg.Auth.Password,
			APIToken: jsonCfg.Auth.APIToken,
		},
		Storage: Storage{
			Queue: Queue{
				Driver: jsonCfg.Storage.Queue.Driver,
				DSN:    jsonCfg.Storage.Queue.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PresenceTTL:    time.Duration(jsonCfg.Adapter.PresenceTTL),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			BufferSize:   jsonCfg.Workers.BufferSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
