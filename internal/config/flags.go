package config

import (
	"errors"
	"flag"
	"io"
	"net/url"
	"time"
)

// URLAddress holds an absolute http(s) base URL. It implements flag.Value.
type URLAddress struct {
	URL *url.URL
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a API base URL (e.g. https://api.track.toggl.com/api/v8)
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-presence-ttl network presence cache TTL (e.g. "10s")
//	-queue-driver durable queue driver: sqlite or bolt
//	-d queue DSN
//	-sync-interval sync job period (e.g. "5m")
//	-buffer worker channel capacity
//	-download-days DownloadEntries window in days
//	-log log file path
//	-email / -password / -token credentials
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var address URLAddress
	var requestTimeout, presenceTTL, syncInterval time.Duration
	var queueDriver, queueDSN string
	var bufferSize, downloadDays int
	var logPath string
	var email, password, token string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-time-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&presenceTTL, "presence-ttl", 0, "Network presence cache TTL (e.g., 10s)")
	fs.StringVar(&queueDriver, "queue-driver", "", "Durable queue driver: sqlite or bolt")
	fs.StringVar(&queueDSN, "d", "", "Queue DSN")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync job period (e.g., 5m)")
	fs.IntVar(&bufferSize, "buffer", 0, "Worker channel capacity")
	fs.IntVar(&downloadDays, "download-days", 0, "Download window in days")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&email, "email", "", "Account email")
	fs.StringVar(&password, "password", "", "Account password")
	fs.StringVar(&token, "token", "", "API token")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DownloadDays: downloadDays,
			LogPath:      logPath,
		},
		Auth: Auth{
			Email:    email,
			Password: password,
			APIToken: token,
		},
		Storage: Storage{
			Queue: Queue{
				Driver: queueDriver,
				DSN:    queueDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
			PresenceTTL:    presenceTTL,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			BufferSize:   bufferSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL, or an empty string when unset.
func (a *URLAddress) String() string {
	if a.URL == nil {
		return ""
	}
	return a.URL.String()
}

// Set parses s as an absolute http or https URL.
func (a *URLAddress) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need address with http or https scheme")
	}
	if u.Host == "" {
		return errors.New("need address with a host")
	}

	a.URL = u
	return nil
}
