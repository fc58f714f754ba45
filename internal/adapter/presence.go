package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

const presenceCheckTimeout = 5 * time.Second

// HTTPPresence checks the API base URL with a HEAD request. Any HTTP answer,
// including an error status, counts as present. The result is cached for
// the configured TTL.
type HTTPPresence struct {
	client *utils.HTTPClient
	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger

	mu        sync.Mutex
	checkedAt time.Time
	present   bool
}

// NewHTTPPresence returns a presence check for adapterCfg.HTTPAddress.
func NewHTTPPresence(adapterCfg config.ClientAdapter, log *logger.Logger) (*HTTPPresence, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 || timeout > presenceCheckTimeout {
		timeout = presenceCheckTimeout
	}

	return &HTTPPresence{
		client: utils.NewHTTPClient(baseURL, timeout).WithLogging(log),
		ttl:    adapterCfg.PresenceTTL,
		now:    time.Now,
		logger: log,
	}, nil
}

// IsNetworkPresent implements [NetworkPresence].
func (p *HTTPPresence) IsNetworkPresent(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if !p.checkedAt.IsZero() && now.Sub(p.checkedAt) < p.ttl {
		return p.present
	}

	_, err := p.client.R().SetContext(ctx).Head("/")
	p.present = err == nil
	p.checkedAt = now

	if err != nil {
		p.logger.Info().Err(err).Str("func", "HTTPPresence.IsNetworkPresent").Msg("remote API unreachable")
	}
	return p.present
}
