package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// userAgent is sent with every request to the time-tracking API.
const userAgent = "go-time-keeper"

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.track.toggl.com/api/v8", 30*time.Second)
//	resp, err := client.R().Get("/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that sends and accepts
// JSON. A non-positive timeout leaves resty's default (no timeout).
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

// WithLogging tags every request with a trace id (kept if the caller set
// one) and logs method, URL, status, duration and size once it completes.
func (c *HTTPClient) WithLogging(log *logger.Logger) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, uuid.NewString())
		}
		return nil
	})
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})
	c.OnError(func(r *resty.Request, err error) {
		log.Debug().Err(err).
			Str("trace_id", r.Header.Get(TraceIDHeader)).
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("request failed")
	})
	return c
}
