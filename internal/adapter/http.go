package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Basic auth passwords the API expects next to a token in the user field.
const (
	apiTokenPassword    = "api_token"
	googleTokenPassword = "google_access_token"
)

// HTTPRemoteClient is the REST implementation of [RemoteClient].
type HTTPRemoteClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteClient returns a client bound to adapterCfg.HTTPAddress.
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRemoteClient(adapterCfg config.ClientAdapter, log *logger.Logger) (*HTTPRemoteClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &HTTPRemoteClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).WithLogging(log),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [RemoteClient]. It POSTs {"<kind>": obj} to the
// collection path of the kind and decodes the "data" document.
func (h *HTTPRemoteClient) Create(ctx context.Context, token string, obj models.RemoteObject) (models.RemoteObject, error) {
	kind := obj.Kind()
	if kind == models.KindUser {
		return nil, fmt.Errorf("%w: create %s", ErrUnsupportedKind, kind)
	}
	ep, err := endpointOf(kind)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().Str("func", "HTTPRemoteClient.Create").Str("kind", string(kind)).Msg("create remote object")

	resp, err := h.tokenRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{ep.key: obj}).
		Post(ep.path)
	if err != nil {
		return nil, transportError("create "+string(kind), err)
	}
	return decodeDataResponse(kind, resp)
}

// Update implements [RemoteClient]. It PUTs {"<kind>": obj} to the object
// address.
func (h *HTTPRemoteClient) Update(ctx context.Context, token string, obj models.RemoteObject) (models.RemoteObject, error) {
	kind := obj.Kind()
	path, err := h.addressOf(obj)
	if err != nil {
		return nil, err
	}
	ep, _ := endpointOf(kind)

	h.logger.Debug().Str("func", "HTTPRemoteClient.Update").Str("kind", string(kind)).Str("path", path).Msg("update remote object")

	resp, err := h.tokenRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{ep.key: obj}).
		Put(path)
	if err != nil {
		return nil, transportError("update "+string(kind), err)
	}
	return decodeDataResponse(kind, resp)
}

// Delete implements [RemoteClient].
func (h *HTTPRemoteClient) Delete(ctx context.Context, token string, obj models.RemoteObject) error {
	kind := obj.Kind()
	if kind == models.KindUser {
		return fmt.Errorf("%w: delete %s", ErrUnsupportedKind, kind)
	}
	path, err := h.addressOf(obj)
	if err != nil {
		return err
	}

	h.logger.Debug().Str("func", "HTTPRemoteClient.Delete").Str("kind", string(kind)).Str("path", path).Msg("delete remote object")

	resp, err := h.tokenRequest(ctx, token).Delete(path)
	if err != nil {
		return transportError("delete "+string(kind), err)
	}
	return mapHTTPError(resp)
}

// Get implements [RemoteClient].
func (h *HTTPRemoteClient) Get(ctx context.Context, token string, kind models.Kind, remoteID int64) (models.RemoteObject, error) {
	if remoteID == 0 && kind != models.KindUser {
		return nil, fmt.Errorf("%w: get %s", ErrMissingRemoteID, kind)
	}
	path, err := objectPath(kind, remoteID)
	if err != nil {
		return nil, err
	}

	resp, err := h.tokenRequest(ctx, token).Get(path)
	if err != nil {
		return nil, transportError("get "+string(kind), err)
	}
	return decodeDataResponse(kind, resp)
}

// ListTimeEntries implements [RemoteClient]. The window is
// [from - days, from].
func (h *HTTPRemoteClient) ListTimeEntries(ctx context.Context, token string, from time.Time, days int) ([]models.TimeEntryJSON, error) {
	start := from.AddDate(0, 0, -days)

	resp, err := h.tokenRequest(ctx, token).
		SetQueryParam("start_date", start.UTC().Format(time.RFC3339)).
		SetQueryParam("end_date", from.UTC().Format(time.RFC3339)).
		Get("/time_entries")
	if err != nil {
		return nil, transportError("list time entries", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.TimeEntryJSON
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode time entries: %w", err)
	}
	return entries, nil
}

// GetChanges implements [RemoteClient]. The returned Timestamp is the
// server's "since" value to pass on the next call.
func (h *HTTPRemoteClient) GetChanges(ctx context.Context, token string, since *time.Time) (models.ChangesJSON, error) {
	req := h.tokenRequest(ctx, token).SetQueryParam("with_related_data", "true")
	if since != nil {
		req.SetQueryParam("since", strconv.FormatInt(since.Unix(), 10))
	}

	resp, err := req.Get("/me")
	if err != nil {
		return models.ChangesJSON{}, transportError("get changes", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangesJSON{}, err
	}

	var env dataEnvelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.ChangesJSON{}, fmt.Errorf("decode changes: %w", err)
	}

	changes := models.ChangesJSON{}
	if env.Since > 0 {
		changes.Timestamp = time.Unix(env.Since, 0).UTC()
	}
	if env.empty() {
		return changes, nil
	}

	var data changesData
	if err = json.Unmarshal(env.Data, &data); err != nil {
		return models.ChangesJSON{}, fmt.Errorf("decode changes data: %w", err)
	}

	user := data.UserJSON
	changes.User = &user
	changes.Workspaces = data.Workspaces
	changes.Tags = data.Tags
	changes.Clients = data.Clients
	changes.Projects = data.Projects
	changes.Tasks = data.Tasks
	changes.TimeEntries = data.TimeEntries
	return changes, nil
}

// GetUser implements [RemoteClient].
func (h *HTTPRemoteClient) GetUser(ctx context.Context, username, password string) (*models.UserJSON, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		Get("/me")
	if err != nil {
		return nil, transportError("get user", err)
	}
	return decodeUserResponse(resp)
}

// GetUserWithGoogle implements [RemoteClient].
func (h *HTTPRemoteClient) GetUserWithGoogle(ctx context.Context, accessToken string) (*models.UserJSON, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(accessToken, googleTokenPassword).
		Get("/me")
	if err != nil {
		return nil, transportError("get user with google", err)
	}
	return decodeUserResponse(resp)
}

// CreateUser implements [RemoteClient]. It POSTs {"user": user} to /signups.
func (h *HTTPRemoteClient) CreateUser(ctx context.Context, user models.UserJSON) (*models.UserJSON, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"user": user}).
		Post("/signups")
	if err != nil {
		return nil, transportError("create user", err)
	}
	return decodeUserResponse(resp)
}

func (h *HTTPRemoteClient) tokenRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetBasicAuth(token, apiTokenPassword)
	}
	return req
}

func (h *HTTPRemoteClient) addressOf(obj models.RemoteObject) (string, error) {
	kind := obj.Kind()
	rid := obj.Remote().RemoteID
	if kind != models.KindUser && (rid == nil || *rid == 0) {
		return "", fmt.Errorf("%w: %s", ErrMissingRemoteID, kind)
	}
	var id int64
	if rid != nil {
		id = *rid
	}
	return objectPath(kind, id)
}

func decodeDataResponse(kind models.Kind, resp *resty.Response) (models.RemoteObject, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env dataEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", kind, err)
	}
	if env.empty() {
		return nil, fmt.Errorf("decode %s response: empty data", kind)
	}
	return decodeObject(kind, env.Data)
}

func decodeUserResponse(resp *resty.Response) (*models.UserJSON, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env dataEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if env.empty() {
		return nil, nil
	}

	var user models.UserJSON
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}
