package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mapper"
	"github.com/MKhiriev/go-time-keeper/models"
)

// sinceWindow bounds incremental sync: older cursors trigger a full pull.
const sinceWindow = 2 // months

// RequestProcessor executes server requests. The caller guarantees that
// requests are handled one at a time in arrival order.
type RequestProcessor struct {
	remote       adapter.RemoteClient
	sink         Sink
	logger       *logger.Logger
	downloadDays int

	now func() time.Time
}

// NewRequestProcessor builds a RequestProcessor downloading downloadDays of
// time entries per DownloadEntries request.
func NewRequestProcessor(remote adapter.RemoteClient, sink Sink, downloadDays int, log *logger.Logger) *RequestProcessor {
	return &RequestProcessor{
		remote:       remote,
		sink:         sink,
		logger:       log,
		downloadDays: downloadDays,
		now:          time.Now,
	}
}

// Handle executes req against state and reports the outcome to the sink.
func (p *RequestProcessor) Handle(ctx context.Context, req models.ServerRequest, state *models.AppState) {
	if state == nil {
		state = models.NewAppState()
	}

	switch r := req.(type) {
	case models.Authenticate:
		user, err := p.remote.GetUser(ctx, r.Username, r.Password)
		p.putUser(models.ReasonLogin, user, err, false, state)
	case models.AuthenticateWithGoogle:
		user, err := p.remote.GetUserWithGoogle(ctx, r.AccessToken)
		p.putUser(models.ReasonLoginGoogle, user, err, true, state)
	case models.SignUp:
		user, err := p.remote.CreateUser(ctx, models.UserJSON{Email: r.Email, Password: r.Password})
		p.putUser(models.ReasonSignup, user, err, false, state)
	case models.SignUpWithGoogle:
		user, err := p.remote.CreateUser(ctx, models.UserJSON{GoogleAccessToken: r.AccessToken})
		p.putUser(models.ReasonSignupGoogle, user, err, false, state)
	case models.FullSync:
		p.fullSync(ctx, state)
	case models.DownloadEntries:
		p.downloadEntries(ctx, state)
	default:
		p.logger.Warn().Err(ErrUnknownRequest).Str("func", "RequestProcessor.Handle").Str("type", fmt.Sprintf("%T", req)).Send()
	}
}

func (p *RequestProcessor) fullSync(ctx context.Context, state *models.AppState) {
	token := state.User.APIToken
	if token == "" {
		p.sink.Send(models.ReceivedFromSync{Err: p.failure("full sync", ErrNotAuthenticated)})
		return
	}

	since := normalizeSince(state.FullSyncResult.SyncLastRun, p.now())
	changes, err := p.remote.GetChanges(ctx, token, since)
	if err != nil {
		p.sink.Send(models.ReceivedFromSync{Err: p.failure("full sync", err)})
		return
	}

	data, user := mapper.MapChanges(changes, state)
	if user != nil && user.APIToken == "" {
		user.APIToken = token
	}

	ts := changes.Timestamp
	if ts.IsZero() {
		ts = p.now()
	}

	p.logger.Info().Str("func", "RequestProcessor.fullSync").Int("entities", len(data)).Time("timestamp", ts).Msg("full sync received")
	p.sink.Send(models.ReceivedFromSync{Data: data, User: user, Timestamp: ts})
}

func (p *RequestProcessor) downloadEntries(ctx context.Context, state *models.AppState) {
	token := state.User.APIToken
	if token == "" {
		p.sink.Send(models.ReceivedFromDownload{Err: p.failure("download entries", ErrNotAuthenticated)})
		return
	}

	from := state.DownloadResult.DownloadFrom
	if from.IsZero() {
		from = p.now()
	}

	entries, err := p.remote.ListTimeEntries(ctx, token, from, p.downloadDays)
	if err != nil {
		p.sink.Send(models.ReceivedFromDownload{Err: p.failure("download entries", err)})
		return
	}

	related, err := newBackfill(p.remote, token, state, p.logger).run(ctx, entries)
	if err != nil {
		p.sink.Send(models.ReceivedFromDownload{Err: p.failure("download entries", err)})
		return
	}

	data := mapper.MapEntries(entries, related, state)
	p.logger.Info().Str("func", "RequestProcessor.downloadEntries").
		Int("entries", len(entries)).
		Int("related", len(related)).
		Msg("time entries downloaded")
	p.sink.Send(models.ReceivedFromDownload{
		Data:     data,
		NextFrom: from.AddDate(0, 0, -p.downloadDays),
	})
}

// failure logs err by class and returns it wrapped with op.
func (p *RequestProcessor) failure(op string, err error) error {
	if adapter.IsNetworkFailure(err) {
		p.logger.Info().Err(err).Str("func", "RequestProcessor").Str("op", op).Msg("request failed: network unavailable")
	} else {
		p.logger.Warn().Err(err).Str("func", "RequestProcessor").Str("op", op).Msg("request failed")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// normalizeSince drops a cursor older than sinceWindow months before today.
func normalizeSince(since *time.Time, now time.Time) *time.Time {
	if since == nil {
		return nil
	}
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, -sinceWindow, 0)
	if since.Before(cutoff) {
		return nil
	}
	return since
}

type remoteRef struct {
	kind models.Kind
	id   int64
}

type backfill struct {
	remote  adapter.RemoteClient
	token   string
	state   *models.AppState
	logger  *logger.Logger
	fetched map[remoteRef]struct{}
	related []models.RemoteObject
}

func newBackfill(remote adapter.RemoteClient, token string, state *models.AppState, log *logger.Logger) *backfill {
	return &backfill{
		remote:  remote,
		token:   token,
		state:   state,
		logger:  log,
		fetched: make(map[remoteRef]struct{}),
	}
}

// run fetches the containers referenced by entries that state does not
// know yet. Each object is fetched at most once.
func (b *backfill) run(ctx context.Context, entries []models.TimeEntryJSON) ([]models.RemoteObject, error) {
	for _, te := range entries {
		if err := b.fetch(ctx, models.KindWorkspace, te.WorkspaceRemoteID); err != nil {
			return nil, err
		}
		if te.ProjectRemoteID != nil {
			if err := b.fetch(ctx, models.KindProject, *te.ProjectRemoteID); err != nil {
				return nil, err
			}
		}
		if te.TaskRemoteID != nil {
			if err := b.fetch(ctx, models.KindTask, *te.TaskRemoteID); err != nil {
				return nil, err
			}
		}
	}
	return b.related, nil
}

func (b *backfill) fetch(ctx context.Context, kind models.Kind, remoteID int64) error {
	if remoteID == 0 || b.state.HasRemote(kind, remoteID) {
		return nil
	}
	key := remoteRef{kind: kind, id: remoteID}
	if _, done := b.fetched[key]; done {
		return nil
	}
	b.fetched[key] = struct{}{}

	obj, err := b.remote.Get(ctx, b.token, kind, remoteID)
	if err != nil {
		if adapter.IsRejection(err) {
			b.logger.Warn().Err(err).Str("func", "backfill.fetch").Str("kind", string(kind)).Int64("remote_id", remoteID).Msg("related object unavailable, skipped")
			return nil
		}
		return fmt.Errorf("fetch %s %d: %w", kind, remoteID, err)
	}
	if obj == nil {
		return nil
	}
	b.related = append(b.related, obj)

	// a fetched project may reference a client that is missing as well
	if p, ok := obj.(models.ProjectJSON); ok && p.ClientRemoteID != nil {
		return b.fetch(ctx, models.KindClient, *p.ClientRemoteID)
	}
	return nil
}
