package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/state"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/workers"
	"github.com/MKhiriev/go-time-keeper/models"
)

type App struct {
	cfg      *config.ClientConfig
	queue    store.Queue
	state    *state.Store
	services *service.Services
	logger   *logger.Logger
}

// NewApp opens the durable queue and builds the engine for cfg. A configured
// API token is put into the initial state so pushes can start right away.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	queue, err := store.NewQueue(ctx, cfg.Storage.Queue, log.Component("queue"))
	if err != nil {
		return nil, fmt.Errorf("create durable queue: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Adapter, log.Component("remote"))
	if err != nil {
		_ = queue.Close()
		return nil, fmt.Errorf("create remote client: %w", err)
	}
	presence, err := adapter.NewHTTPPresence(cfg.Adapter, log.Component("presence"))
	if err != nil {
		_ = queue.Close()
		return nil, fmt.Errorf("create presence check: %w", err)
	}

	initial := models.NewAppState()
	initial.User.APIToken = cfg.Auth.APIToken
	st := state.NewStore(initial, cfg.Workers.BufferSize, log.Component("state"))

	services := service.NewServices(service.Deps{
		Queue:        queue,
		Remote:       remote,
		Presence:     presence,
		State:        st,
		DownloadDays: cfg.App.DownloadDays,
		BufferSize:   cfg.Workers.BufferSize,
	}, log)

	return &App{
		cfg:      cfg,
		queue:    queue,
		state:    st,
		services: services,
		logger:   log,
	}, nil
}

// State returns the store local changes are committed to.
func (a *App) State() *state.Store {
	return a.state
}

// Run starts the engine loops and the periodic sync job and blocks until
// ctx is done or a loop fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").
		Str("queue_driver", a.cfg.Storage.Queue.Driver).
		Dur("sync_interval", a.cfg.Workers.SyncInterval).
		Msg("client started")

	return workers.New(
		workers.Func(a.services.Manager.RunOutbound),
		workers.Func(a.services.Manager.RunRequests),
		workers.Func(a.runSyncJob),
		workers.Func(a.startup),
	).Run(ctx)
}

// startup issues the initial requests: a login when credentials are
// configured, then the first sync. With a configured token they go out as a
// state batch, which also drains the durable queue. Without one they go
// straight to the manager: a batch without a token resets the queue, and the
// login publishes its own batch once the token is known.
func (a *App) startup(ctx context.Context) error {
	var requests []models.ServerRequest
	if a.cfg.Auth.Email != "" {
		requests = append(requests, models.Authenticate{Username: a.cfg.Auth.Email, Password: a.cfg.Auth.Password})
	}
	if a.cfg.Auth.Email != "" || a.cfg.Auth.APIToken != "" {
		requests = append(requests, models.FullSync{}, models.DownloadEntries{})
	}
	if len(requests) == 0 {
		return nil
	}

	if a.cfg.Auth.APIToken != "" {
		if err := a.state.Request(ctx, requests...); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("initial requests: %w", err)
		}
		return nil
	}

	for _, req := range requests {
		if err := a.services.Manager.Request(ctx, req); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("initial requests: %w", err)
		}
	}
	return nil
}

func (a *App) runSyncJob(ctx context.Context) error {
	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	<-ctx.Done()
	a.services.SyncJob.Stop()
	return nil
}

// Close closes the state observer and the durable queue. Run must have
// returned before Close is called.
func (a *App) Close() error {
	a.state.Close()
	if err := a.queue.Close(); err != nil {
		return fmt.Errorf("close durable queue: %w", err)
	}
	return nil
}
