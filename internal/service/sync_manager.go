package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Manager runs the two pipelines of the engine. RunOutbound consumes change
// batches, RunRequests consumes server requests; each finishes one item
// before taking the next.
type Manager struct {
	outbound OutboundProcessor
	handler  RequestHandler
	source   StateSource
	requests chan models.ServerRequest
	logger   *logger.Logger
}

// NewManager builds a Manager whose request channel holds bufferSize items.
func NewManager(outbound OutboundProcessor, handler RequestHandler, source StateSource, bufferSize int, log *logger.Logger) *Manager {
	if bufferSize < 0 {
		bufferSize = 0
	}
	return &Manager{
		outbound: outbound,
		handler:  handler,
		source:   source,
		requests: make(chan models.ServerRequest, bufferSize),
		logger:   log,
	}
}

// Request queues req for the request pipeline. It blocks while the buffer
// is full.
func (m *Manager) Request(ctx context.Context, req models.ServerRequest) error {
	select {
	case m.requests <- req:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("queue request %T: %w", req, ctx.Err())
	}
}

// RunOutbound processes batches until ctx is done or the observer channel
// is closed. Server requests of a batch are forwarded after its pass.
func (m *Manager) RunOutbound(ctx context.Context) error {
	batches := m.source.Observe()
	for {
		select {
		case <-ctx.Done():
			return nil
		case batch, ok := <-batches:
			if !ok {
				m.logger.Info().Str("func", "Manager.RunOutbound").Msg("observer closed")
				return nil
			}

			res, err := m.outbound.Process(ctx, batch)
			if err != nil {
				m.logger.Err(err).Str("func", "Manager.RunOutbound").Msg("outbound pass failed")
			}
			m.logger.Debug().Str("func", "Manager.RunOutbound").
				Int("pushed", len(res.Pushed.Data)).
				Int("removed", len(res.Pushed.Removed)).
				Int("rejected", len(res.Pushed.Rejected)).
				Int("enqueued", len(res.Enqueued)).
				Int("drained", res.Drained).
				Msg("outbound pass done")

			for _, req := range batch.ServerRequests {
				if err = m.Request(ctx, req); err != nil {
					return nil
				}
			}
		}
	}
}

// RunRequests handles server requests until ctx is done. Each request sees
// the state current when it starts.
func (m *Manager) RunRequests(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-m.requests:
			m.handler.Handle(ctx, req, m.source.Snapshot())
		}
	}
}
