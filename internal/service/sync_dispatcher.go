package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mapper"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

// DispatchResult summarizes one outbound pass.
type DispatchResult struct {
	// Pushed is the message emitted to the sink, if any.
	Pushed models.ReceivedFromPush
	// Enqueued are the envelopes appended to the outbound channel.
	Enqueued []models.Envelope
	// Drained is the number of queue items removed by the drain pass.
	Drained int
	// QueueReset is true when queued items were dropped for lack of a token.
	QueueReset bool
}

// Dispatcher is the outbound side of the engine: it drains the durable
// queue, then sends new changes, and falls back to queueing them whenever
// sending is not possible. Only one Process call may run at a time.
type Dispatcher struct {
	queue    store.Queue
	remote   adapter.RemoteClient
	presence adapter.NetworkPresence
	sink     Sink
	logger   *logger.Logger
}

// NewDispatcher builds a Dispatcher. It is the only user of queue.
func NewDispatcher(queue store.Queue, remote adapter.RemoteClient, presence adapter.NetworkPresence, sink Sink, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		queue:    queue,
		remote:   remote,
		presence: presence,
		sink:     sink,
		logger:   log,
	}
}

// Process pushes one batch.
//
// Without an API token a non-empty queue is reset and nothing is sent. With
// a token and a connection the queue is drained first; new changes are sent
// only if the drain emptied it, otherwise they are enqueued behind the
// existing items. The returned error is a non-network failure; the batch is
// fully enqueued before it is returned.
func (d *Dispatcher) Process(ctx context.Context, batch models.SyncBatch) (DispatchResult, error) {
	state := batch.State
	if state == nil {
		state = models.NewAppState()
	}

	p := &pass{
		Dispatcher: d,
		token:      state.User.APIToken,
		state:      state,
	}

	var errs []error
	if p.token == "" {
		if err := p.resetQueue(ctx); err != nil {
			errs = append(errs, err)
		}
		errs = append(errs, p.enqueueAll(ctx, batch.SyncData)...)
	} else {
		drained := false
		if d.isConnected(ctx, batch.SyncTest) {
			var err error
			drained, err = p.drain(ctx)
			if err != nil {
				errs = append(errs, err)
			}
		}
		if drained {
			errs = append(errs, p.sendAll(ctx, batch.SyncData)...)
		} else {
			errs = append(errs, p.enqueueAll(ctx, batch.SyncData)...)
		}
	}

	if len(p.pushed.Data) > 0 || len(p.pushed.Removed) > 0 || len(p.pushed.Rejected) > 0 {
		d.sink.Send(p.pushed)
	}

	if batch.SyncTest != nil && batch.SyncTest.Continuation != nil {
		batch.SyncTest.Continuation(state, p.pushed.Data, p.enqueued)
	}

	return DispatchResult{
		Pushed:     p.pushed,
		Enqueued:   p.enqueued,
		Drained:    p.drained,
		QueueReset: p.reset,
	}, errors.Join(errs...)
}

func (d *Dispatcher) isConnected(ctx context.Context, test *models.SyncTest) bool {
	if test != nil {
		return test.IsConnectionAvailable
	}
	return d.presence.IsNetworkPresent(ctx)
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeRemoved
	outcomeSkipped
	outcomePending
	outcomeRejected
	outcomeNetwork
	outcomeFailed
)

// pass is the state of one Process call.
type pass struct {
	*Dispatcher

	token string
	state *models.AppState

	// sent are the reconciled copies acknowledged in this pass
	sent     []models.Entity
	pushed   models.ReceivedFromPush
	enqueued []models.Envelope
	drained  int
	reset    bool
}

// resetQueue drops the outbound and rejected channels. Both belong to the
// account that is no longer signed in.
func (p *pass) resetQueue(ctx context.Context) error {
	for _, ch := range []string{store.ChannelSyncOut, store.ChannelSyncRejected} {
		n, err := p.queue.Size(ctx, ch)
		if err != nil {
			return fmt.Errorf("queue size: %w", err)
		}
		if n == 0 {
			continue
		}

		p.logger.Warn().Str("func", "Dispatcher.Process").Str("channel", ch).Int("items", n).Msg("no api token: dropping queued changes")
		if err = p.queue.Reset(ctx, ch); err != nil {
			return fmt.Errorf("queue reset %s: %w", ch, err)
		}
		if ch == store.ChannelSyncOut {
			p.reset = true
		}
	}
	return nil
}

// drain reports true when the queue ended up empty.
func (p *pass) drain(ctx context.Context) (bool, error) {
	for {
		item, ok, err := p.queue.Peek(ctx, store.ChannelSyncOut)
		if err != nil {
			return false, fmt.Errorf("queue peek: %w", err)
		}
		if !ok {
			return true, nil
		}

		e, err := store.Decode(item)
		if err != nil {
			// the head stays queued: a corrupt item must not be lost silently
			p.logger.Err(err).Str("func", "Dispatcher.drain").Msg("cannot decode queue head")
			return false, fmt.Errorf("decode queue head: %w", err)
		}

		res, err := p.send(ctx, e)
		switch res {
		case outcomeSent, outcomeRemoved, outcomeSkipped:
		case outcomeRejected:
			if err = p.quarantine(ctx, e); err != nil {
				return false, err
			}
		case outcomePending, outcomeNetwork:
			return false, nil
		default:
			return false, err
		}

		if _, _, err = p.queue.Dequeue(ctx, store.ChannelSyncOut); err != nil {
			return false, fmt.Errorf("queue dequeue: %w", err)
		}
		p.drained++
	}
}

// sendAll sends new changes in order until the first failure, then queues
// the rest.
func (p *pass) sendAll(ctx context.Context, data []models.Entity) []error {
	var errs []error
	sending := true

	for _, e := range data {
		if e.Common().SyncState() == models.InSync {
			p.logSkip(e)
			continue
		}
		if !sending {
			if err := p.enqueue(ctx, e); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		res, err := p.send(ctx, e)
		switch res {
		case outcomeSent, outcomeRemoved, outcomeSkipped:
			continue
		case outcomeRejected:
			if err = p.quarantine(ctx, e); err != nil {
				errs = append(errs, err)
			}
			continue
		case outcomeFailed:
			errs = append(errs, err)
		}

		sending = false
		if err = p.enqueue(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (p *pass) enqueueAll(ctx context.Context, data []models.Entity) []error {
	var errs []error
	for _, e := range data {
		if e.Common().SyncState() == models.InSync {
			p.logSkip(e)
			continue
		}
		if err := p.enqueue(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (p *pass) enqueue(ctx context.Context, e models.Entity) error {
	env, err := store.Wrap(e)
	if err != nil {
		return err
	}
	item, err := store.EncodeEnvelope(env)
	if err != nil {
		return err
	}
	if err = p.queue.Enqueue(ctx, store.ChannelSyncOut, item); err != nil {
		return fmt.Errorf("queue %s %s: %w", e.Kind(), e.Common().ID, err)
	}
	p.enqueued = append(p.enqueued, env)
	return nil
}

// quarantine moves a rejected entity to the rejected channel and reports it.
func (p *pass) quarantine(ctx context.Context, e models.Entity) error {
	c := e.Common()
	c.RemoteRejected = true
	rejected := models.WithCommon(e, c)

	item, err := store.Encode(rejected)
	if err != nil {
		return err
	}
	if err = p.queue.Enqueue(ctx, store.ChannelSyncRejected, item); err != nil {
		return fmt.Errorf("quarantine %s %s: %w", e.Kind(), c.ID, err)
	}
	p.pushed.Rejected = append(p.pushed.Rejected, rejected)
	return nil
}

// send transmits one entity according to its sync state.
func (p *pass) send(ctx context.Context, e models.Entity) (outcome, error) {
	st := e.Common().SyncState()
	e = ResolveSelf(e, p.sent, p.state)
	hasRemote := e.Common().RemoteID != nil

	switch {
	case st == models.InSync:
		p.logSkip(e)
		return outcomeSkipped, nil
	case st == models.PendingDelete, st == models.Discardable && hasRemote:
		return p.delete(ctx, e)
	case st == models.Discardable:
		p.pushed.Removed = append(p.pushed.Removed, e)
		return outcomeRemoved, nil
	case st == models.CreatePending && !hasRemote:
		return p.push(ctx, e, p.remote.Create)
	default:
		// UpdatePending, or a create whose acknowledgement is already known
		return p.push(ctx, e, p.remote.Update)
	}
}

type pushFunc func(ctx context.Context, token string, obj models.RemoteObject) (models.RemoteObject, error)

func (p *pass) push(ctx context.Context, e models.Entity, call pushFunc) (outcome, error) {
	linked, err := Link(e, p.sent, p.state)
	if err != nil {
		p.logger.Err(err).Str("func", "Dispatcher.push").Msg("cannot link entity")
		return outcomeFailed, err
	}
	if !linked.Resolved() {
		if p.isRejected(*linked.Pending) {
			p.logger.Warn().Str("func", "Dispatcher.push").
				Str("kind", string(e.Kind())).
				Str("id", e.Common().ID.String()).
				Str("rejected", linked.Pending.String()).
				Msg("reference was rejected by server")
			return outcomeRejected, fmt.Errorf("%w: %s", ErrRejectedReference, linked.Pending)
		}
		p.logger.Info().Str("func", "Dispatcher.push").
			Str("kind", string(e.Kind())).
			Str("id", e.Common().ID.String()).
			Str("waiting_for", linked.Pending.String()).
			Msg("reference has no remote id yet")
		return outcomePending, nil
	}

	obj := mapper.ToRemote(linked.Entity)
	if te, ok := linked.Entity.(models.TimeEntryData); ok {
		obj = mapper.EntryToRemote(te, linked.TagNames)
	}

	reply, err := call(ctx, p.token, obj)
	if err != nil {
		return p.classify(e, err)
	}

	reconciled := mapper.Reconcile(linked.Entity, reply, p.state)
	p.sent = append(p.sent, reconciled)
	p.pushed.Data = append(p.pushed.Data, reconciled)
	p.forgetRejected(ctx, e)
	return outcomeSent, nil
}

// isRejected reports whether ref was quarantined in this pass or is marked
// rejected in state.
func (p *pass) isRejected(ref Reference) bool {
	for _, r := range p.pushed.Rejected {
		if r.Kind() == ref.Kind && r.Common().ID == ref.ID {
			return true
		}
	}
	if e, ok := p.state.Get(ref.Kind, ref.ID); ok {
		return e.Common().RemoteRejected
	}
	return false
}

// forgetRejected drops the quarantined copies of e once the server accepted
// a later version. The channel is rotated: kept items are appended before
// the head is removed, so a crash can duplicate an item but never lose one.
func (p *pass) forgetRejected(ctx context.Context, e models.Entity) {
	if !e.Common().RemoteRejected {
		return
	}

	n, err := p.queue.Size(ctx, store.ChannelSyncRejected)
	if err == nil {
		for range n {
			var (
				item string
				ok   bool
			)
			item, ok, err = p.queue.Peek(ctx, store.ChannelSyncRejected)
			if err != nil || !ok {
				break
			}
			if q, derr := store.Decode(item); derr != nil || q.Kind() != e.Kind() || q.Common().ID != e.Common().ID {
				if err = p.queue.Enqueue(ctx, store.ChannelSyncRejected, item); err != nil {
					break
				}
			}
			if _, _, err = p.queue.Dequeue(ctx, store.ChannelSyncRejected); err != nil {
				break
			}
		}
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "Dispatcher.forgetRejected").
			Str("kind", string(e.Kind())).
			Str("id", e.Common().ID.String()).
			Msg("cannot prune rejected channel")
	}
}

func (p *pass) delete(ctx context.Context, e models.Entity) (outcome, error) {
	err := p.remote.Delete(ctx, p.token, mapper.ToRemote(e))
	if err != nil && !errors.Is(err, adapter.ErrNotFound) && !errors.Is(err, adapter.ErrGone) {
		return p.classify(e, err)
	}
	p.pushed.Removed = append(p.pushed.Removed, e)
	p.forgetRejected(ctx, e)
	return outcomeRemoved, nil
}

func (p *pass) classify(e models.Entity, err error) (outcome, error) {
	switch {
	case adapter.IsNetworkFailure(err):
		p.logger.Info().Err(err).Str("func", "Dispatcher.send").Str("kind", string(e.Kind())).Msg("network failure, keeping changes queued")
		return outcomeNetwork, err
	case adapter.IsRejection(err):
		p.logger.Warn().Err(err).Str("func", "Dispatcher.send").Str("kind", string(e.Kind())).Str("id", e.Common().ID.String()).Msg("server rejected entity")
		return outcomeRejected, err
	default:
		p.logger.Warn().Err(err).Str("func", "Dispatcher.send").Str("kind", string(e.Kind())).Msg("push failed")
		return outcomeFailed, fmt.Errorf("push %s %s: %w", e.Kind(), e.Common().ID, err)
	}
}

func (p *pass) logSkip(e models.Entity) {
	p.logger.Debug().Str("func", "Dispatcher").Str("kind", string(e.Kind())).Str("id", e.Common().ID.String()).Msg("entity in sync, skipped")
}
