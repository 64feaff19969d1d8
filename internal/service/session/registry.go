package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"beauty-storefront/internal/appstate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session: not found")

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 24 * time.Hour

// Factory builds the state of a new session.
type Factory func() (*appstate.AppState, error)

type Options struct {
	TTL    time.Duration
	Clock  func() time.Time
	Logger *zap.Logger
}

type entry struct {
	state    *appstate.AppState
	lastSeen time.Time
}

// Registry maps session ids to their AppState. Ending a session closes its
// state, which stops the voucher refresh loop.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry

	factory Factory
	ttl     time.Duration
	clock   func() time.Time
	logger  *zap.Logger
}

func New(factory Factory, opts Options) *Registry {
	r := &Registry{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      opts.TTL,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
	if r.ttl <= 0 {
		r.ttl = DefaultTTL
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Issue creates a session with fresh state.
func (r *Registry) Issue() (string, *appstate.AppState, error) {
	state, err := r.factory()
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = &entry{state: state, lastSeen: r.clock()}
	count := len(r.sessions)
	r.mu.Unlock()

	r.logger.Info("session issued", zap.String("session_id", id), zap.Int("active", count))
	return id, state, nil
}

// Lookup returns the state of id and marks the session as used.
func (r *Registry) Lookup(id string) (*appstate.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.clock()
	return e.state, nil
}

// End removes the session and closes its state.
func (r *Registry) End(id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	e.state.Close()
	r.logger.Info("session ended", zap.String("session_id", id))
	return nil
}

// Sweep ends every session idle for longer than the TTL and returns how
// many were ended.
func (r *Registry) Sweep() int {
	cutoff := r.clock().Add(-r.ttl)
	var expired []*entry

	r.mu.Lock()
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.state.Close()
	}
	if len(expired) > 0 {
		r.logger.Info("expired sessions swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close ends every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range all {
		e.state.Close()
	}
	r.logger.Info("session registry closed", zap.Int("ended", len(all)))
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
