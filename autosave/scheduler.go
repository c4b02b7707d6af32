// Package autosave debounces draft persistence. Every observed change to a
// user's wizard document restarts a quiet-period timer; when the timer
// elapses without further changes the whole record is written once. Earlier
// pending writes are superseded, so the last-scheduled save always wins.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/folioforge/portfolio-backend/models"
)

type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSaved  Status = "saved"
	StatusError  Status = "error"
)

// SaveFunc performs the whole-record upsert. It receives the entire current
// document, never a diff.
type SaveFunc func(ctx context.Context, userID uuid.UUID, rec *models.RawPortfolio) error

const (
	defaultQuietPeriod = 2 * time.Second
	defaultSavedTTL    = 2 * time.Second
	defaultErrorTTL    = 3 * time.Second
)

type Option func(*Scheduler)

func WithQuietPeriod(d time.Duration) Option {
	return func(s *Scheduler) { s.quiet = d }
}

// WithDisplayTTL sets how long the saved/error states stay visible before
// auto-clearing back to idle.
func WithDisplayTTL(saved, errored time.Duration) Option {
	return func(s *Scheduler) {
		s.savedTTL = saved
		s.errorTTL = errored
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

type entry struct {
	timer   *time.Timer
	clear   *time.Timer
	pending *models.RawPortfolio
	status  Status
}

type Scheduler struct {
	mu       sync.Mutex
	entries  map[uuid.UUID]*entry
	save     SaveFunc
	quiet    time.Duration
	savedTTL time.Duration
	errorTTL time.Duration
	logger   zerolog.Logger
	closed   bool
}

func New(save SaveFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		entries:  make(map[uuid.UUID]*entry),
		save:     save,
		quiet:    defaultQuietPeriod,
		savedTTL: defaultSavedTTL,
		errorTTL: defaultErrorTTL,
		logger:   log.With().Str("component", "autosave").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify records a change to the user's document and (re)starts the quiet
// period. Documents without a full name are not persisted at all: saving
// placeholder-only records would litter the store with empty rows.
func (s *Scheduler) Notify(userID uuid.UUID, rec *models.RawPortfolio) {
	if rec.FullName() == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	e := s.entries[userID]
	if e == nil {
		e = &entry{status: StatusIdle}
		s.entries[userID] = e
	}

	e.pending = rec
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(s.quiet, func() {
		s.fire(context.Background(), userID)
	})
}

// Status returns the current tri-state indicator for a user.
func (s *Scheduler) Status(userID uuid.UUID) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entries[userID]; e != nil {
		return e.status
	}
	return StatusIdle
}

// Flush writes any pending document for the user immediately.
func (s *Scheduler) Flush(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	e := s.entries[userID]
	if e != nil && e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	s.mu.Unlock()

	return s.fire(ctx, userID)
}

// FlushAll writes every pending document, used on shutdown so an in-flight
// quiet period does not lose the user's last edits.
func (s *Scheduler) FlushAll(ctx context.Context) error {
	s.mu.Lock()
	var ids []uuid.UUID
	for id, e := range s.entries {
		if e.pending != nil {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return s.Flush(ctx, id)
		})
	}
	return g.Wait()
}

// Close stops all timers. Pending documents are dropped; call FlushAll first
// when they matter.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, e := range s.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		if e.clear != nil {
			e.clear.Stop()
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	e := s.entries[userID]
	if e == nil || e.pending == nil {
		s.mu.Unlock()
		return nil
	}
	rec := e.pending
	e.pending = nil
	e.status = StatusSaving
	if e.clear != nil {
		e.clear.Stop()
		e.clear = nil
	}
	s.mu.Unlock()

	err := s.save(ctx, userID, rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	ttl := s.savedTTL
	if err != nil {
		// save failures never interrupt editing, they only surface as a
		// transient status
		s.logger.Error().Err(err).Str("userID", userID.String()).Msg("auto-save failed")
		e.status = StatusError
		ttl = s.errorTTL
	} else {
		e.status = StatusSaved
	}
	if s.closed {
		return err
	}
	e.clear = time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e.status == StatusSaved || e.status == StatusError {
			e.status = StatusIdle
		}
	})
	return err
}
