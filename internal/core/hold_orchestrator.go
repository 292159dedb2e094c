package core

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/timzifer/holdable_queue/internal/telemetry"
)

// Guard beschreibt eine Warteschlange, deren vorderstes Element für eine
// Gruppen-Sperre vorbereitet werden kann.
//
// PrepareHold liefert einen Release-Callback. Erst wenn alle Guards
// erfolgreich vorbereitet wurden, gilt die Gruppen-Sperre als platziert.
// Bei Fehlern oder Kontextabbruch werden die Release-Callbacks in
// umgekehrter Reihenfolge ausgeführt.
type Guard interface {
	PrepareHold(ctx context.Context) (release func(), err error)
}

// HoldOrchestrator serialisiert Gruppen-Sperren über alle bekannten Guards.
type HoldOrchestrator struct {
	mu      sync.Mutex
	guards  []Guard
	logger  zerolog.Logger
	version atomic.Uint64
}

type holdObserverKey struct{}

// WithHoldObserver returns a context that notifies observer about the
// final outcome of HoldAll. On success the observer is invoked
// immediately before the new group hold is published; on failure it is
// invoked after rollback, before the error is returned to the caller.
func WithHoldObserver(ctx context.Context, observer func(error)) context.Context {
	if observer == nil {
		return ctx
	}
	return context.WithValue(ctx, holdObserverKey{}, observer)
}

type Option func(*HoldOrchestrator)

func WithGuards(guards ...Guard) Option {
	return func(o *HoldOrchestrator) {
		o.guards = append(o.guards, guards...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *HoldOrchestrator) {
		o.logger = logger
	}
}

// NewHoldOrchestrator erzeugt einen neuen Orchestrator.
func NewHoldOrchestrator(options ...Option) *HoldOrchestrator {
	o := &HoldOrchestrator{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// GroupHold repräsentiert eine erfolgreich platzierte Gruppen-Sperre.
type GroupHold struct {
	id       uuid.UUID
	releases []func()
	logger   zerolog.Logger
	released atomic.Bool
}

// ID returns the tag assigned to this group hold.
func (h *GroupHold) ID() uuid.UUID {
	return h.id
}

// Release hebt die Sperre auf allen Guards in umgekehrter Reihenfolge
// auf. Wiederholte Aufrufe sind wirkungslos.
func (h *GroupHold) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	for i := len(h.releases) - 1; i >= 0; i-- {
		h.releases[i]()
	}
	h.logger.Info().Str("hold", h.id.String()).Msg("group hold released")
}

// HoldAll platziert die Gruppen-Sperre auf allen Guards innerhalb einer
// globalen kritischen Sektion. Schlägt ein Guard fehl, werden bereits
// platzierte Sperren in umgekehrter Reihenfolge wieder gelöst.
func (o *HoldOrchestrator) HoldAll(ctx context.Context) (hold *GroupHold, err error) {
	ctx, finish := telemetry.TraceGroupHold(ctx)
	defer func() { finish(err) }()

	observer, _ := ctx.Value(holdObserverKey{}).(func(error))

	o.mu.Lock()
	defer o.mu.Unlock()

	var id uuid.UUID
	if id, err = uuid.NewV4(); err != nil {
		if observer != nil {
			observer(err)
		}
		return nil, err
	}

	if len(o.guards) == 0 {
		if observer != nil {
			observer(nil)
		}
		return &GroupHold{id: id, logger: o.logger}, nil
	}

	releases := make([]func(), 0, len(o.guards))

	for i, guard := range o.guards {
		if err = ctx.Err(); err != nil {
			break
		}
		var release func()
		release, err = guard.PrepareHold(ctx)
		if err != nil {
			break
		}
		if release == nil {
			release = func() {}
		}
		releases = append(releases, release)
		o.logger.Debug().Int("guard", i).Msg("front hold prepared")
	}

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
		o.logger.Warn().Err(err).Str("hold", id.String()).Msg("group hold rolled back")
		if observer != nil {
			observer(err)
		}
		return nil, err
	}

	if observer != nil {
		observer(nil)
	}

	o.version.Add(1)
	o.logger.Info().Str("hold", id.String()).Int("guards", len(releases)).Msg("group hold placed")
	return &GroupHold{id: id, releases: releases, logger: o.logger}, nil
}

// Version gibt die Anzahl der bisher erfolgreich platzierten
// Gruppen-Sperren zurück.
func (o *HoldOrchestrator) Version() uint64 {
	return o.version.Load()
}

// RegisterGuard hängt zur Laufzeit einen weiteren Guard an.
func (o *HoldOrchestrator) RegisterGuard(guard Guard) error {
	if guard == nil {
		return errors.New("nil guard")
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.guards = append(o.guards, guard)
	return nil
}
