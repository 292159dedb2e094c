package telemetry

import (
	"context"
	"sync/atomic"
	"time"
)

// HoldMetrics fasst Messwerte zu Gruppen-Sperrversuchen zusammen.
type HoldMetrics struct {
	totalDuration atomic.Int64
	attempts      atomic.Uint64
	failures      atomic.Uint64
}

var defaultHoldMetrics HoldMetrics

// DefaultHoldMetrics liefert die globalen Metriken.
func DefaultHoldMetrics() *HoldMetrics {
	return &defaultHoldMetrics
}

// TraceGroupHold startet ein Sperr-Span und liefert eine Abschlussfunktion, die Dauer und Fehlerzustand meldet.
func TraceGroupHold(ctx context.Context) (context.Context, func(error)) {
	start := time.Now()
	defaultHoldMetrics.attempts.Add(1)
	return ctx, func(err error) {
		elapsed := time.Since(start)
		defaultHoldMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if err != nil {
			defaultHoldMetrics.failures.Add(1)
		}
	}
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *HoldMetrics) Snapshot() (attempts uint64, failures uint64, average time.Duration) {
	attempts = m.attempts.Load()
	failures = m.failures.Load()
	total := m.totalDuration.Load()
	if attempts == 0 {
		return attempts, failures, 0
	}
	average = time.Duration(total / int64(attempts))
	return attempts, failures, average
}

// Reset setzt alle Zähler zurück.
func (m *HoldMetrics) Reset() {
	m.totalDuration.Store(0)
	m.attempts.Store(0)
	m.failures.Store(0)
}
