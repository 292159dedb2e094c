package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultHoldMetricsSingleton(t *testing.T) {
	if DefaultHoldMetrics() != DefaultHoldMetrics() {
		t.Fatalf("expected default metrics to return singleton instance")
	}
}

func TestTraceGroupHoldRecordsAttemptsFailuresAndDuration(t *testing.T) {
	metrics := DefaultHoldMetrics()
	metrics.Reset()

	ctx := context.Background()

	ctx, finish := TraceGroupHold(ctx)
	time.Sleep(time.Millisecond)
	finish(nil)

	_, finish = TraceGroupHold(ctx)
	finish(errors.New("hold failed"))

	attempts, failures, average := metrics.Snapshot()
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
	if average <= 0 {
		t.Fatalf("expected average duration > 0, got %v", average)
	}

	metrics.Reset()
	attempts, failures, average = metrics.Snapshot()
	if attempts != 0 || failures != 0 || average != 0 {
		t.Fatalf("expected metrics to reset to zero, got attempts=%d failures=%d average=%v", attempts, failures, average)
	}
}
