package health

import (
	"context"
	"errors"
	"testing"
)

func TestRun_AllHealthy(t *testing.T) {
	agg := NewAggregator()
	agg.Register("database", func(ctx context.Context) error { return nil })
	agg.Register("cache", func(ctx context.Context) error { return nil })

	results, healthy := agg.Run(context.Background())

	if !healthy {
		t.Error("expected healthy aggregate")
	}
	if results["database"] != "ok" || results["cache"] != "ok" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestRun_OneFailing(t *testing.T) {
	agg := NewAggregator()
	agg.Register("database", func(ctx context.Context) error { return nil })
	agg.Register("cache", func(ctx context.Context) error { return errors.New("connection refused") })

	results, healthy := agg.Run(context.Background())

	if healthy {
		t.Error("expected unhealthy aggregate when a check fails")
	}
	if results["database"] != "ok" {
		t.Errorf("database result = %q, want ok", results["database"])
	}
	if results["cache"] != "connection refused" {
		t.Errorf("cache result = %q, want the check error", results["cache"])
	}
}

func TestRun_NoChecks(t *testing.T) {
	agg := NewAggregator()

	results, healthy := agg.Run(context.Background())

	if !healthy {
		t.Error("expected healthy aggregate with no checks")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}
