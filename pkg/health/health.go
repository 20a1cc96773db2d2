// Package health aggregates named dependency checks for the /health
// endpoint.
package health

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// Aggregator runs registered checks and reports per-check results.
type Aggregator struct {
	checks map[string]Check
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{checks: make(map[string]Check)}
}

// Register adds a named check.
func (a *Aggregator) Register(name string, check Check) {
	a.checks[name] = check
}

// Run executes all checks and returns their results plus an overall
// healthy flag.
func (a *Aggregator) Run(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(a.checks))
	healthy := true
	for name, check := range a.checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			healthy = false
			continue
		}
		results[name] = "ok"
	}
	return results, healthy
}

// DatabaseCheck pings the database connection pool.
func DatabaseCheck(db *gorm.DB) Check {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
