//go:generate mockgen -source=./monitor.go -destination=./monitor_mock.go -package=monitor Sweeper

package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Sweeper is the part of the connection pool the monitor drives. The pool
// itself never runs a timer, so a monitor is the intended way to keep
// leased connections from going stale.
type Sweeper interface {
	SweepIdle(now time.Time) int
}

type PoolMonitor interface {
	Start(ctx context.Context)
}

type poolMonitor struct {
	pool     Sweeper
	interval time.Duration
	log      *slog.Logger
}

func New(pool Sweeper, options ...Option) PoolMonitor {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	return &poolMonitor{
		pool:     pool,
		interval: config.interval,
		log:      config.log,
	}
}

// Start sweeps the pool on every tick until the context is cancelled.
func (m *poolMonitor) Start(ctx context.Context) {
	m.log.Info(fmt.Sprintf("starting connection pool monitor with a %s interval", m.interval))

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.log.Info("connection pool monitor stopped")
				return
			case <-ticker.C:
				evicted := m.pool.SweepIdle(time.Now())
				if evicted > 0 {
					m.log.Info(fmt.Sprintf("evicted %d idle connections", evicted))
				}
			}
		}
	}()
}
