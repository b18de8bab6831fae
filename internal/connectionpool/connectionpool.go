//go:generate mockgen -source=./connectionpool.go -destination=./connectionpool_mock.go -package=connectionpool ConnectionPool

package connectionpool

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/javi11/dbpool/internal/config"
	"github.com/javi11/dbpool/pkg/dbconn"
)

type ConnectionPool interface {
	Acquire() (*Lease, error)
	Release(lease *Lease) error
	SweepIdle(now time.Time) int
	AvailableCount() int
	LeasedCount() int
	MaxConnections() int
	Shutdown() error
}

type connectionPool struct {
	available       []*timedConnection
	leased          map[uint64]*timedConnection
	nextId          uint64
	minConn         int
	maxConn         int
	idleTimeout     time.Duration
	replenish       bool
	closed          bool
	cli             dbconn.Client
	database        dbconn.Database
	fakeConnections bool
	log             *slog.Logger
	mx              *sync.Mutex
}

// NewConnectionPool creates a pool pre warmed with the configured minimum
// number of connections. Connections that fail to be created during the
// warm up are logged and skipped, and the pool is returned usable together
// with ErrPartialInitialization so the caller can decide whether a
// degraded pool is acceptable.
func NewConnectionPool(options ...Option) (ConnectionPool, error) {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	p := &connectionPool{
		available: make([]*timedConnection, 0, config.pool.MinConnections),
		leased:    make(map[uint64]*timedConnection),
		// id 0 is never assigned, so a zero value Lease can never match
		nextId:          1,
		minConn:         config.pool.MinConnections,
		maxConn:         config.pool.MaxConnections,
		idleTimeout:     time.Duration(config.pool.IdleTimeoutInSeconds) * time.Second,
		replenish:       config.pool.ReplenishOnSweep,
		cli:             config.cli,
		database:        toDatabase(config.database),
		fakeConnections: config.fakeConnections,
		log:             config.log,
		mx:              &sync.Mutex{},
	}

	warmUp := min(p.minConn, p.maxConn)
	for i := 0; i < warmUp; i++ {
		tc, err := p.createConnection()
		if err != nil {
			p.log.Error(fmt.Sprintf("failed to create connection %d of %d", i+1, warmUp), "error", err)
			continue
		}

		p.available = append(p.available, tc)
	}

	if len(p.available) < p.minConn {
		return p, fmt.Errorf("%w: created %d of %d connections", ErrPartialInitialization, len(p.available), p.minConn)
	}

	p.log.Info(fmt.Sprintf("connection pool initialized with %d available connections", len(p.available)))

	return p, nil
}

// Acquire returns a leased connection, reusing the connection that has
// been available the longest. When none is available and the pool is
// below its maximum a new connection is created and leased directly.
// A saturated pool returns ErrPoolExhausted without mutating any state.
func (p *connectionPool) Acquire() (*Lease, error) {
	p.mx.Lock()
	defer p.mx.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	if len(p.available) > 0 {
		tc := p.available[0]
		p.available = p.available[1:]
		tc.leasedAt = time.Now()
		p.leased[tc.id] = tc

		p.log.Debug(fmt.Sprintf("leased connection %d from the pool", tc.id))

		return &Lease{id: tc.id, conn: tc.conn}, nil
	}

	if len(p.available)+len(p.leased) < p.maxConn {
		tc, err := p.createConnection()
		if err != nil {
			p.log.Error("failed to create connection on demand", "error", err)

			return nil, fmt.Errorf("creating database connection: %w", err)
		}

		tc.leasedAt = time.Now()
		p.leased[tc.id] = tc

		p.log.Debug(fmt.Sprintf("created and leased connection %d", tc.id))

		return &Lease{id: tc.id, conn: tc.conn}, nil
	}

	return nil, ErrPoolExhausted
}

// Release returns a leased connection to the tail of the available list.
// Releasing a lease the pool does not track, because it was already
// released or evicted by an idle sweep, returns ErrConnectionNotLeased.
func (p *connectionPool) Release(lease *Lease) error {
	p.mx.Lock()
	defer p.mx.Unlock()

	if lease == nil {
		return ErrConnectionNotLeased
	}

	tc, ok := p.leased[lease.id]
	if !ok {
		p.log.Error(fmt.Sprintf("release of connection %d that is not leased", lease.id))

		return ErrConnectionNotLeased
	}

	delete(p.leased, lease.id)
	tc.leasedAt = time.Time{}
	p.available = append(p.available, tc)

	p.log.Debug(fmt.Sprintf("released connection %d back to the pool", tc.id))

	return nil
}

// SweepIdle evicts every leased connection whose lease is older than the
// idle timeout and closes it. Close failures are logged but never keep an
// entry in the pool. Evicted connections are not returned to the
// available list, so the pool shrinks unless replenish_on_sweep is set,
// in which case replacements are created back toward the minimum.
func (p *connectionPool) SweepIdle(now time.Time) int {
	p.mx.Lock()
	defer p.mx.Unlock()

	idle := make([]*timedConnection, 0)
	for _, tc := range p.leased {
		if now.Sub(tc.leasedAt) > p.idleTimeout {
			idle = append(idle, tc)
		}
	}

	for _, tc := range idle {
		delete(p.leased, tc.id)

		if err := tc.conn.Close(); err != nil {
			p.log.Error(fmt.Sprintf("failed to close idle connection %d", tc.id), "error", err)
		}

		p.log.Info(fmt.Sprintf("evicted idle connection %d from the pool", tc.id))
	}

	if p.replenish && len(idle) > 0 {
		p.replenishPool()
	}

	return len(idle)
}

// replenishPool backfills the available list toward the configured
// minimum. Caller must hold the lock.
func (p *connectionPool) replenishPool() {
	total := len(p.available) + len(p.leased)
	missing := min(p.minConn-total, p.maxConn-total)

	for i := 0; i < missing; i++ {
		tc, err := p.createConnection()
		if err != nil {
			p.log.Error("failed to replenish connection after idle sweep", "error", err)
			continue
		}

		p.available = append(p.available, tc)
	}
}

func (p *connectionPool) AvailableCount() int {
	p.mx.Lock()
	defer p.mx.Unlock()

	return len(p.available)
}

func (p *connectionPool) LeasedCount() int {
	p.mx.Lock()
	defer p.mx.Unlock()

	return len(p.leased)
}

func (p *connectionPool) MaxConnections() int {
	return p.maxConn
}

// Shutdown closes every connection tracked by the pool, available and
// leased alike, and marks the pool closed. Close failures are aggregated
// and returned once every connection has been dropped.
func (p *connectionPool) Shutdown() error {
	p.mx.Lock()
	defer p.mx.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var merr *multierror.Error
	for _, tc := range p.available {
		if err := tc.conn.Close(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	for _, tc := range p.leased {
		if err := tc.conn.Close(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	p.available = nil
	p.leased = make(map[uint64]*timedConnection)

	p.log.Info("connection pool shut down")

	return merr.ErrorOrNil()
}

// createConnection dials a new connection and assigns it a pool id.
// Caller must hold the lock, except during construction.
func (p *connectionPool) createConnection() (*timedConnection, error) {
	conn, err := dialDatabase(p.cli, p.fakeConnections, p.database, p.log)
	if err != nil {
		return nil, err
	}

	tc := &timedConnection{
		id:        p.nextId,
		conn:      conn,
		createdAt: time.Now(),
	}
	p.nextId++

	return tc, nil
}

func dialDatabase(cli dbconn.Client, fakeConnections bool, database dbconn.Database, log *slog.Logger) (dbconn.Connection, error) {
	if fakeConnections {
		return dbconn.NewFakeConnection(database), nil
	}

	log.Debug(fmt.Sprintf("connecting to %s database %s", database.Driver, database.Name))

	return cli.Dial(database)
}

func toDatabase(database config.Database) dbconn.Database {
	return dbconn.Database{
		Driver:   database.Driver,
		Host:     database.Host,
		Port:     database.Port,
		Name:     database.Name,
		Username: database.Username,
		Password: database.Password,
		TLS:      database.TLS,
	}
}
