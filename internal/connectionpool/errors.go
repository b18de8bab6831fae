package connectionpool

import (
	"errors"
)

var (
	// ErrPoolExhausted is returned by Acquire when every connection up to
	// the configured maximum is leased. It is an expected backpressure
	// signal, not a failure.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrConnectionNotLeased is returned by Release when the lease is not
	// tracked by the pool, either because it was already released or
	// because the connection was evicted by an idle sweep.
	ErrConnectionNotLeased = errors.New("connection is not leased by the pool")

	// ErrPoolClosed is returned once Shutdown has been called.
	ErrPoolClosed = errors.New("connection pool is closed")

	// ErrPartialInitialization is returned together with a usable pool
	// when fewer than the configured minimum connections could be created.
	ErrPartialInitialization = errors.New("connection pool partially initialized")
)
