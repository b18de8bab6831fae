package connectionpool

import (
	"time"

	"github.com/javi11/dbpool/pkg/dbconn"
)

// timedConnection tracks when a pooled connection was created and when it
// was last leased to a client. The id is the stable key used to look the
// connection up while it is leased.
type timedConnection struct {
	id        uint64
	conn      dbconn.Connection
	createdAt time.Time
	leasedAt  time.Time
}

// Lease is the ticket handed out by Acquire. Release matches on the
// ticket id instead of comparing raw connections, since two connections
// to the same database are indistinguishable by content.
type Lease struct {
	id   uint64
	conn dbconn.Connection
}

func (l *Lease) Connection() dbconn.Connection {
	return l.conn
}
