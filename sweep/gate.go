package sweep

import (
	"log/slog"
	"sync"
	"time"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
)

// NotificationLog is the persistent dedup store boundary.
type NotificationLog interface {
	Exists(userID, identifier string) (bool, error)
	Record(rec data.NotificationRecord) error
}

// Gate is the single critical section every accepted hit passes through.
// Dedup check, dedup record and aggregator insert happen under one lock so
// that no two workers can both pass the check for the same (user,
// identifier) pair, and because the underlying store connection is not safe
// for concurrent use.
type Gate struct {
	mu  sync.Mutex
	log NotificationLog
	agg *Aggregator
	now func() time.Time
}

func NewGate(log NotificationLog, agg *Aggregator) *Gate {
	return &Gate{log: log, agg: agg, now: time.Now}
}

// Offer runs one hit through dedup and aggregation. Returns true when the
// hit was accepted. A failing dedup query is treated as "not seen yet":
// notifying twice beats silently dropping a new item.
func (g *Gate) Offer(sc scanners.Scanner, hit scanners.Hit) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Another scanner already emitted this identifier during this sweep:
	// attach this scanner to the existing entry, without a second log row.
	if g.agg.Has(sc.UserID(), hit.Identifier) {
		slog.Debug("nummer attributed", "nummer", hit.Identifier, "userid", sc.UserID(), "scanner", sc.ID())
		g.agg.Accept(sc.UserID(), hit.Identifier, sc)
		hitsTotal.WithLabelValues("attributed").Inc()
		return true
	}

	seen, err := g.log.Exists(sc.UserID(), hit.Identifier)
	if err != nil {
		slog.Warn("dedup check failed, treating as unseen", "nummer", hit.Identifier, "userid", sc.UserID(), "error", err)
		seen = false
	}
	if seen {
		slog.Debug("skip nummer", "nummer", hit.Identifier, "userid", sc.UserID())
		hitsTotal.WithLabelValues("suppressed").Inc()
		return false
	}

	slog.Debug("nummer", "nummer", hit.Identifier, "userid", sc.UserID())
	g.agg.Accept(sc.UserID(), hit.Identifier, sc)

	rec := data.NotificationRecord{
		Identifier: hit.Identifier,
		UserID:     sc.UserID(),
		Soort:      sc.Kind(),
		ScannerID:  sc.ID(),
		Timestamp:  g.now().Format(data.TimestampLayout),
	}
	if err := g.log.Record(rec); err != nil {
		slog.Error("failed to record notification", "nummer", hit.Identifier, "userid", sc.UserID(), "error", err)
	}

	hitsTotal.WithLabelValues("accepted").Inc()
	return true
}
