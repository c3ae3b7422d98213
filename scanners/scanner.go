// Package scanners holds the per-kind watchers that query the index store
// for new items on behalf of one user.
package scanners

import (
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
)

// Hit is one newly observed item. The identifier is the canonical key into
// the index store (a document nummer, vergadering id, or activity nummer).
type Hit struct {
	Identifier string
}

// Scanner is one configured watcher. Run produces the hits since the
// scanner's cutoff date; Describe returns a human-readable label, which may
// consult the index (committee scanners resolve their committee's name).
type Scanner interface {
	ID() int64
	UserID() string
	Kind() string
	Cutoff() string
	Describe(sess *index.Session) string
	Run(sess *index.Session) ([]Hit, error)
}

// base carries the configuration row shared by every scanner kind.
type base struct {
	row data.ScannerRow
}

func (b base) ID() int64      { return b.row.ID }
func (b base) UserID() string { return b.row.UserID }
func (b base) Kind() string   { return b.row.Soort }
func (b base) Cutoff() string { return b.row.Cutoff }
