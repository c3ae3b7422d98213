package scanners

import (
	"fmt"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
)

const KindCommissie = "commissie"

// commissieScanner watches for new activities of one committee.
type commissieScanner struct {
	base
	committeeID string
}

func newCommissieScanner(row data.ScannerRow) (Scanner, error) {
	if !row.CommitteeID.Valid || row.CommitteeID.String == "" {
		return nil, fmt.Errorf("commissie scanner %d has no committee id", row.ID)
	}
	return &commissieScanner{base: base{row}, committeeID: row.CommitteeID.String}, nil
}

func (s *commissieScanner) Describe(sess *index.Session) string {
	if sess != nil {
		if naam, err := sess.CommitteeName(s.committeeID); err == nil && naam != "" {
			return "Commissie " + naam
		}
	}
	return "Commissie " + s.committeeID
}

func (s *commissieScanner) Run(sess *index.Session) ([]Hit, error) {
	nummers, err := sess.CommitteeActivities(s.committeeID, s.Cutoff())
	if err != nil {
		return nil, fmt.Errorf("committee %s: %w", s.committeeID, err)
	}

	hits := make([]Hit, 0, len(nummers))
	for _, nummer := range nummers {
		hits = append(hits, Hit{Identifier: nummer})
	}

	return hits, nil
}
