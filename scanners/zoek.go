package scanners

import (
	"fmt"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/matchers"
)

const KindZoek = "zoek"

// zoekScanner watches for documents whose subject or title matches a search
// term since the cutoff date.
type zoekScanner struct {
	base
	term string
	mode matchers.Mode
}

func newZoekScanner(row data.ScannerRow) (Scanner, error) {
	if !row.Term.Valid || row.Term.String == "" {
		return nil, fmt.Errorf("zoek scanner %d has no term", row.ID)
	}

	mode := matchers.ModeBroad
	if row.MatchMode.Valid && row.MatchMode.String != "" {
		mode = matchers.Mode(row.MatchMode.String)
		if mode != matchers.ModeBroad && mode != matchers.ModeExact {
			return nil, fmt.Errorf("zoek scanner %d has invalid match mode %q", row.ID, row.MatchMode.String)
		}
	}

	return &zoekScanner{base: base{row}, term: row.Term.String, mode: mode}, nil
}

func (s *zoekScanner) Describe(_ *index.Session) string {
	return fmt.Sprintf("Zoekopdracht %q", s.term)
}

func (s *zoekScanner) Run(sess *index.Session) ([]Hit, error) {
	rows, err := sess.SearchDocuments(s.term, s.Cutoff())
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(rows))
	for _, row := range rows {
		// The store query is a substring filter; exact mode still needs
		// word boundaries checked here.
		if !matchers.Matches(s.mode, row.Onderwerp+" "+row.Titel, s.term) {
			continue
		}
		hits = append(hits, Hit{Identifier: row.Nummer})
	}

	return hits, nil
}
