// Package index provides read-only access to the Tweede Kamer index
// database produced by the ingest side. The sweep never writes here.
package index

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store hands out read-only sessions on the index database. Opening is
// serialized because SQLite gets unhappy when multiple goroutines open the
// same file at the same time.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Open() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?mode=ro", s.path))
	if err != nil {
		return nil, fmt.Errorf("open index store: %w", err)
	}

	return &Session{db: db}, nil
}

// Session is a single read connection. Not safe for concurrent use; each
// sweep worker owns its own.
type Session struct {
	db *sqlx.DB
}

func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

type DocumentRow struct {
	Nummer    string `db:"nummer"`
	Onderwerp string `db:"onderwerp"`
	Titel     string `db:"titel"`
}

// SearchDocuments returns documents on or after the cutoff date whose
// subject or title contains the term. Matching here is a coarse substring
// filter; callers refine it further if they need word boundaries.
func (s *Session) SearchDocuments(term, since string) ([]DocumentRow, error) {
	var rows []DocumentRow
	pattern := "%" + strings.ToLower(term) + "%"
	query := `
		SELECT nummer, IFNULL(onderwerp, '') AS onderwerp, IFNULL(titel, '') AS titel
		FROM Document
		WHERE datum >= ? AND (LOWER(onderwerp) LIKE ? OR LOWER(titel) LIKE ?)`

	err := s.db.Select(&rows, query, since, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	return rows, nil
}

// DossierDocuments returns document numbers filed under a dossier on or
// after the cutoff date.
func (s *Session) DossierDocuments(dossier, since string) ([]string, error) {
	var nummers []string
	query := `SELECT nummer FROM Document WHERE dossier_nummer = ? AND datum >= ?`

	err := s.db.Select(&nummers, query, dossier, since)
	if err != nil {
		return nil, fmt.Errorf("dossier documents: %w", err)
	}

	return nummers, nil
}

// CommitteeActivities returns activity numbers of a committee on or after
// the cutoff date.
func (s *Session) CommitteeActivities(committeeID, since string) ([]string, error) {
	var nummers []string
	query := `SELECT nummer FROM Activiteit WHERE commissie_id = ? AND datum >= ?`

	err := s.db.Select(&nummers, query, committeeID, since)
	if err != nil {
		return nil, fmt.Errorf("committee activities: %w", err)
	}

	return nummers, nil
}

func (s *Session) CommitteeName(committeeID string) (string, error) {
	var naam string
	query := `SELECT naam FROM Commissie WHERE id = ?`

	err := s.db.Get(&naam, query, committeeID)
	if err != nil {
		return "", fmt.Errorf("committee name: %w", err)
	}

	return naam, nil
}

// DocumentDescription resolves a human-readable description for an
// identifier, trying Document, then Vergadering, then Activiteit. Activity
// descriptions get the activity date appended, or a note that no date is
// known yet. Returns the empty string when nothing matches.
func (s *Session) DocumentDescription(nummer string) (string, error) {
	var onderwerp string
	err := s.db.Get(&onderwerp, `SELECT IFNULL(onderwerp, '') FROM Document WHERE nummer = ?`, nummer)
	if err == nil {
		return onderwerp, nil
	}

	var titel string
	err = s.db.Get(&titel, `SELECT IFNULL(titel, '') FROM Vergadering WHERE id = ?`, nummer)
	if err == nil {
		return titel, nil
	}

	var act struct {
		Onderwerp string `db:"onderwerp"`
		Datum     string `db:"datum"`
	}
	err = s.db.Get(&act, `
		SELECT soort || ' ' || IFNULL(onderwerp, '') AS onderwerp, IFNULL(datum, '') AS datum
		FROM Activiteit WHERE nummer = ?`, nummer)
	if err != nil {
		return "", nil
	}

	if act.Datum == "" {
		return act.Onderwerp + " (nog geen datum)", nil
	}
	datum := act.Datum
	if len(datum) > 10 {
		datum = datum[:10] + " " + datum[11:]
	}
	return act.Onderwerp + " (" + datum + ")", nil
}
