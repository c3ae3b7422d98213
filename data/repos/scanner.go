package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
)

type ScannerRepo struct {
	db *sqlx.DB
}

func NewScannerRepo(db *sqlx.DB) *ScannerRepo {
	return &ScannerRepo{db}
}

func (r *ScannerRepo) GetScanners() ([]data.ScannerRow, error) {
	var rows []data.ScannerRow
	query := `
		SELECT id, userid, soort, cutoff, term, match_mode, dossier_nummer, commissie_id
		FROM scanners
		ORDER BY id ASC`

	err := r.db.Select(&rows, query)
	if err != nil {
		return nil, fmt.Errorf("get scanners: %w", err)
	}

	return rows, nil
}

func (r *ScannerRepo) UpdateCutoff(id int64, cutoff string) error {
	_, err := r.db.Exec(`UPDATE scanners SET cutoff = ? WHERE id = ?`, cutoff, id)
	if err != nil {
		return fmt.Errorf("update cutoff for scanner %d: %w", id, err)
	}

	return nil
}
