package data

import "database/sql"

// ScannerRow is one configured scanner as stored in the user database.
// Kind-specific columns (term, dossier, committee) are nullable; which
// ones are set depends on Soort.
type ScannerRow struct {
	ID          int64          `db:"id"`
	UserID      string         `db:"userid"`
	Soort       string         `db:"soort"`
	Cutoff      string         `db:"cutoff"`
	Term        sql.NullString `db:"term"`
	MatchMode   sql.NullString `db:"match_mode"`
	Dossier     sql.NullString `db:"dossier_nummer"`
	CommitteeID sql.NullString `db:"commissie_id"`
}

type User struct {
	UserID string `db:"user"`
	Email  string `db:"email"`
}
