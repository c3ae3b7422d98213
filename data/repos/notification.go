package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
)

// NotificationRepo is the persistent dedup log. Exists and Record are not
// synchronized here; the sweep serializes the check-then-insert sequence
// under its own lock.
type NotificationRepo struct {
	db *sqlx.DB
}

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db}
}

func (r *NotificationRepo) Exists(userID, identifier string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sent_notification WHERE userid = ? AND identifier = ?`

	err := r.db.Get(&count, query, userID, identifier)
	if err != nil {
		return false, fmt.Errorf("check sent notification: %w", err)
	}

	return count > 0, nil
}

func (r *NotificationRepo) Record(rec data.NotificationRecord) error {
	query := `
		INSERT INTO sent_notification (identifier, userid, soort, scanner_id, timestamp)
		VALUES (:identifier, :userid, :soort, :scanner_id, :timestamp)`

	_, err := r.db.NamedExec(query, rec)
	if err != nil {
		return fmt.Errorf("record sent notification: %w", err)
	}

	return nil
}
