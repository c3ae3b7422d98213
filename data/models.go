package data

// NotificationRecord is one row of the append-only sent_notification log.
// A (UserID, Identifier) pair appearing in the log suppresses any further
// notification for that pair.
type NotificationRecord struct {
	Identifier string `db:"identifier"`
	UserID     string `db:"userid"`
	Soort      string `db:"soort"`
	ScannerID  int64  `db:"scanner_id"`
	Timestamp  string `db:"timestamp"`
}

// TimestampLayout is the local-time format recorded with each notification.
const TimestampLayout = "2006-01-02T15:04:05"

// CutoffLayout is the date format of a scanner's cutoff column.
const CutoffLayout = "2006-01-02"
