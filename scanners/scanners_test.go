package scanners

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func openTestIndex(t *testing.T) *index.Session {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tkindex.sqlite3")
	db, err := sqlx.Connect("sqlite", path)
	require.NoError(t, err)

	db.MustExec(`
		CREATE TABLE Document (nummer TEXT, onderwerp TEXT, titel TEXT, datum TEXT, dossier_nummer TEXT);
		CREATE TABLE Activiteit (nummer TEXT, soort TEXT, onderwerp TEXT, datum TEXT, commissie_id TEXT);
		CREATE TABLE Commissie (id TEXT, naam TEXT);`)
	db.MustExec(`INSERT INTO Document VALUES
		('D1', 'Wetsvoorstel stikstof', '', '2024-06-01', '36200'),
		('D2', 'Stikstofbeleid in de praktijk', '', '2024-06-02', '36200'),
		('D3', 'Begroting landbouw', '', '2024-06-03', '36300'),
		('D4', 'Oud stikstof stuk', '', '2020-01-01', '36200')`)
	db.MustExec(`INSERT INTO Activiteit VALUES
		('A1', 'Commissiedebat', 'Stikstof', '2024-06-04', 'C1')`)
	db.MustExec(`INSERT INTO Commissie VALUES ('C1', 'Landbouw')`)
	require.NoError(t, db.Close())

	sess, err := index.NewStore(path).Open()
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

func identifiers(hits []Hit) []string {
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.Identifier)
	}
	return ids
}

func TestZoekScanner_BroadMode(t *testing.T) {
	sess := openTestIndex(t)

	sc, err := DefaultRegistry().New(data.ScannerRow{
		ID: 1, UserID: "alice", Soort: KindZoek, Cutoff: "2024-01-01",
		Term: nullString("stikstof"),
	})
	assert.NoError(t, err)

	hits, err := sc.Run(sess)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"D1", "D2"}, identifiers(hits))
}

func TestZoekScanner_ExactMode(t *testing.T) {
	sess := openTestIndex(t)

	sc, err := DefaultRegistry().New(data.ScannerRow{
		ID: 1, UserID: "alice", Soort: KindZoek, Cutoff: "2024-01-01",
		Term: nullString("stikstof"), MatchMode: nullString("exact"),
	})
	assert.NoError(t, err)

	hits, err := sc.Run(sess)
	assert.NoError(t, err)
	assert.Equal(t, []string{"D1"}, identifiers(hits), "exact mode must not match inside words")
}

func TestZoekScanner_Describe(t *testing.T) {
	sc, err := DefaultRegistry().New(data.ScannerRow{
		ID: 1, UserID: "alice", Soort: KindZoek, Cutoff: "2024-01-01",
		Term: nullString("stikstof"),
	})
	assert.NoError(t, err)
	assert.Equal(t, `Zoekopdracht "stikstof"`, sc.Describe(nil))
}

func TestDossierScanner(t *testing.T) {
	sess := openTestIndex(t)

	sc, err := DefaultRegistry().New(data.ScannerRow{
		ID: 2, UserID: "alice", Soort: KindDossier, Cutoff: "2024-01-01",
		Dossier: nullString("36200"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Dossier 36200", sc.Describe(nil))

	hits, err := sc.Run(sess)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"D1", "D2"}, identifiers(hits))
}

func TestCommissieScanner(t *testing.T) {
	sess := openTestIndex(t)

	sc, err := DefaultRegistry().New(data.ScannerRow{
		ID: 3, UserID: "alice", Soort: KindCommissie, Cutoff: "2024-01-01",
		CommitteeID: nullString("C1"),
	})
	assert.NoError(t, err)

	assert.Equal(t, "Commissie Landbouw", sc.Describe(sess))
	assert.Equal(t, "Commissie C1", sc.Describe(nil), "falls back to the id without a session")

	hits, err := sc.Run(sess)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A1"}, identifiers(hits))
}

func TestRegistry_UnknownKind(t *testing.T) {
	_, err := DefaultRegistry().New(data.ScannerRow{ID: 1, Soort: "weather"})
	assert.Error(t, err)
}

func TestRegistry_InvalidConfiguration(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.New(data.ScannerRow{ID: 1, Soort: KindZoek})
	assert.Error(t, err, "zoek without a term")

	_, err = reg.New(data.ScannerRow{ID: 2, Soort: KindZoek, Term: nullString("wet"), MatchMode: nullString("fuzzy")})
	assert.Error(t, err, "invalid match mode")

	_, err = reg.New(data.ScannerRow{ID: 3, Soort: KindDossier})
	assert.Error(t, err, "dossier without a number")

	_, err = reg.New(data.ScannerRow{ID: 4, Soort: KindCommissie})
	assert.Error(t, err, "commissie without an id")
}

func TestLoad_SkipsBadRows(t *testing.T) {
	rows := []data.ScannerRow{
		{ID: 1, UserID: "alice", Soort: KindZoek, Cutoff: "2024-01-01", Term: nullString("wet")},
		{ID: 2, UserID: "alice", Soort: "weather", Cutoff: "2024-01-01"},
		{ID: 3, UserID: "bob", Soort: KindDossier, Cutoff: "2024-01-01", Dossier: nullString("36200")},
	}

	loaded := Load(DefaultRegistry(), rows)
	assert.Len(t, loaded, 2)
	assert.Equal(t, int64(1), loaded[0].ID())
	assert.Equal(t, int64(3), loaded[1].ID())
}
