package scanners

import (
	"fmt"
	"log/slog"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
)

type Factory func(row data.ScannerRow) (Scanner, error)

// Registry maps a scanner kind tag to its factory. It is built explicitly
// at startup and passed to Load; there is no process-wide registration.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(kind string, f Factory) {
	r.factories[kind] = f
}

func (r *Registry) New(row data.ScannerRow) (Scanner, error) {
	f, ok := r.factories[row.Soort]
	if !ok {
		return nil, fmt.Errorf("unknown scanner kind %q", row.Soort)
	}
	return f(row)
}

// DefaultRegistry returns a registry with all built-in scanner kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindZoek, newZoekScanner)
	r.Register(KindDossier, newDossierScanner)
	r.Register(KindCommissie, newCommissieScanner)
	return r
}

// Load builds scanners from configuration rows. Rows with an unknown kind
// or invalid configuration are skipped with a log line rather than failing
// the whole sweep.
func Load(reg *Registry, rows []data.ScannerRow) []Scanner {
	loaded := make([]Scanner, 0, len(rows))
	for _, row := range rows {
		sc, err := reg.New(row)
		if err != nil {
			slog.Warn("skipping scanner", "id", row.ID, "userid", row.UserID, "error", err)
			continue
		}
		loaded = append(loaded, sc)
	}
	return loaded
}
