package sweep

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
)

// SessionSource hands out index sessions, one per worker.
type SessionSource interface {
	Open() (*index.Session, error)
}

// Pool runs scanners with a fixed number of workers. Workers claim scanner
// indices from a shared atomic cursor, so a slow scanner only occupies the
// worker that claimed it. There is no cancellation; Run returns when every
// scanner has been executed.
type Pool struct {
	sessions SessionSource
	gate     *Gate
	workers  int
}

func NewPool(sessions SessionSource, gate *Gate, workers int) *Pool {
	return &Pool{sessions: sessions, gate: gate, workers: workers}
}

// Run executes the scanners and blocks until every worker is done. It
// returns an error when not a single worker could open an index session:
// in that case nothing was scanned and the sweep must not advance cutoffs.
func (p *Pool) Run(scs []scanners.Scanner) error {
	var cursor atomic.Int64
	var opened atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			sess, err := p.sessions.Open()
			if err != nil {
				slog.Error("worker could not open index session", "worker", worker, "error", err)
				return
			}
			defer sess.Close()
			opened.Add(1)

			for n := cursor.Add(1) - 1; n < int64(len(scs)); n = cursor.Add(1) - 1 {
				p.runScanner(sess, scs[n])
			}
		}(w)
	}

	wg.Wait()

	if opened.Load() == 0 {
		return errors.New("no worker could open an index session")
	}
	return nil
}

func (p *Pool) runScanner(sess *index.Session, sc scanners.Scanner) {
	label := sc.Describe(sess)
	slog.Info("running scanner", "scanner", label, "userid", sc.UserID())

	hits, err := sc.Run(sess)
	if err != nil {
		slog.Error("scanner failed", "scanner", label, "error", err)
		scannersTotal.WithLabelValues("failed").Inc()
		return
	}

	for _, hit := range hits {
		p.gate.Offer(sc, hit)
	}

	scannersTotal.WithLabelValues("ok").Inc()
}
