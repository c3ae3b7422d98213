package main

import (
	"embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/config"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data/repos"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/notifiers"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/sweep"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	userdb, err := sqlx.Connect("sqlite", config.Config.UserDBPath)
	if err != nil {
		slog.Error("failed to connect to user db", "error", err)
		os.Exit(1)
	}
	defer userdb.Close()

	if err := data.RunMigrations(userdb.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if config.Config.MetricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(config.Config.MetricsAddr, promhttp.Handler()); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	scannerRepo := repos.NewScannerRepo(userdb)
	rows, err := scannerRepo.GetScanners()
	if err != nil {
		slog.Error("failed to load scanners", "error", err)
		os.Exit(1)
	}

	registry := scanners.DefaultRegistry()
	loaded := scanners.Load(registry, rows)

	sweepID := uuid.New()
	slog.Info("starting sweep", "sweep", sweepID, "scanners", len(loaded), "workers", config.Config.SweepWorkers)

	store := index.NewStore(config.Config.IndexDBPath)
	agg := sweep.NewAggregator()
	gate := sweep.NewGate(repos.NewNotificationRepo(userdb), agg)

	pool := sweep.NewPool(store, gate, config.Config.SweepWorkers)
	if err := pool.Run(loaded); err != nil {
		slog.Error("sweep aborted before dispatch, cutoffs left in place", "sweep", sweepID, "error", err)
		os.Exit(1)
	}

	sessions, err := index.NewSessionPool(store, 1)
	if err != nil {
		slog.Error("failed to open index sessions for dispatch", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	sess := sessions.Get()
	defer sessions.Put(sess)

	composer := sweep.NewComposer(func(nummer string) string {
		desc, err := sess.DocumentDescription(nummer)
		if err != nil {
			slog.Debug("description lookup failed", "nummer", nummer, "error", err)
			return ""
		}
		return desc
	})

	mailer := notifiers.NewMailer(
		config.Config.SMTPHost,
		config.Config.SMTPPort,
		config.Config.SMTPFrom,
		config.Config.SMTPPassword,
	)

	dispatcher := sweep.NewDispatcher(repos.NewUserRepo(userdb), scannerRepo, mailer, composer)
	if err := dispatcher.Dispatch(sess, agg, loaded); err != nil {
		slog.Error("sweep finished with failures", "sweep", sweepID, "error", err)
		os.Exit(1)
	}

	slog.Info("sweep complete", "sweep", sweepID)
}
