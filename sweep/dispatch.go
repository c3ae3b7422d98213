package sweep

import (
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/models"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
)

type UserDirectory interface {
	GetEmail(userID string) (string, error)
}

type CutoffStore interface {
	UpdateCutoff(id int64, cutoff string) error
}

type Mailer interface {
	AlertEmail(to string, payload *models.Payload) (models.Email, error)
	Send(mail models.Email) error
}

// Dispatcher runs after the pool has joined: it composes each user's
// payload, mails it, and finally advances every scanner's cutoff to today.
// The cutoff advance is unconditional; a failed dispatch does not hold a
// scanner's window open.
type Dispatcher struct {
	users    UserDirectory
	cutoffs  CutoffStore
	mailer   Mailer
	composer *Composer
	today    func() time.Time
}

func NewDispatcher(users UserDirectory, cutoffs CutoffStore, mailer Mailer, composer *Composer) *Dispatcher {
	return &Dispatcher{
		users:    users,
		cutoffs:  cutoffs,
		mailer:   mailer,
		composer: composer,
		today:    time.Now,
	}
}

// Dispatch mails every user with accepted hits and advances all cutoffs.
// Per-user failures are logged and collected; they never stop the remaining
// users or the cutoff advance.
func (d *Dispatcher) Dispatch(sess *index.Session, agg *Aggregator, scs []scanners.Scanner) error {
	var failed []error

	for _, user := range agg.Users() {
		hits := agg.UserHits(user)
		if len(hits) == 0 {
			continue
		}

		payload := d.composer.Compose(sess, hits)

		email, err := d.users.GetEmail(user)
		if err != nil {
			slog.Error("dispatch failed", "userid", user, "error", err)
			mailsTotal.WithLabelValues("failed").Inc()
			failed = append(failed, errors.Wrap(err, "dispatch user "+user))
			continue
		}

		mail, err := d.mailer.AlertEmail(email, payload)
		if err != nil {
			slog.Error("dispatch failed", "userid", user, "error", err)
			mailsTotal.WithLabelValues("failed").Inc()
			failed = append(failed, errors.Wrap(err, "render mail for user "+user))
			continue
		}

		if err := d.mailer.Send(mail); err != nil {
			slog.Error("dispatch failed", "userid", user, "error", err)
			mailsTotal.WithLabelValues("failed").Inc()
			failed = append(failed, errors.Wrap(err, "send mail for user "+user))
			continue
		}

		mailsTotal.WithLabelValues("sent").Inc()
	}

	today := d.today().Format(data.CutoffLayout)
	for _, sc := range scs {
		if err := d.cutoffs.UpdateCutoff(sc.ID(), today); err != nil {
			slog.Error("failed to advance cutoff", "scanner", sc.ID(), "error", err)
			failed = append(failed, errors.Wrapf(err, "advance cutoff for scanner %d", sc.ID()))
		}
	}

	return stderrors.Join(failed...)
}
