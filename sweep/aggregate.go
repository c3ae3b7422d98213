package sweep

import (
	"sort"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
)

// Aggregator accumulates, per user, which scanners produced which
// identifiers during one sweep. It is purely additive and carries no
// locking of its own; Gate serializes access while workers run, and
// reads happen only after the pool has joined.
type Aggregator struct {
	// user → identifier → scanner id → scanner
	hits map[string]map[string]map[int64]scanners.Scanner
}

func NewAggregator() *Aggregator {
	return &Aggregator{hits: make(map[string]map[string]map[int64]scanners.Scanner)}
}

func (a *Aggregator) Accept(userID, identifier string, sc scanners.Scanner) {
	byID, ok := a.hits[userID]
	if !ok {
		byID = make(map[string]map[int64]scanners.Scanner)
		a.hits[userID] = byID
	}

	set, ok := byID[identifier]
	if !ok {
		set = make(map[int64]scanners.Scanner)
		byID[identifier] = set
	}

	set[sc.ID()] = sc
}

// Has reports whether an identifier was already accepted for this user
// during the current sweep.
func (a *Aggregator) Has(userID, identifier string) bool {
	_, ok := a.hits[userID][identifier]
	return ok
}

// Users returns the users with at least one accepted hit, sorted.
func (a *Aggregator) Users() []string {
	users := make([]string, 0, len(a.hits))
	for user := range a.hits {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// UserHits returns one user's identifier → scanner-set map.
func (a *Aggregator) UserHits(userID string) map[string]map[int64]scanners.Scanner {
	return a.hits[userID]
}
