package sweep

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/models"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/scanners"
)

const (
	subjectPrefix = "[opentk alert] "

	// Identifiers longer than this are compound keys (UUIDs and the like);
	// only their first displayPrefixLen characters are shown. The full
	// identifier stays the canonical key everywhere else.
	displayMaxLen    = 11
	displayPrefixLen = 8
)

// Describer resolves a human-readable description for an identifier. A miss
// yields the empty string; it never fails a group.
type Describer func(identifier string) string

// Composer turns one user's aggregated hits into a renderable payload.
// Hits are grouped by the exact set of scanners that produced them: two
// identifiers share a group iff their scanner sets are equal.
type Composer struct {
	describe Describer
}

func NewComposer(describe Describer) *Composer {
	return &Composer{describe: describe}
}

func (c *Composer) Compose(sess *index.Session, hits map[string]map[int64]scanners.Scanner) *models.Payload {
	type group struct {
		set     map[int64]scanners.Scanner
		nummers []string
	}

	grpd := make(map[string]*group)
	union := make(map[int64]scanners.Scanner)
	for nummer, set := range hits {
		key := scannerSetKey(set)
		g, ok := grpd[key]
		if !ok {
			g = &group{set: set}
			grpd[key] = g
		}
		g.nummers = append(g.nummers, nummer)
		for id, sc := range set {
			union[id] = sc
		}
	}

	keys := make([]string, 0, len(grpd))
	for key := range grpd {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	payload := &models.Payload{Groups: make([]models.Group, 0, len(keys))}
	for _, key := range keys {
		g := grpd[key]

		names := make([]string, 0, len(g.set))
		for _, id := range sortedIDs(g.set) {
			names = append(names, g.set[id].Describe(sess))
		}

		sort.Strings(g.nummers)
		descs := make([]models.HitDesc, 0, len(g.nummers))
		for _, nummer := range g.nummers {
			descs = append(descs, models.HitDesc{
				DispNummer:  displayForm(nummer),
				Nummer:      nummer,
				Description: c.describe(nummer),
			})
		}

		payload.Groups = append(payload.Groups, models.Group{ScannerNames: names, Hits: descs})
	}

	payload.Subject = subject(sess, union)
	return payload
}

// subject joins the labels of every scanner that contributed to this user's
// payload, deduplicated, in scanner id order.
func subject(sess *index.Session, union map[int64]scanners.Scanner) string {
	labels := make([]string, 0, len(union))
	for _, id := range sortedIDs(union) {
		labels = append(labels, union[id].Describe(sess))
	}
	return subjectPrefix + strings.Join(labels, ", ")
}

func displayForm(nummer string) string {
	if len(nummer) > displayMaxLen {
		return nummer[:displayPrefixLen]
	}
	return nummer
}

// scannerSetKey is a canonical serialization of a scanner set, used both as
// the grouping key and to order groups deterministically.
func scannerSetKey(set map[int64]scanners.Scanner) string {
	ids := sortedIDs(set)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

func sortedIDs(set map[int64]scanners.Scanner) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
