package scanners

import (
	"fmt"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/data"
	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/index"
)

const KindDossier = "dossier"

// dossierScanner watches for new documents filed under one dossier.
type dossierScanner struct {
	base
	dossier string
}

func newDossierScanner(row data.ScannerRow) (Scanner, error) {
	if !row.Dossier.Valid || row.Dossier.String == "" {
		return nil, fmt.Errorf("dossier scanner %d has no dossier number", row.ID)
	}
	return &dossierScanner{base: base{row}, dossier: row.Dossier.String}, nil
}

func (s *dossierScanner) Describe(_ *index.Session) string {
	return "Dossier " + s.dossier
}

func (s *dossierScanner) Run(sess *index.Session) ([]Hit, error) {
	nummers, err := sess.DossierDocuments(s.dossier, s.Cutoff())
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(nummers))
	for _, nummer := range nummers {
		hits = append(hits, Hit{Identifier: nummer})
	}

	return hits, nil
}
