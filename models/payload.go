package models

// HitDesc is one identifier prepared for rendering. Nummer is the full
// canonical key; DispNummer is the short display form.
type HitDesc struct {
	DispNummer  string `json:"dispnummer"`
	Nummer      string `json:"nummer"`
	Description string `json:"description"`
}

// Group is a set of hits that were all produced by exactly the same set of
// scanners.
type Group struct {
	ScannerNames []string  `json:"scannernames"`
	Hits         []HitDesc `json:"hits"`
}

// Payload is the complete message content for one user: groups in a
// deterministic order plus the subject line.
type Payload struct {
	Groups  []Group `json:"payload"`
	Subject string  `json:"-"`
}
