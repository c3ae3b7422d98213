package notifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/models"
)

func testPayload() *models.Payload {
	return &models.Payload{
		Subject: "[opentk alert] Dossier 36200",
		Groups: []models.Group{
			{
				ScannerNames: []string{"Dossier 36200", `Zoekopdracht "stikstof"`},
				Hits: []models.HitDesc{
					{DispNummer: "2024D000", Nummer: "2024D00001-long-key", Description: "Wetsvoorstel stikstof"},
				},
			},
		},
	}
}

func TestAlertEmail_RendersBothBodies(t *testing.T) {
	mailer := NewMailer("localhost", "25", "opentk@hubertnet.nl", "")

	mail, err := mailer.AlertEmail("alice@example.nl", testPayload())
	assert.NoError(t, err)

	assert.Equal(t, "alice@example.nl", mail.To)
	assert.Equal(t, "[opentk alert] Dossier 36200", mail.Subject)

	assert.Contains(t, mail.TextBody, `Dossier 36200, Zoekopdracht "stikstof"`)
	assert.Contains(t, mail.TextBody, "2024D000 Wetsvoorstel stikstof")

	assert.Contains(t, mail.HTMLBody, "<b>2024D000</b>")
	assert.Contains(t, mail.HTMLBody, "Wetsvoorstel stikstof")
}

func TestAlertEmail_HTMLBodyEscapes(t *testing.T) {
	mailer := NewMailer("localhost", "25", "opentk@hubertnet.nl", "")

	payload := testPayload()
	payload.Groups[0].Hits[0].Description = `<script>alert("x")</script>`

	mail, err := mailer.AlertEmail("alice@example.nl", payload)
	assert.NoError(t, err)

	assert.NotContains(t, mail.HTMLBody, "<script>")
	assert.Contains(t, mail.TextBody, `<script>alert("x")</script>`, "text body is not escaped")
}
