package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/config"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
)

func TestGomailMailer_NotConfigured(t *testing.T) {
	m := NewGomailMailer(config.MailConfig{Host: "smtp.example.com", Port: 587})

	assert.False(t, m.Configured())
	err := m.Send(context.Background(), notify.MailMessage{To: "asha@campus.test", Subject: "hi"})
	assert.ErrorIs(t, err, notify.ErrMailerNotConfigured)
}

func TestGomailMailer_Build(t *testing.T) {
	m := NewGomailMailer(config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "bot@campus.test",
		Password: "secret",
		From:     "bot@campus.test",
		FromName: "Lost & Found",
	})

	msg := m.build(notify.MailMessage{
		To:      "asha@campus.test",
		Subject: "Claim Approved: Wallet",
		Text:    "Pickup Instructions: Room 204",
		HTML:    "<p>Pickup Instructions: Room 204</p>",
	})

	assert.Equal(t, []string{"asha@campus.test"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Claim Approved: Wallet"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
	assert.Contains(t, buf.String(), "Room 204")
}
