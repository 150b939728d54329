package email

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/ignatzorin/campus-lostfound/internal/config"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
)

// GomailMailer отправляет письма через SMTP.
type GomailMailer struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

func NewGomailMailer(cfg config.MailConfig) *GomailMailer {
	return &GomailMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (m *GomailMailer) Configured() bool {
	return m.cfg.User != "" && m.cfg.Password != ""
}

func (m *GomailMailer) Send(ctx context.Context, msg notify.MailMessage) error {
	if !m.Configured() {
		return notify.ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(m.build(msg))
}

func (m *GomailMailer) build(msg notify.MailMessage) *gomail.Message {
	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		message.AddAlternative("text/html", msg.HTML)
	}
	return message
}
