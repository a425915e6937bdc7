package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/startovate/server/internal/config"
	"github.com/startovate/server/internal/models"
	"github.com/wneessen/go-mail"
)

// ErrDeliveryFailed wraps any transport or auth failure while sending.
var ErrDeliveryFailed = errors.New("email delivery failed")

// Mailer delivers generated ideas over authenticated SMTP with implicit TLS
// (the original used Gmail's SMTPS endpoint on port 465).
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendIdea composes the fixed-template message and sends it to the address.
func (m *Mailer) SendIdea(to string, idea models.IdeaRecord) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("%w: SMTP credentials not configured", ErrDeliveryFailed)
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	msg.Subject("Your Startup Idea: " + idea.Name)
	msg.SetBodyString(mail.TypeTextPlain, IdeaEmailBody(idea))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// IdeaEmailBody renders the fixed plaintext template for one idea.
func IdeaEmailBody(idea models.IdeaRecord) string {
	return fmt.Sprintf(`🚀 Startup Name: %s
📌 Tagline: %s
🧠 Idea: A %s for %s in %s to %s
🎯 Goal: %s
💸 Monetization: %s
🌍 Region: %s
👥 Team Size: %d
📊 Feasibility Score: %d / 100

Thank you for using Startovate!
`,
		idea.Name,
		idea.Tagline,
		idea.Tech, idea.Audience, idea.Industry, idea.Idea,
		idea.Goal,
		strings.Join(idea.Monetization, " | "),
		idea.Region,
		idea.Team,
		idea.Score,
	)
}
