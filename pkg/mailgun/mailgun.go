package mailgun

import (
	"context"
	"fmt"

	mailgun "github.com/mailgun/mailgun-go/v5"
	"github.com/rs/zerolog"
)

// Config contains the credentials and addressing used to talk to Mailgun.
type Config struct {
	APIKey  string
	Domain  string
	BaseURL string
	Sender  string
}

// Enabled reports whether the configuration is sufficient to send mail.
func (c Config) Enabled() bool {
	return c.APIKey != "" && c.Domain != ""
}

// Message describes a single outbound email.
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
	ReplyTo string
	CC      []string
	BCC     []string
}

// Outcome reports a successful dispatch. A nil Outcome means the message was
// not delivered to the provider; the cause is logged, never returned.
type Outcome struct {
	MessageID string
}

// Service sends transactional email through the Mailgun HTTP API.
type Service struct {
	cfg    Config
	client mailgun.Mailgun
	logger zerolog.Logger
}

// New constructs a Mailgun service. When client is nil and the configuration
// is complete, a default API client is created; passing an explicit client
// allows tests to point the service at a local server.
func New(cfg Config, client mailgun.Mailgun, logger zerolog.Logger) *Service {
	if client == nil && cfg.Enabled() {
		mg := mailgun.NewMailgun(cfg.APIKey)
		if cfg.BaseURL != "" {
			mg.SetAPIBase(cfg.BaseURL)
		}
		client = mg
	}

	return &Service{
		cfg:    cfg,
		client: client,
		logger: logger.With().Str("component", "mailgun").Logger(),
	}
}

// Enabled reports whether the service can reach the provider.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled() && s.client != nil
}

// Send performs a single, best-effort dispatch. Delivery failures are logged
// and reported as a nil outcome so callers can treat email as a side effect
// rather than a precondition. Exactly one API call is made; there is no retry.
func (s *Service) Send(ctx context.Context, msg Message) *Outcome {
	if !s.cfg.Enabled() || s.client == nil {
		s.logger.Warn().Msg("mailgun credentials missing, skipping send")
		return nil
	}

	if len(msg.To) == 0 || msg.Subject == "" || (msg.Text == "" && msg.HTML == "") {
		s.logger.Warn().Strs("to", msg.To).Msg("incomplete message, skipping send")
		return nil
	}

	m := mailgun.NewMessage(s.cfg.Domain, s.cfg.Sender, msg.Subject, msg.Text, msg.To...)
	if msg.HTML != "" {
		m.SetHTML(msg.HTML)
	}
	if msg.ReplyTo != "" {
		m.SetReplyTo(msg.ReplyTo)
	}
	for _, cc := range msg.CC {
		m.AddCC(cc)
	}
	for _, bcc := range msg.BCC {
		m.AddBCC(bcc)
	}

	resp, err := s.client.Send(ctx, m)
	if err != nil {
		s.logger.Warn().Err(err).Strs("to", msg.To).Str("subject", msg.Subject).Msg("mailgun send failed")
		return nil
	}

	s.logger.Info().Str("message_id", resp.ID).Strs("to", msg.To).Msg("email dispatched")
	return &Outcome{MessageID: resp.ID}
}

// SendTemplate dispatches a message rendered from a provider-side stored
// template. Behaves like Send: best effort, nil outcome on failure.
func (s *Service) SendTemplate(ctx context.Context, to []string, subject, template string, variables map[string]interface{}) *Outcome {
	if !s.cfg.Enabled() || s.client == nil {
		s.logger.Warn().Msg("mailgun credentials missing, skipping template send")
		return nil
	}

	if len(to) == 0 || template == "" {
		s.logger.Warn().Strs("to", to).Msg("incomplete template message, skipping send")
		return nil
	}

	m := mailgun.NewMessage(s.cfg.Domain, s.cfg.Sender, subject, "", to...)
	m.SetTemplate(template)
	for key, value := range variables {
		if err := m.AddTemplateVariable(key, value); err != nil {
			s.logger.Warn().Err(err).Str("variable", key).Msg("invalid template variable, skipping send")
			return nil
		}
	}

	resp, err := s.client.Send(ctx, m)
	if err != nil {
		s.logger.Warn().Err(err).Strs("to", to).Str("template", template).Msg("mailgun template send failed")
		return nil
	}

	s.logger.Info().Str("message_id", resp.ID).Str("template", template).Msg("template email dispatched")
	return &Outcome{MessageID: resp.ID}
}

// SendWelcome composes the standard welcome note for a new lead and delegates
// to Send.
func (s *Service) SendWelcome(ctx context.Context, to, name string) *Outcome {
	return s.Send(ctx, Message{
		To:      []string{to},
		Subject: "Bienvenido a Zititex",
		Text: fmt.Sprintf(
			"Hola %s,\n\nGracias por tu interés en Zititex. Nuestro equipo está a tu disposición para cualquier consulta.\n\nSaludos,\nEquipo Zititex",
			name,
		),
	})
}
