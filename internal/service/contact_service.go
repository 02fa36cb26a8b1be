package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/observability"
	"github.com/zititex/zititex-api/internal/repository"
	"github.com/zititex/zititex-api/pkg/mailgun"
)

var (
	// ErrEmailNotConfigured indicates the Mailgun API key or domain is missing.
	ErrEmailNotConfigured = errors.New("email service not configured")
	// ErrAdminEmailNotConfigured indicates no admin notification address is set.
	ErrAdminEmailNotConfigured = errors.New("admin email not configured")
)

// Mailer is the outbound email transport used by the contact workflow.
// A nil outcome signals a failed dispatch; the transport never errors.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg mailgun.Message) *mailgun.Outcome
}

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResult, error)
}

type contactService struct {
	repo       repository.ClientRepository
	mailer     Mailer
	adminEmail string
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewContactService constructs the contact submission service. The admin
// address is injected here rather than read from a process-wide setting so
// tests stay deterministic.
func NewContactService(repo repository.ClientRepository, mailer Mailer, adminEmail string, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger.With().Str("component", "contact_service").Logger(),
		tracer:     otel.Tracer("github.com/zititex/zititex-api/internal/service/contact"),
	}
}

// Submit persists the lead and dispatches both notification emails. Email is
// a side effect of a successful submission, not a precondition: once the
// record is saved the result is success regardless of delivery outcome. The
// admin notification alone decides the recorded email status; a failed
// acknowledgment to the submitter is logged and otherwise ignored.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResult, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if !s.mailer.Enabled() {
		span.SetStatus(codes.Error, "email service not configured")
		observability.ContactSubmissions().WithLabelValues("config_error").Inc()
		return dto.ContactResult{}, ErrEmailNotConfigured
	}

	if s.adminEmail == "" {
		span.SetStatus(codes.Error, "admin email not configured")
		observability.ContactSubmissions().WithLabelValues("config_error").Inc()
		return dto.ContactResult{}, ErrAdminEmailNotConfigured
	}

	client := dto.NewClientFromContactRequest(req)
	if err := s.repo.Create(ctx, &client); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		return dto.ContactResult{}, fmt.Errorf("persist contact submission: %w", err)
	}
	span.SetAttributes(attribute.Int64("contact.client_id", int64(client.ID)))

	adminOutcome := s.mailer.Send(ctx, composeAdminNotification(req, s.adminEmail))
	emailSent := adminOutcome != nil
	if emailSent {
		observability.EmailDispatches().WithLabelValues("admin_notification", "sent").Inc()
	} else {
		observability.EmailDispatches().WithLabelValues("admin_notification", "failed").Inc()
		s.logger.Warn().Uint("client_id", client.ID).Msg("admin notification failed, submission is saved")
	}

	if ack := s.mailer.Send(ctx, composeUserAcknowledgment(req)); ack != nil {
		observability.EmailDispatches().WithLabelValues("acknowledgment", "sent").Inc()
	} else {
		observability.EmailDispatches().WithLabelValues("acknowledgment", "failed").Inc()
		s.logger.Warn().Uint("client_id", client.ID).Msg("acknowledgment email failed")
	}

	status := "saved"
	if emailSent {
		status = "sent"
	}
	observability.ContactSubmissions().WithLabelValues(status).Inc()

	s.logger.Info().
		Uint("client_id", client.ID).
		Str("email", maskEmailAddress(req.Email)).
		Bool("email_sent", emailSent).
		Msg("contact submission processed")
	span.SetStatus(codes.Ok, status)

	return dto.ContactResult{
		ID:          client.ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Message:     req.Message,
		Timestamp:   time.Now().UTC(),
		EmailSent:   emailSent,
	}, nil
}
