package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	ReportAttachmentName        = "cost-estimate.txt"
	ReportAttachmentContentType = "text/plain; charset=utf-8"

	defaultMailTimeout = 30 * time.Second
)

var (
	ErrMailTransportNotConfigured = errors.New("mail transport not configured")
	ErrRecipientNotConfigured     = errors.New("recipient not configured")
)

// NotificationRequest is everything the dispatcher needs after a report was produced.
type NotificationRequest struct {
	Identity         entities.Identity
	PaymentSessionID string
	Report           string
	Estimate         entities.CostEstimate
}

// NotificationOutcome lists delivered and failed messages. Err combines every
// failure and is nil when all sends succeeded.
type NotificationOutcome struct {
	Sent     []entities.NotificationKind
	Failures []entities.StepFailure
	Err      error
}

// INotificationUseCase sends the client, admin and (conditionally) lead emails.
type INotificationUseCase interface {
	Dispatch(ctx context.Context, req NotificationRequest) NotificationOutcome
}

type NotificationConfig struct {
	AdminEmail string
	LeadEmail  string
	PreparedBy string
	Timeout    time.Duration
}

type NotificationUseCase struct {
	transport interfaces.IMailTransport
	cfg       NotificationConfig
	logger    *zap.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(transport interfaces.IMailTransport, cfg NotificationConfig, logger *zap.Logger) *NotificationUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultMailTimeout
	}
	return &NotificationUseCase{transport: transport, cfg: cfg, logger: orNop(logger).Named("notification")}
}

// Dispatch sends sequentially. A failed send is recorded and the remaining
// messages are still attempted.
func (u *NotificationUseCase) Dispatch(ctx context.Context, req NotificationRequest) NotificationOutcome {
	var out NotificationOutcome

	messages := []entities.EmailMessage{
		u.clientMessage(req),
		u.adminMessage(req),
	}
	if req.Estimate.IsPestLead() {
		messages = append(messages, u.leadMessage(req))
	}

	for _, msg := range messages {
		if err := u.send(ctx, msg); err != nil {
			u.logger.Warn("send failed", zap.String("kind", string(msg.Kind)), zap.Error(err))
			out.Err = multierr.Append(out.Err, fmt.Errorf("%s email: %w", msg.Kind, err))
			out.Failures = append(out.Failures, entities.StepFailure{
				Stage:  entities.ProcessStageNotified,
				Target: msg.Kind,
				Error:  err.Error(),
			})
			continue
		}
		u.logger.Info("sent", zap.String("kind", string(msg.Kind)))
		out.Sent = append(out.Sent, msg.Kind)
	}
	return out
}

func (u *NotificationUseCase) send(ctx context.Context, msg entities.EmailMessage) error {
	if u.transport == nil {
		return ErrMailTransportNotConfigured
	}
	if strings.TrimSpace(msg.To) == "" {
		return ErrRecipientNotConfigured
	}
	sendCtx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()
	return u.transport.Send(sendCtx, msg)
}

func (u *NotificationUseCase) clientMessage(req NotificationRequest) entities.EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", strings.TrimSpace(req.Identity.FirstName))
	fmt.Fprintf(&b, "Thank you for your purchase. Attached is the repair cost estimate for %s.\n\n", req.Identity.PropertyAddress)
	b.WriteString("The estimate was generated from the inspection report you uploaded. Amounts are typical\n")
	b.WriteString("handyman and licensed contractor price ranges, not quotes.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(u.cfg.PreparedBy + "\n")

	return entities.EmailMessage{
		Kind:    entities.NotificationClient,
		To:      req.Identity.Email,
		Subject: "Your Home Inspection Cost Estimate - " + req.Identity.PropertyAddress,
		Body:    b.String(),
		Attachments: []entities.EmailAttachment{{
			Filename:    ReportAttachmentName,
			ContentType: ReportAttachmentContentType,
			Content:     []byte(req.Report),
		}},
	}
}

// adminMessage carries identity only; cost data stays with the customer.
func (u *NotificationUseCase) adminMessage(req NotificationRequest) entities.EmailMessage {
	var b strings.Builder
	b.WriteString("A new inspection report was submitted.\n\n")
	writeContact(&b, req.Identity)
	if req.PaymentSessionID != "" {
		fmt.Fprintf(&b, "Payment Session: %s\n", req.PaymentSessionID)
	}

	return entities.EmailMessage{
		Kind:    entities.NotificationAdmin,
		To:      u.cfg.AdminEmail,
		Subject: "New inspection report submission: " + req.Identity.FullName(),
		Body:    b.String(),
	}
}

func (u *NotificationUseCase) leadMessage(req NotificationRequest) entities.EmailMessage {
	var b strings.Builder
	b.WriteString("The inspection report for this property mentions pest activity.\n\n")
	fmt.Fprintf(&b, "Termites mentioned: %s\n", yesNo(req.Estimate.TermitesMentioned))
	fmt.Fprintf(&b, "Pests mentioned: %s\n\n", yesNo(req.Estimate.PestsMentioned))
	writeContact(&b, req.Identity)

	return entities.EmailMessage{
		Kind:    entities.NotificationLead,
		To:      u.cfg.LeadEmail,
		Subject: "Pest inspection lead: " + req.Identity.PropertyAddress,
		Body:    b.String(),
	}
}

func writeContact(b *strings.Builder, id entities.Identity) {
	fmt.Fprintf(b, "Name: %s\n", id.FullName())
	fmt.Fprintf(b, "Email: %s\n", id.Email)
	phone := id.Phone
	if strings.TrimSpace(phone) == "" {
		phone = "not provided"
	}
	fmt.Fprintf(b, "Phone: %s\n", phone)
	fmt.Fprintf(b, "Property Address: %s\n", id.PropertyAddress)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
