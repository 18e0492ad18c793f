package mail

import (
	"context"
	"fmt"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPTransport opens one SMTP connection per message.
type SMTPTransport struct {
	client *gomail.Client
	from   string
	log    *zap.Logger
}

var _ interfaces.IMailTransport = (*SMTPTransport)(nil)

func NewSMTPTransport(cfg SMTPConfig, logger *zap.Logger) (*SMTPTransport, error) {
	if cfg.From == "" {
		return nil, ErrMissingSender
	}
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPTransport{client: client, from: cfg.From, log: logger.Named("mail")}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg entities.EmailMessage) error {
	m, err := buildMsg(t.from, msg)
	if err != nil {
		return err
	}
	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	t.log.Info("mail sent", zap.String("kind", string(msg.Kind)), zap.Int("attachments", len(msg.Attachments)))
	return nil
}

// Close releases any connection left open by an interrupted send.
func (t *SMTPTransport) Close() error {
	return t.client.Close()
}
