package mail

import (
	"context"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogTransport writes messages to the structured log instead of delivering them.
type LogTransport struct {
	from string
	log  *zap.Logger
}

var _ interfaces.IMailTransport = (*LogTransport)(nil)

func NewLogTransport(from string, logger *zap.Logger) *LogTransport {
	if from == "" {
		from = "estimates@localhost"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogTransport{from: from, log: logger.Named("mail")}
}

func (t *LogTransport) Send(ctx context.Context, msg entities.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := buildMsg(t.from, msg)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(m.GetAttachments()))
	for _, f := range m.GetAttachments() {
		names = append(names, f.Name)
	}
	t.log.Info("mail logged",
		zap.String("kind", string(msg.Kind)),
		zap.Strings("to", m.GetToString()),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
		zap.Strings("attachments", names),
	)
	return nil
}
