package interfaces

import (
	"context"
	"inspection_estimator/internal/domain/entities"
)

// IMailTransport delivers a single email message.
type IMailTransport interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}
