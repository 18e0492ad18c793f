// Package mail delivers notification emails over SMTP, or to the log for local runs.
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"inspection_estimator/internal/domain/entities"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingSender = errors.New("MAIL_FROM not configured")

// buildMsg encodes msg as a MIME message with a plain text body and one part per attachment.
func buildMsg(from string, msg entities.EmailMessage) (*gomail.Msg, error) {
	if strings.TrimSpace(from) == "" {
		return nil, ErrMissingSender
	}
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	for _, a := range msg.Attachments {
		ct := gomail.ContentType(a.ContentType)
		if ct == "" {
			ct = gomail.TypeAppOctetStream
		}
		m.AttachReadSeeker(a.Filename, bytes.NewReader(a.Content), gomail.WithFileContentType(ct))
	}
	return m, nil
}
