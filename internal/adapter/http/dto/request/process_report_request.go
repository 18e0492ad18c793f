package request

import (
	"html"
	"strings"

	"inspection_estimator/internal/domain/entities"

	"github.com/microcosm-cc/bluemonday"
)

// FormFieldPDF is the multipart field carrying the inspection report.
const FormFieldPDF = "pdf"

// ProcessReportRequest is the text part of the multipart submission.
type ProcessReportRequest struct {
	FirstName       string `form:"firstName" binding:"required"`
	LastName        string `form:"lastName" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone"`
	PropertyAddress string `form:"propertyAddress" binding:"required"`
	SessionID       string `form:"sessionId"`
}

const maxSanitizePasses = 4

var (
	textPolicy    = bluemonday.StrictPolicy()
	angleBrackets = strings.NewReplacer("<", "", ">", "")
)

// ToSubmission strips markup from every text field and attaches the document.
func (r ProcessReportRequest) ToSubmission(filename string, content []byte) entities.Submission {
	return entities.Submission{
		Identity: entities.Identity{
			FirstName:       sanitize(r.FirstName),
			LastName:        sanitize(r.LastName),
			Email:           strings.TrimSpace(r.Email),
			Phone:           sanitize(r.Phone),
			PropertyAddress: sanitize(r.PropertyAddress),
		},
		PaymentSessionID: sanitize(r.SessionID),
		Document: entities.Document{
			Filename: sanitize(filename),
			Content:  content,
		},
	}
}

// sanitize removes HTML. StrictPolicy escapes the text it keeps, so entities are
// decoded back to plain text, and the result is sanitized again until stable so
// escaped markup in the input cannot decode into live tags.
func sanitize(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(textPolicy.Sanitize(s))
		if next == s {
			return strings.TrimSpace(next)
		}
		s = next
	}
	return strings.TrimSpace(angleBrackets.Replace(s))
}
