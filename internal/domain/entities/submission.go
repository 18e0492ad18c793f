package entities

import "strings"

// Identity is the customer data captured by the submission form.
type Identity struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"property_address"`
}

func (i Identity) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
}

// Document is the uploaded inspection report.
type Document struct {
	Filename string
	Content  []byte
}

// Submission is one customer request to process an inspection report.
// It is built once by the HTTP layer and never mutated afterwards.
type Submission struct {
	Identity         Identity
	PaymentSessionID string
	Document         Document
}
