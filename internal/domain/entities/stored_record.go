package entities

import (
	"encoding/json"
	"time"
)

// StoredRecord is the append-only row written once per analyzed submission.
//
// Storage model:
//   - DynamoDB: PK id
//   - PostgreSQL: table inspection_reports, PK id
//
// EstimateRaw keeps the analyzer output as JSON so the report can be rebuilt later
// without calling the analyzer again. Records are never updated or deleted.
type StoredRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"property_address"`

	PaymentSessionID string `json:"payment_session_id"`
	PaymentStatus    string `json:"payment_status"`

	DocumentName string `json:"document_name"`
	DocumentSize int64  `json:"document_size"`

	EstimateRaw       json.RawMessage `json:"estimate"`
	TermitesMentioned bool            `json:"termites_mentioned"`
	PestsMentioned    bool            `json:"pests_mentioned"`
	RotMentioned      bool            `json:"rot_mentioned"`
	HandymanTotal     float64         `json:"handyman_total"`
	ContractorTotal   float64         `json:"contractor_total"`
}

func (r StoredRecord) Identity() Identity {
	return Identity{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		PropertyAddress: r.PropertyAddress,
	}
}

// Estimate decodes EstimateRaw back into a CostEstimate.
func (r StoredRecord) Estimate() (CostEstimate, error) {
	var e CostEstimate
	if len(r.EstimateRaw) == 0 {
		return e, nil
	}
	if err := json.Unmarshal(r.EstimateRaw, &e); err != nil {
		return CostEstimate{}, err
	}
	return e, nil
}
