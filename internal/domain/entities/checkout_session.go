package entities

// CheckoutPaymentStatus is the provider-agnostic payment state of a checkout session.
//
// Only "paid" unlocks report generation when paid sessions are required.
type CheckoutPaymentStatus string

const (
	CheckoutPaymentStatusPaid    CheckoutPaymentStatus = "paid"
	CheckoutPaymentStatusUnpaid  CheckoutPaymentStatus = "unpaid"
	CheckoutPaymentStatusUnknown CheckoutPaymentStatus = "unknown"
)

// CheckoutRequest carries what the caller controls when opening a checkout.
// Price and product data come from configuration.
type CheckoutRequest struct {
	OriginURL string
}

// CheckoutSession is the payment session returned by the provider.
//
// Provider payload:
//   - ID is the opaque session identifier handed to the browser.
//   - URL is the hosted checkout page (empty for providers that redirect client-side).
type CheckoutSession struct {
	ID            string                `json:"id"`
	Provider      string                `json:"provider"`
	URL           string                `json:"url,omitempty"`
	PaymentStatus CheckoutPaymentStatus `json:"payment_status"`
	AmountTotal   int64                 `json:"amount_total"`
	Currency      string                `json:"currency"`
	CustomerEmail string                `json:"customer_email,omitempty"`
}

func (s CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == CheckoutPaymentStatusPaid
}
