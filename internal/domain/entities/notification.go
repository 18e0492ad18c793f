package entities

// NotificationKind identifies which of the three outgoing messages is being sent.
type NotificationKind string

const (
	NotificationClient NotificationKind = "client"
	NotificationAdmin  NotificationKind = "admin"
	NotificationLead   NotificationKind = "lead"
)

type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// EmailMessage is transport-agnostic; the mail transport decides how it is encoded.
type EmailMessage struct {
	Kind        NotificationKind
	To          string
	Subject     string
	Body        string
	Attachments []EmailAttachment
}
