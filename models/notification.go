package models

// RecipientType distinguishes who a notification is addressed to.
type RecipientType string

const (
	RecipientCustomer  RecipientType = "CUSTOMER"
	RecipientPersonnel RecipientType = "PERSONNEL"
)

// NotificationStatusSent is the delivery-simulation status recorded at emission.
const NotificationStatusSent = "SENT"

// Notification is a logged message for a customer or a driver.
// For CUSTOMER the recipient id is the shipment id; for PERSONNEL it is the
// personnel id, or a related entity id for broadcast-style urgent alerts.
// It maps to the `notifications` table.
type Notification struct {
	NotificationID string        `db:"notification_id" json:"notification_id"`
	RecipientType  RecipientType `db:"recipient_type" json:"recipient_type"`
	RecipientID    string        `db:"recipient_id" json:"recipient_id"`
	Message        string        `db:"message" json:"message"`
	Timestamp      string        `db:"timestamp" json:"timestamp"`
	Status         string        `db:"status" json:"status"`
	IsUrgent       bool          `db:"is_urgent" json:"is_urgent"`
}
