package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Entity IDs are display-prefixed: SHP- for shipments, DEL- for deliveries,
// NOT- for notifications, each followed by an 8-character uppercase token.
// Personnel IDs are plain UUIDs. Uniqueness is the only structural guarantee.

func token() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// NewShipmentID returns a fresh SHP-prefixed shipment ID.
func NewShipmentID() string { return "SHP-" + token() }

// NewDeliveryID returns a fresh DEL-prefixed delivery ID.
func NewDeliveryID() string { return "DEL-" + token() }

// NewNotificationID returns a fresh NOT-prefixed notification ID.
func NewNotificationID() string { return "NOT-" + token() }

// NewPersonnelID returns a fresh unprefixed personnel ID.
func NewPersonnelID() string { return uuid.NewString() }

// NewEmployeeID returns a fresh 8-character uppercase employee ID,
// used when a new personnel record is inserted without one.
func NewEmployeeID() string { return token() }
