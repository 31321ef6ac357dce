package models

// DeliveryStatus represents the progress of a scheduled delivery.
// Transitions are not validated; the caller's value is stored verbatim.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "Scheduled"
	DeliveryStatusAssigned  DeliveryStatus = "Assigned"
	DeliveryStatusPickedUp  DeliveryStatus = "Picked Up"
	DeliveryStatusEnRoute   DeliveryStatus = "En Route"
	DeliveryStatusDelayed   DeliveryStatus = "Delayed"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusCancelled DeliveryStatus = "Cancelled"
)

// Time layouts used for delivery dates. Values are stored as TEXT.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Delivery links exactly one Shipment to at most one DeliveryPersonnel,
// with scheduling and status. PersonnelID is nullable; an unassigned
// delivery is legal. It maps to the `deliveries` table (shipment_id UNIQUE).
type Delivery struct {
	DeliveryID           string         `db:"delivery_id" json:"delivery_id"`
	ShipmentID           string         `db:"shipment_id" json:"shipment_id"`
	PersonnelID          *string        `db:"personnel_id" json:"personnel_id,omitempty"`
	ScheduledDate        string         `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTimeSlot    string         `db:"scheduled_time_slot" json:"scheduled_time_slot"`
	EstimatedArrivalTime string         `db:"estimated_arrival_time" json:"estimated_arrival_time"`
	ActualDeliveryDate   *string        `db:"actual_delivery_date" json:"actual_delivery_date,omitempty"`
	DeliveryStatus       DeliveryStatus `db:"delivery_status" json:"delivery_status"`
	DelayReason          *string        `db:"delay_reason" json:"delay_reason,omitempty"`
}

// HasPersonnel reports whether a driver is assigned. A null or empty
// personnel id both count as unassigned.
func (d *Delivery) HasPersonnel() bool {
	return d.PersonnelID != nil && *d.PersonnelID != ""
}
