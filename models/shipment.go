package models

// Shipment status values. The delivery workflow mirrors delivery statuses
// onto shipments verbatim, so CurrentStatus is a plain string and these
// constants only name the values the system itself writes.
const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusAssigned  = "Assigned"
	ShipmentStatusScheduled = "Scheduled"
)

// Shipment represents a package in transit, tracked by a unique tracking number.
// It maps to the `shipments` table.
type Shipment struct {
	ShipmentID      string  `db:"shipment_id" json:"shipment_id"`
	TrackingNumber  string  `db:"tracking_number" json:"tracking_number"`
	SenderName      string  `db:"sender_name" json:"sender_name"`
	SenderAddress   string  `db:"sender_address" json:"sender_address"`
	SenderContact   string  `db:"sender_contact" json:"sender_contact"`
	ReceiverName    string  `db:"receiver_name" json:"receiver_name"`
	ReceiverAddress string  `db:"receiver_address" json:"receiver_address"`
	ReceiverContact string  `db:"receiver_contact" json:"receiver_contact"`
	PackageContents string  `db:"package_contents" json:"package_contents"`
	PackageType     string  `db:"package_type" json:"package_type"`
	WeightKg        float64 `db:"weight_kg" json:"weight_kg"`
	DimensionsCm    string  `db:"dimensions_cm" json:"dimensions_cm"`
	CurrentLocation string  `db:"current_location" json:"current_location"`
	Route           string  `db:"route" json:"route"`
	CurrentStatus   string  `db:"current_status" json:"current_status"`
	IsUrgent        bool    `db:"is_urgent" json:"is_urgent"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
	UpdatedAt       string  `db:"updated_at" json:"updated_at"`
}
