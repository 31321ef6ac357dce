package models

// AvailabilityStatus represents whether a driver can take new assignments.
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "Available"
	AvailabilityOnRoute   AvailabilityStatus = "On Route"
	AvailabilityOffDuty   AvailabilityStatus = "Off Duty"
)

// DeliveryPersonnel represents a driver/courier who can be assigned to deliveries.
// It maps to the `delivery_personnel` table. EmployeeID is globally unique.
type DeliveryPersonnel struct {
	PersonnelID        string             `db:"personnel_id" json:"personnel_id"`
	EmployeeID         string             `db:"employee_id" json:"employee_id"`
	Name               string             `db:"name" json:"name"`
	ContactNumber      string             `db:"contact_number" json:"contact_number"`
	Email              string             `db:"email" json:"email"`
	VehicleType        string             `db:"vehicle_type" json:"vehicle_type"`
	LicenseNumber      string             `db:"license_number" json:"license_number"`
	AvailabilityStatus AvailabilityStatus `db:"availability_status" json:"availability_status"`
}
