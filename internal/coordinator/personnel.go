package coordinator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fasttrackLogistics/models"
)

// PersonnelInput carries the staff-entered fields of a personnel record.
type PersonnelInput struct {
	EmployeeID         string `json:"employee_id"`
	Name               string `json:"name"`
	ContactNumber      string `json:"contact_number"`
	Email              string `json:"email"`
	VehicleType        string `json:"vehicle_type"`
	LicenseNumber      string `json:"license_number"`
	AvailabilityStatus string `json:"availability_status"`
}

func (in *PersonnelInput) validate() error {
	if in.EmployeeID == "" || in.Name == "" || in.ContactNumber == "" || in.Email == "" {
		return fmt.Errorf("employee id, name, contact and email are required: %w", ErrValidation)
	}
	return nil
}

// AddPersonnel validates and inserts a new personnel record. The employee ID
// must be unique; availability defaults to Available.
func (c *Coordinator) AddPersonnel(ctx context.Context, in PersonnelInput) (*models.DeliveryPersonnel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := c.personnel.FindByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("find by employee id: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("employee id %s already exists: %w", in.EmployeeID, ErrConflict)
	}

	person := &models.DeliveryPersonnel{
		EmployeeID:         in.EmployeeID,
		Name:               in.Name,
		ContactNumber:      in.ContactNumber,
		Email:              in.Email,
		VehicleType:        in.VehicleType,
		LicenseNumber:      in.LicenseNumber,
		AvailabilityStatus: models.AvailabilityStatus(in.AvailabilityStatus),
	}
	if err := c.personnel.Insert(ctx, person); err != nil {
		return nil, fmt.Errorf("insert personnel: %w", err)
	}
	return person, nil
}

// UpdatePersonnel validates and overwrites a personnel record.
func (c *Coordinator) UpdatePersonnel(ctx context.Context, personnelID string, in PersonnelInput) (*models.DeliveryPersonnel, error) {
	original, err := c.personnel.FindByID(ctx, personnelID)
	if err != nil {
		return nil, fmt.Errorf("find personnel: %w", err)
	}
	if original == nil {
		return nil, fmt.Errorf("personnel %s: %w", personnelID, ErrNotFound)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := c.personnel.FindByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("find by employee id: %w", err)
	}
	if existing != nil && existing.PersonnelID != personnelID {
		return nil, fmt.Errorf("employee id %s already exists: %w", in.EmployeeID, ErrConflict)
	}

	person := &models.DeliveryPersonnel{
		PersonnelID:        personnelID,
		EmployeeID:         in.EmployeeID,
		Name:               in.Name,
		ContactNumber:      in.ContactNumber,
		Email:              in.Email,
		VehicleType:        in.VehicleType,
		LicenseNumber:      in.LicenseNumber,
		AvailabilityStatus: models.AvailabilityStatus(in.AvailabilityStatus),
	}
	if err := c.personnel.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("update personnel: %w", err)
	}
	return person, nil
}

// DeletePersonnel removes a personnel record. Deliveries that referenced the
// driver keep their row with the assignment cleared.
func (c *Coordinator) DeletePersonnel(ctx context.Context, personnelID string) error {
	if err := c.personnel.Delete(ctx, personnelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("personnel %s: %w", personnelID, ErrNotFound)
		}
		return fmt.Errorf("delete personnel: %w", err)
	}
	return nil
}

// ListPersonnel returns all personnel records.
func (c *Coordinator) ListPersonnel(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	return c.personnel.FindAll(ctx)
}

// AvailablePersonnel returns personnel currently free for assignment.
func (c *Coordinator) AvailablePersonnel(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	return c.personnel.FindAvailable(ctx)
}
