package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fasttrackLogistics/internal/ids"
	"fasttrackLogistics/models"
)

// PersonnelRepository is the SQLite repository for DeliveryPersonnel entities.
type PersonnelRepository struct {
	db *sql.DB
}

// NewPersonnelRepository creates a new PersonnelRepository.
func NewPersonnelRepository(db *sql.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

const personnelColumns = `personnel_id, employee_id, name, contact_number, email, vehicle_type, license_number, availability_status`

// Insert adds a new personnel record. IDs are generated when empty and the
// availability status defaults to 'Available'.
func (r *PersonnelRepository) Insert(ctx context.Context, p *models.DeliveryPersonnel) error {
	if p == nil {
		return errors.New("personnel is nil")
	}
	if p.PersonnelID == "" {
		p.PersonnelID = ids.NewPersonnelID()
	}
	if p.EmployeeID == "" {
		p.EmployeeID = ids.NewEmployeeID()
	}
	if p.AvailabilityStatus == "" {
		p.AvailabilityStatus = models.AvailabilityAvailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO delivery_personnel
(personnel_id, employee_id, name, contact_number, email, vehicle_type, license_number, availability_status)
VALUES (?,?,?,?,?,?,?,?)`,
		p.PersonnelID, p.EmployeeID, p.Name, p.ContactNumber, p.Email, p.VehicleType, p.LicenseNumber, string(p.AvailabilityStatus))
	return err
}

// Update overwrites all mutable personnel fields.
func (r *PersonnelRepository) Update(ctx context.Context, p *models.DeliveryPersonnel) error {
	if p == nil {
		return errors.New("personnel is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE delivery_personnel SET
employee_id = ?, name = ?, contact_number = ?, email = ?, vehicle_type = ?, license_number = ?, availability_status = ?
WHERE personnel_id = ?`,
		p.EmployeeID, p.Name, p.ContactNumber, p.Email, p.VehicleType, p.LicenseNumber, string(p.AvailabilityStatus), p.PersonnelID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a personnel record by ID. Deliveries referencing it keep
// their row with personnel_id set to NULL.
func (r *PersonnelRepository) Delete(ctx context.Context, personnelID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM delivery_personnel WHERE personnel_id = ?`, personnelID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindByID fetches a personnel record by its ID. Returns (nil, nil) when absent.
func (r *PersonnelRepository) FindByID(ctx context.Context, personnelID string) (*models.DeliveryPersonnel, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+personnelColumns+` FROM delivery_personnel WHERE personnel_id = ?`, personnelID)
	p, err := scanPersonnel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// FindByEmployeeID fetches a personnel record by its unique employee ID.
func (r *PersonnelRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.DeliveryPersonnel, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+personnelColumns+` FROM delivery_personnel WHERE employee_id = ?`, employeeID)
	p, err := scanPersonnel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// FindAll returns all personnel ordered by name.
func (r *PersonnelRepository) FindAll(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	return r.list(ctx, `SELECT `+personnelColumns+` FROM delivery_personnel ORDER BY name, personnel_id`)
}

// FindAvailable returns personnel whose availability status is 'Available'.
func (r *PersonnelRepository) FindAvailable(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	return r.list(ctx, `SELECT `+personnelColumns+` FROM delivery_personnel WHERE availability_status = 'Available' ORDER BY name, personnel_id`)
}

func (r *PersonnelRepository) list(ctx context.Context, query string) ([]models.DeliveryPersonnel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.DeliveryPersonnel
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPersonnel(row rowScanner) (*models.DeliveryPersonnel, error) {
	var p models.DeliveryPersonnel
	var email, vehicle, license sql.NullString
	var status string
	err := row.Scan(&p.PersonnelID, &p.EmployeeID, &p.Name, &p.ContactNumber, &email, &vehicle, &license, &status)
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.VehicleType = vehicle.String
	p.LicenseNumber = license.String
	p.AvailabilityStatus = models.AvailabilityStatus(status)
	return &p, nil
}
