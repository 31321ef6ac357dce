package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fasttrackLogistics/internal/ids"
	"fasttrackLogistics/models"
)

// DeliveryRepository is the SQLite repository for Delivery entities.
// The shipment_id column is UNIQUE: at most one delivery per shipment.
type DeliveryRepository struct {
	db *sql.DB
}

// NewDeliveryRepository creates a new DeliveryRepository.
func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

const deliveryColumns = `delivery_id, shipment_id, personnel_id, scheduled_date, scheduled_time_slot,
estimated_arrival_time, actual_delivery_date, delivery_status, delay_reason`

// Insert adds a new delivery. A DEL- id is generated when empty and the
// status defaults to 'Scheduled'.
func (r *DeliveryRepository) Insert(ctx context.Context, d *models.Delivery) error {
	if d == nil {
		return errors.New("delivery is nil")
	}
	if d.DeliveryID == "" {
		d.DeliveryID = ids.NewDeliveryID()
	}
	if d.DeliveryStatus == "" {
		d.DeliveryStatus = models.DeliveryStatusScheduled
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO deliveries
(delivery_id, shipment_id, personnel_id, scheduled_date, scheduled_time_slot,
 estimated_arrival_time, actual_delivery_date, delivery_status, delay_reason)
VALUES (?,?,?,?,?,?,?,?,?)`,
		d.DeliveryID, d.ShipmentID, nullable(d.PersonnelID), d.ScheduledDate, d.ScheduledTimeSlot,
		d.EstimatedArrivalTime, nullable(d.ActualDeliveryDate), string(d.DeliveryStatus), nullable(d.DelayReason))
	return err
}

// Update overwrites all mutable delivery fields.
func (r *DeliveryRepository) Update(ctx context.Context, d *models.Delivery) error {
	if d == nil {
		return errors.New("delivery is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE deliveries SET
personnel_id = ?, scheduled_date = ?, scheduled_time_slot = ?, estimated_arrival_time = ?,
actual_delivery_date = ?, delivery_status = ?, delay_reason = ?
WHERE delivery_id = ?`,
		nullable(d.PersonnelID), d.ScheduledDate, d.ScheduledTimeSlot, d.EstimatedArrivalTime,
		nullable(d.ActualDeliveryDate), string(d.DeliveryStatus), nullable(d.DelayReason), d.DeliveryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a delivery by ID.
func (r *DeliveryRepository) Delete(ctx context.Context, deliveryID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM deliveries WHERE delivery_id = ?`, deliveryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindByID fetches a delivery by its ID. Returns (nil, nil) when absent.
func (r *DeliveryRepository) FindByID(ctx context.Context, deliveryID string) (*models.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE delivery_id = ?`, deliveryID)
	d, err := scanDelivery(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// FindByShipmentID fetches the delivery for a shipment, if one exists.
func (r *DeliveryRepository) FindByShipmentID(ctx context.Context, shipmentID string) (*models.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE shipment_id = ?`, shipmentID)
	d, err := scanDelivery(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// FindByPersonnelID returns all deliveries assigned to the given personnel.
func (r *DeliveryRepository) FindByPersonnelID(ctx context.Context, personnelID string) ([]models.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE personnel_id = ? ORDER BY scheduled_date, delivery_id`, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDeliveryRows(rows)
}

// FindAll returns all deliveries ordered by scheduled date.
func (r *DeliveryRepository) FindAll(ctx context.Context) ([]models.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries ORDER BY scheduled_date, delivery_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDeliveryRows(rows)
}

func scanDeliveryRows(rows *sql.Rows) ([]models.Delivery, error) {
	var out []models.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanDelivery(row rowScanner) (*models.Delivery, error) {
	var d models.Delivery
	var personnelID, schedDate, timeSlot, eta, actual, reason sql.NullString
	var status string
	err := row.Scan(&d.DeliveryID, &d.ShipmentID, &personnelID, &schedDate, &timeSlot, &eta, &actual, &status, &reason)
	if err != nil {
		return nil, err
	}
	if personnelID.Valid && personnelID.String != "" {
		v := personnelID.String
		d.PersonnelID = &v
	}
	d.ScheduledDate = schedDate.String
	d.ScheduledTimeSlot = timeSlot.String
	d.EstimatedArrivalTime = eta.String
	if actual.Valid {
		v := actual.String
		d.ActualDeliveryDate = &v
	}
	d.DeliveryStatus = models.DeliveryStatus(status)
	if reason.Valid && reason.String != "" {
		v := reason.String
		d.DelayReason = &v
	}
	return &d, nil
}

// nullable maps a nil or empty *string to SQL NULL.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
