package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fasttrackLogistics/internal/ids"
	"fasttrackLogistics/models"
)

// ShipmentRepository is the SQLite repository for Shipment entities.
type ShipmentRepository struct {
	db *sql.DB
}

// NewShipmentRepository creates a new ShipmentRepository.
func NewShipmentRepository(db *sql.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

const shipmentColumns = `shipment_id, tracking_number, sender_name, sender_address, sender_contact,
receiver_name, receiver_address, receiver_contact, package_contents, package_type,
weight_kg, dimensions_cm, current_location, route, is_urgent, current_status, created_at, updated_at`

// Insert adds a new shipment. A SHP- id is generated when empty and the
// status defaults to 'Pending'. Timestamps are read back from the database.
func (r *ShipmentRepository) Insert(ctx context.Context, s *models.Shipment) error {
	if s == nil {
		return errors.New("shipment is nil")
	}
	if s.ShipmentID == "" {
		s.ShipmentID = ids.NewShipmentID()
	}
	if s.CurrentStatus == "" {
		s.CurrentStatus = models.ShipmentStatusPending
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO shipments
(shipment_id, tracking_number, sender_name, sender_address, sender_contact,
 receiver_name, receiver_address, receiver_contact, package_contents, package_type,
 weight_kg, dimensions_cm, current_location, route, is_urgent, current_status)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.ShipmentID, s.TrackingNumber, s.SenderName, s.SenderAddress, s.SenderContact,
		s.ReceiverName, s.ReceiverAddress, s.ReceiverContact, s.PackageContents, s.PackageType,
		s.WeightKg, s.DimensionsCm, s.CurrentLocation, s.Route, s.IsUrgent, s.CurrentStatus)
	if err != nil {
		return err
	}
	s2, err := r.FindByID(ctx, s.ShipmentID)
	if err != nil {
		return err
	}
	if s2 == nil {
		return fmt.Errorf("created shipment not found: id=%s", s.ShipmentID)
	}
	*s = *s2
	return nil
}

// Update overwrites all mutable shipment fields and bumps updated_at.
func (r *ShipmentRepository) Update(ctx context.Context, s *models.Shipment) error {
	if s == nil {
		return errors.New("shipment is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE shipments SET
tracking_number = ?, sender_name = ?, sender_address = ?, sender_contact = ?,
receiver_name = ?, receiver_address = ?, receiver_contact = ?, package_contents = ?, package_type = ?,
weight_kg = ?, dimensions_cm = ?, current_location = ?, route = ?, is_urgent = ?, current_status = ?,
updated_at = CURRENT_TIMESTAMP
WHERE shipment_id = ?`,
		s.TrackingNumber, s.SenderName, s.SenderAddress, s.SenderContact,
		s.ReceiverName, s.ReceiverAddress, s.ReceiverContact, s.PackageContents, s.PackageType,
		s.WeightKg, s.DimensionsCm, s.CurrentLocation, s.Route, s.IsUrgent, s.CurrentStatus,
		s.ShipmentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a shipment by ID. Delivery rows referencing it cascade.
func (r *ShipmentRepository) Delete(ctx context.Context, shipmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM shipments WHERE shipment_id = ?`, shipmentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindByID fetches a shipment by its ID. Returns (nil, nil) when absent.
func (r *ShipmentRepository) FindByID(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE shipment_id = ?`, shipmentID)
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// FindByTrackingNumber fetches a shipment by its unique tracking number.
func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE tracking_number = ?`, trackingNumber)
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// FindAll returns all shipments ordered by creation time.
func (r *ShipmentRepository) FindAll(ctx context.Context) ([]models.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+shipmentColumns+` FROM shipments ORDER BY created_at, shipment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (*models.Shipment, error) {
	var s models.Shipment
	var senderContact, receiverContact, contents, pkgType, dims, location, route sql.NullString
	var weight sql.NullFloat64
	err := row.Scan(&s.ShipmentID, &s.TrackingNumber, &s.SenderName, &s.SenderAddress, &senderContact,
		&s.ReceiverName, &s.ReceiverAddress, &receiverContact, &contents, &pkgType,
		&weight, &dims, &location, &route, &s.IsUrgent, &s.CurrentStatus, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.SenderContact = senderContact.String
	s.ReceiverContact = receiverContact.String
	s.PackageContents = contents.String
	s.PackageType = pkgType.String
	s.WeightKg = weight.Float64
	s.DimensionsCm = dims.String
	s.CurrentLocation = location.String
	s.Route = route.String
	return &s, nil
}
