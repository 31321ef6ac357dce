package coordinator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fasttrackLogistics/models"
)

// ShipmentInput carries the staff-entered fields of a shipment record.
type ShipmentInput struct {
	TrackingNumber  string  `json:"tracking_number"`
	SenderName      string  `json:"sender_name"`
	SenderAddress   string  `json:"sender_address"`
	SenderContact   string  `json:"sender_contact"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverAddress string  `json:"receiver_address"`
	ReceiverContact string  `json:"receiver_contact"`
	PackageContents string  `json:"package_contents"`
	PackageType     string  `json:"package_type"`
	WeightKg        float64 `json:"weight_kg"`
	DimensionsCm    string  `json:"dimensions_cm"`
	CurrentLocation string  `json:"current_location"`
	Route           string  `json:"route"`
	CurrentStatus   string  `json:"current_status"`
	IsUrgent        bool    `json:"is_urgent"`
}

func (in *ShipmentInput) validate() error {
	required := []struct {
		field string
		value string
	}{
		{"tracking_number", in.TrackingNumber},
		{"sender_name", in.SenderName},
		{"sender_address", in.SenderAddress},
		{"sender_contact", in.SenderContact},
		{"receiver_name", in.ReceiverName},
		{"receiver_address", in.ReceiverAddress},
		{"receiver_contact", in.ReceiverContact},
		{"package_contents", in.PackageContents},
		{"package_type", in.PackageType},
		{"dimensions_cm", in.DimensionsCm},
		{"current_location", in.CurrentLocation},
		{"route", in.Route},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required: %w", r.field, ErrValidation)
		}
	}
	if in.WeightKg <= 0 {
		return fmt.Errorf("weight must be a positive number: %w", ErrValidation)
	}
	return nil
}

func (in *ShipmentInput) toModel() *models.Shipment {
	return &models.Shipment{
		TrackingNumber:  in.TrackingNumber,
		SenderName:      in.SenderName,
		SenderAddress:   in.SenderAddress,
		SenderContact:   in.SenderContact,
		ReceiverName:    in.ReceiverName,
		ReceiverAddress: in.ReceiverAddress,
		ReceiverContact: in.ReceiverContact,
		PackageContents: in.PackageContents,
		PackageType:     in.PackageType,
		WeightKg:        in.WeightKg,
		DimensionsCm:    in.DimensionsCm,
		CurrentLocation: in.CurrentLocation,
		Route:           in.Route,
		CurrentStatus:   in.CurrentStatus,
		IsUrgent:        in.IsUrgent,
	}
}

// ShipmentRow joins a shipment with its delivery (nil when unscheduled)
// for list display.
type ShipmentRow struct {
	Shipment models.Shipment  `json:"shipment"`
	Delivery *models.Delivery `json:"delivery,omitempty"`
}

// AddShipment validates and inserts a new shipment record. The tracking
// number must be unique. An urgent shipment produces a broadcast alert to
// personnel; the customer always gets a creation notice.
func (c *Coordinator) AddShipment(ctx context.Context, in ShipmentInput) (*models.Shipment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := c.shipments.FindByTrackingNumber(ctx, in.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("find by tracking number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("tracking number %s already exists: %w", in.TrackingNumber, ErrConflict)
	}

	shipment := in.toModel()
	if err := c.shipments.Insert(ctx, shipment); err != nil {
		return nil, fmt.Errorf("insert shipment: %w", err)
	}

	if shipment.IsUrgent {
		msg := fmt.Sprintf("URGENT: New shipment '%s' (%s) added on route '%s'.",
			shipment.TrackingNumber, shipment.PackageType, shipment.Route)
		_ = c.notifier.NotifyPersonnel(ctx, nil, shipment.ShipmentID, msg, true)
	}
	customerMsg := fmt.Sprintf("Your shipment '%s' has been successfully created and is now Pending. Current Location: %s",
		shipment.TrackingNumber, shipment.CurrentLocation)
	_ = c.notifier.NotifyCustomer(ctx, shipment.ShipmentID, customerMsg, false)
	return shipment, nil
}

// UpdateShipment validates and overwrites a shipment record. A status change
// notifies the customer; the urgent flag turning on broadcasts to personnel.
func (c *Coordinator) UpdateShipment(ctx context.Context, shipmentID string, in ShipmentInput) (*models.Shipment, error) {
	original, err := c.shipments.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	if original == nil {
		return nil, fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	// The tracking number may move only to a value no other shipment uses.
	existing, err := c.shipments.FindByTrackingNumber(ctx, in.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("find by tracking number: %w", err)
	}
	if existing != nil && existing.ShipmentID != shipmentID {
		return nil, fmt.Errorf("tracking number %s already exists: %w", in.TrackingNumber, ErrConflict)
	}

	updated := in.toModel()
	updated.ShipmentID = shipmentID
	if err := c.shipments.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}

	if original.CurrentStatus != updated.CurrentStatus {
		msg := fmt.Sprintf("Your shipment '%s' status has changed to: %s. Current Location: %s",
			updated.TrackingNumber, updated.CurrentStatus, updated.CurrentLocation)
		_ = c.notifier.NotifyCustomer(ctx, updated.ShipmentID, msg, false)
	}
	if updated.IsUrgent && !original.IsUrgent {
		msg := fmt.Sprintf("URGENT: Shipment '%s' (%s) is now marked urgent. Route: '%s'.",
			updated.TrackingNumber, updated.PackageType, updated.Route)
		_ = c.notifier.NotifyPersonnel(ctx, nil, updated.ShipmentID, msg, true)
	}
	return c.shipments.FindByID(ctx, shipmentID)
}

// DeleteShipment removes a shipment; its delivery row, if any, cascades away.
func (c *Coordinator) DeleteShipment(ctx context.Context, shipmentID string) error {
	if err := c.shipments.Delete(ctx, shipmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
		}
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

// ListShipments returns every shipment joined with its delivery, if any.
func (c *Coordinator) ListShipments(ctx context.Context) ([]ShipmentRow, error) {
	all, err := c.shipments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	var out []ShipmentRow
	for _, s := range all {
		delivery, err := c.deliveries.FindByShipmentID(ctx, s.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("find delivery: %w", err)
		}
		out = append(out, ShipmentRow{Shipment: s, Delivery: delivery})
	}
	return out, nil
}
