package coordinator

import (
	"context"
	"fmt"

	"fasttrackLogistics/models"
)

// TrackingResult is the display row for a tracking lookup: the shipment and,
// when present, its delivery and assigned driver.
type TrackingResult struct {
	Shipment  models.Shipment           `json:"shipment"`
	Delivery  *models.Delivery          `json:"delivery,omitempty"`
	Personnel *models.DeliveryPersonnel `json:"personnel,omitempty"`
}

// TrackShipment looks a shipment up by tracking number.
func (c *Coordinator) TrackShipment(ctx context.Context, trackingNumber string) (*TrackingResult, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("tracking number is required: %w", ErrValidation)
	}
	shipment, err := c.shipments.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	if shipment == nil {
		return nil, fmt.Errorf("no shipment with tracking number %s: %w", trackingNumber, ErrNotFound)
	}

	result := &TrackingResult{Shipment: *shipment}
	result.Delivery, err = c.deliveries.FindByShipmentID(ctx, shipment.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("find delivery: %w", err)
	}
	if result.Delivery != nil && result.Delivery.HasPersonnel() {
		result.Personnel, err = c.personnel.FindByID(ctx, *result.Delivery.PersonnelID)
		if err != nil {
			return nil, fmt.Errorf("find personnel: %w", err)
		}
	}
	return result, nil
}
