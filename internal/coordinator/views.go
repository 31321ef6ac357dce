package coordinator

import (
	"context"
	"fmt"

	"fasttrackLogistics/models"
)

// AssignedDeliveryView is a display row joining a delivery with its shipment
// and assigned driver.
type AssignedDeliveryView struct {
	Delivery  models.Delivery          `json:"delivery"`
	Shipment  models.Shipment          `json:"shipment"`
	Personnel models.DeliveryPersonnel `json:"personnel"`
}

// DeliveryScheduleRow is a display row for the full delivery schedule.
// Shipment and Personnel are nil when the lookup finds nothing.
type DeliveryScheduleRow struct {
	Delivery  models.Delivery           `json:"delivery"`
	Shipment  *models.Shipment          `json:"shipment,omitempty"`
	Personnel *models.DeliveryPersonnel `json:"personnel,omitempty"`
}

// UnassignedShipments returns every shipment with no delivery, or whose
// delivery has no driver. The classification is a scan with a per-shipment
// delivery lookup; the predicate is the contract, not the access pattern.
func (c *Coordinator) UnassignedShipments(ctx context.Context) ([]models.Shipment, error) {
	all, err := c.shipments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	var out []models.Shipment
	for _, s := range all {
		delivery, err := c.deliveries.FindByShipmentID(ctx, s.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("find delivery: %w", err)
		}
		if delivery == nil || !delivery.HasPersonnel() {
			out = append(out, s)
		}
	}
	return out, nil
}

// UnscheduledShipments returns every shipment with no delivery at all.
// A delivery without a driver still counts as scheduled.
func (c *Coordinator) UnscheduledShipments(ctx context.Context) ([]models.Shipment, error) {
	all, err := c.shipments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	var out []models.Shipment
	for _, s := range all {
		delivery, err := c.deliveries.FindByShipmentID(ctx, s.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("find delivery: %w", err)
		}
		if delivery == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// AssignedDeliveries returns every delivery with a driver, joined with its
// shipment and driver. Rows whose shipment or driver lookup finds nothing
// are silently excluded; that is a data integrity issue, not a failure.
func (c *Coordinator) AssignedDeliveries(ctx context.Context) ([]AssignedDeliveryView, error) {
	all, err := c.deliveries.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	var out []AssignedDeliveryView
	for _, d := range all {
		if !d.HasPersonnel() {
			continue
		}
		shipment, err := c.shipments.FindByID(ctx, d.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("find shipment: %w", err)
		}
		person, err := c.personnel.FindByID(ctx, *d.PersonnelID)
		if err != nil {
			return nil, fmt.Errorf("find personnel: %w", err)
		}
		if shipment == nil || person == nil {
			continue
		}
		out = append(out, AssignedDeliveryView{Delivery: d, Shipment: *shipment, Personnel: *person})
	}
	return out, nil
}

// DeliverySchedule returns every delivery joined with its shipment and, when
// assigned, its driver.
func (c *Coordinator) DeliverySchedule(ctx context.Context) ([]DeliveryScheduleRow, error) {
	all, err := c.deliveries.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	var out []DeliveryScheduleRow
	for _, d := range all {
		row := DeliveryScheduleRow{Delivery: d}
		row.Shipment, err = c.shipments.FindByID(ctx, d.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("find shipment: %w", err)
		}
		if d.HasPersonnel() {
			row.Personnel, err = c.personnel.FindByID(ctx, *d.PersonnelID)
			if err != nil {
				return nil, fmt.Errorf("find personnel: %w", err)
			}
		}
		out = append(out, row)
	}
	return out, nil
}
