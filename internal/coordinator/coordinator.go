// Package coordinator implements the shipment/delivery/personnel lifecycle.
// Every operation reads current entity state, computes the new state for up
// to three entities, persists each one and records the notifications the
// change produces. The coordinator holds no state of its own; each entity
// write is an independent commit and there is no cross-entity transaction.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fasttrackLogistics/models"
	"fasttrackLogistics/repository"
)

// Sentinel errors for the operation outcomes callers can act on.
// Storage-layer failures are returned wrapped and unclassified.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
)

// Notifier records a message for a recipient class. Emission failures are a
// side effect, not a correctness requirement: implementations log them and
// the coordinator never fails an operation over one.
type Notifier interface {
	NotifyCustomer(ctx context.Context, shipmentID, message string, urgent bool) error
	NotifyPersonnel(ctx context.Context, personnelID *string, relatedEntityID, message string, urgent bool) error
}

// Coordinator wires the entity repositories and the notifier together.
type Coordinator struct {
	shipments  repository.ShipmentRepositoryI
	personnel  repository.PersonnelRepositoryI
	deliveries repository.DeliveryRepositoryI
	notifier   Notifier
}

// New creates a Coordinator.
func New(shipments repository.ShipmentRepositoryI, personnel repository.PersonnelRepositoryI,
	deliveries repository.DeliveryRepositoryI, notifier Notifier) *Coordinator {
	return &Coordinator{
		shipments:  shipments,
		personnel:  personnel,
		deliveries: deliveries,
		notifier:   notifier,
	}
}

// AssignDriver assigns a driver to a shipment. If the shipment has no
// delivery yet, one is created with default scheduling (today, any time,
// ETA in 24h); otherwise the existing delivery is re-pointed at the driver.
// The shipment moves to Assigned, the driver to On Route, and both the
// customer and the driver are notified.
func (c *Coordinator) AssignDriver(ctx context.Context, shipmentID, personnelID string) error {
	shipment, err := c.shipments.FindByID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("find shipment: %w", err)
	}
	if shipment == nil {
		return fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
	}
	person, err := c.personnel.FindByID(ctx, personnelID)
	if err != nil {
		return fmt.Errorf("find personnel: %w", err)
	}
	if person == nil {
		return fmt.Errorf("personnel %s: %w", personnelID, ErrNotFound)
	}

	delivery, err := c.deliveries.FindByShipmentID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("find delivery: %w", err)
	}
	pid := person.PersonnelID
	if delivery == nil {
		now := time.Now()
		delivery = &models.Delivery{
			ShipmentID:           shipment.ShipmentID,
			PersonnelID:          &pid,
			ScheduledDate:        now.Format(models.DateLayout),
			ScheduledTimeSlot:    "Any Time",
			EstimatedArrivalTime: now.Add(24 * time.Hour).Format(models.DateTimeLayout),
			DeliveryStatus:       models.DeliveryStatusAssigned,
		}
		if err := c.deliveries.Insert(ctx, delivery); err != nil {
			return fmt.Errorf("insert delivery: %w", err)
		}
	} else {
		delivery.PersonnelID = &pid
		delivery.DeliveryStatus = models.DeliveryStatusAssigned
		if err := c.deliveries.Update(ctx, delivery); err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
	}

	shipment.CurrentStatus = models.ShipmentStatusAssigned
	if err := c.shipments.Update(ctx, shipment); err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	person.AvailabilityStatus = models.AvailabilityOnRoute
	if err := c.personnel.Update(ctx, person); err != nil {
		return fmt.Errorf("update personnel: %w", err)
	}

	eta := delivery.EstimatedArrivalTime
	if eta == "" {
		eta = "N/A"
	}
	customerMsg := fmt.Sprintf("Dear %s, your shipment '%s' is now assigned to our personnel %s for delivery. Status: %s. Est. Delivery: %s.",
		shipment.ReceiverName, shipment.TrackingNumber, person.Name, shipment.CurrentStatus, eta)
	_ = c.notifier.NotifyCustomer(ctx, shipment.ShipmentID, customerMsg, false)

	personnelMsg := fmt.Sprintf("You have been assigned Shipment ID: %s (Tracking No: %s). Receiver: %s at %s. Status: %s. Please check your schedule.",
		shipment.ShipmentID, shipment.TrackingNumber, shipment.ReceiverName, shipment.ReceiverAddress, shipment.CurrentStatus)
	_ = c.notifier.NotifyPersonnel(ctx, &person.PersonnelID, shipment.ShipmentID, personnelMsg, shipment.IsUrgent)
	return nil
}

// ScheduleDeliveryInput carries the fields for first-time scheduling.
// PersonnelID may be nil; scheduling without a driver is legal.
type ScheduleDeliveryInput struct {
	ShipmentID           string  `json:"shipment_id"`
	PersonnelID          *string `json:"personnel_id,omitempty"`
	ScheduledDate        string  `json:"scheduled_date"`
	ScheduledTimeSlot    string  `json:"scheduled_time_slot"`
	EstimatedArrivalTime string  `json:"estimated_arrival_time"`
	DeliveryStatus       string  `json:"delivery_status"`
	DelayReason          string  `json:"delay_reason,omitempty"`
}

// ScheduleDelivery creates the delivery for a shipment that has none yet.
// With a driver the shipment moves to Assigned and the driver to On Route;
// without one the shipment moves to Scheduled.
func (c *Coordinator) ScheduleDelivery(ctx context.Context, in ScheduleDeliveryInput) (*models.Delivery, error) {
	if in.ShipmentID == "" {
		return nil, fmt.Errorf("shipment id is required: %w", ErrValidation)
	}
	if in.ScheduledDate == "" || in.ScheduledTimeSlot == "" || in.EstimatedArrivalTime == "" || in.DeliveryStatus == "" {
		return nil, fmt.Errorf("date, time slot, ETA and status are required: %w", ErrValidation)
	}

	shipment, err := c.shipments.FindByID(ctx, in.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	if shipment == nil {
		return nil, fmt.Errorf("shipment %s: %w", in.ShipmentID, ErrNotFound)
	}
	existing, err := c.deliveries.FindByShipmentID(ctx, in.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("find delivery: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("shipment %s already has a delivery: %w", in.ShipmentID, ErrConflict)
	}

	var person *models.DeliveryPersonnel
	if in.PersonnelID != nil && *in.PersonnelID != "" {
		person, err = c.personnel.FindByID(ctx, *in.PersonnelID)
		if err != nil {
			return nil, fmt.Errorf("find personnel: %w", err)
		}
		if person == nil {
			return nil, fmt.Errorf("personnel %s: %w", *in.PersonnelID, ErrNotFound)
		}
	}

	delivery := &models.Delivery{
		ShipmentID:           shipment.ShipmentID,
		ScheduledDate:        in.ScheduledDate,
		ScheduledTimeSlot:    in.ScheduledTimeSlot,
		EstimatedArrivalTime: in.EstimatedArrivalTime,
		DeliveryStatus:       models.DeliveryStatus(in.DeliveryStatus),
	}
	if person != nil {
		delivery.PersonnelID = &person.PersonnelID
	}
	if in.DelayReason != "" {
		delivery.DelayReason = &in.DelayReason
	}
	if err := c.deliveries.Insert(ctx, delivery); err != nil {
		return nil, fmt.Errorf("insert delivery: %w", err)
	}

	if person != nil {
		shipment.CurrentStatus = models.ShipmentStatusAssigned
		person.AvailabilityStatus = models.AvailabilityOnRoute
		if err := c.personnel.Update(ctx, person); err != nil {
			return nil, fmt.Errorf("update personnel: %w", err)
		}
	} else {
		shipment.CurrentStatus = models.ShipmentStatusScheduled
	}
	if err := c.shipments.Update(ctx, shipment); err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}

	customerMsg := fmt.Sprintf("Dear %s, your shipment '%s' is now scheduled for delivery on %s between %s. Est. Arrival: %s. Status: %s.",
		shipment.ReceiverName, shipment.TrackingNumber, delivery.ScheduledDate, delivery.ScheduledTimeSlot,
		delivery.EstimatedArrivalTime, delivery.DeliveryStatus)
	_ = c.notifier.NotifyCustomer(ctx, shipment.ShipmentID, customerMsg, false)

	if person != nil {
		personnelMsg := fmt.Sprintf("New Delivery Scheduled for you: Shipment '%s' to %s. Date: %s, Time: %s. Est. Arrival: %s.",
			shipment.TrackingNumber, shipment.ReceiverAddress, delivery.ScheduledDate, delivery.ScheduledTimeSlot,
			delivery.EstimatedArrivalTime)
		_ = c.notifier.NotifyPersonnel(ctx, &person.PersonnelID, shipment.ShipmentID, personnelMsg, shipment.IsUrgent)
	}
	return delivery, nil
}

// UpdateDeliveryInput carries the full replacement state for a delivery.
// A nil PersonnelID is an explicit unassign.
type UpdateDeliveryInput struct {
	DeliveryID           string  `json:"delivery_id"`
	PersonnelID          *string `json:"personnel_id,omitempty"`
	ScheduledDate        string  `json:"scheduled_date"`
	ScheduledTimeSlot    string  `json:"scheduled_time_slot"`
	EstimatedArrivalTime string  `json:"estimated_arrival_time"`
	DeliveryStatus       string  `json:"delivery_status"`
	DelayReason          string  `json:"delay_reason,omitempty"`
}

// UpdateDelivery overwrites a delivery's schedule, status and driver, then
// reconciles the shipment status and the availability of the old and new
// drivers against the previous state. Status transitions are accepted
// verbatim; moving out of Delivered clears the actual delivery date.
func (c *Coordinator) UpdateDelivery(ctx context.Context, in UpdateDeliveryInput) error {
	delivery, err := c.deliveries.FindByID(ctx, in.DeliveryID)
	if err != nil {
		return fmt.Errorf("find delivery: %w", err)
	}
	if delivery == nil {
		return fmt.Errorf("delivery %s: %w", in.DeliveryID, ErrNotFound)
	}

	// Previous state, captured before any mutation.
	oldStatus := delivery.DeliveryStatus
	var oldPerson *models.DeliveryPersonnel
	if delivery.HasPersonnel() {
		oldPerson, err = c.personnel.FindByID(ctx, *delivery.PersonnelID)
		if err != nil {
			return fmt.Errorf("find personnel: %w", err)
		}
	}
	shipment, err := c.shipments.FindByID(ctx, delivery.ShipmentID)
	if err != nil {
		return fmt.Errorf("find shipment: %w", err)
	}

	var newPerson *models.DeliveryPersonnel
	if in.PersonnelID != nil && *in.PersonnelID != "" {
		newPerson, err = c.personnel.FindByID(ctx, *in.PersonnelID)
		if err != nil {
			return fmt.Errorf("find personnel: %w", err)
		}
		if newPerson == nil {
			return fmt.Errorf("personnel %s: %w", *in.PersonnelID, ErrNotFound)
		}
	}

	if newPerson != nil {
		delivery.PersonnelID = &newPerson.PersonnelID
	} else {
		delivery.PersonnelID = nil
	}
	delivery.ScheduledDate = in.ScheduledDate
	delivery.ScheduledTimeSlot = in.ScheduledTimeSlot
	delivery.EstimatedArrivalTime = in.EstimatedArrivalTime
	if in.DelayReason != "" {
		reason := in.DelayReason
		delivery.DelayReason = &reason
	} else {
		delivery.DelayReason = nil
	}

	newStatus := models.DeliveryStatus(in.DeliveryStatus)
	if newStatus == models.DeliveryStatusDelivered && delivery.ActualDeliveryDate == nil {
		now := time.Now().Format(models.DateTimeLayout)
		delivery.ActualDeliveryDate = &now
	} else if newStatus != models.DeliveryStatusDelivered && delivery.ActualDeliveryDate != nil {
		// Status regressed from Delivered.
		delivery.ActualDeliveryDate = nil
	}
	delivery.DeliveryStatus = newStatus

	if err := c.deliveries.Update(ctx, delivery); err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}

	// Mirror a status change onto the shipment.
	if shipment != nil && oldStatus != newStatus {
		shipment.CurrentStatus = string(newStatus)
		if err := c.shipments.Update(ctx, shipment); err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}
		customerMsg := fmt.Sprintf("Dear %s, your shipment '%s' delivery status has changed to: %s. Current Location: %s.",
			shipment.ReceiverName, shipment.TrackingNumber, newStatus, shipment.CurrentLocation)
		_ = c.notifier.NotifyCustomer(ctx, shipment.ShipmentID, customerMsg, false)
	}

	return c.reconcilePersonnel(ctx, shipment, oldPerson, newPerson, newStatus)
}

// reconcilePersonnel applies the availability and notification side effects
// of an assignment change: unassign frees the old driver, a change frees the
// old driver (as reassigned) and engages the new one, no change is a no-op.
func (c *Coordinator) reconcilePersonnel(ctx context.Context, shipment *models.Shipment,
	oldPerson, newPerson *models.DeliveryPersonnel, newStatus models.DeliveryStatus) error {
	switch {
	case oldPerson != nil && newPerson == nil:
		oldPerson.AvailabilityStatus = models.AvailabilityAvailable
		if err := c.personnel.Update(ctx, oldPerson); err != nil {
			return fmt.Errorf("update personnel: %w", err)
		}
		if shipment != nil {
			msg := fmt.Sprintf("Your assignment for Shipment ID: %s (Tracking No: %s) has been cancelled. You are now Available.",
				shipment.ShipmentID, shipment.TrackingNumber)
			_ = c.notifier.NotifyPersonnel(ctx, &oldPerson.PersonnelID, shipment.ShipmentID, msg, false)
		}

	case newPerson != nil && (oldPerson == nil || oldPerson.PersonnelID != newPerson.PersonnelID):
		if oldPerson != nil {
			oldPerson.AvailabilityStatus = models.AvailabilityAvailable
			if err := c.personnel.Update(ctx, oldPerson); err != nil {
				return fmt.Errorf("update personnel: %w", err)
			}
			if shipment != nil {
				msg := fmt.Sprintf("Your assignment for Shipment ID: %s (Tracking No: %s) has been reassigned. You are now Available.",
					shipment.ShipmentID, shipment.TrackingNumber)
				_ = c.notifier.NotifyPersonnel(ctx, &oldPerson.PersonnelID, shipment.ShipmentID, msg, false)
			}
		}
		newPerson.AvailabilityStatus = models.AvailabilityOnRoute
		if err := c.personnel.Update(ctx, newPerson); err != nil {
			return fmt.Errorf("update personnel: %w", err)
		}
		if shipment != nil {
			msg := fmt.Sprintf("You have been assigned Shipment ID: %s (Tracking No: %s). Receiver: %s at %s. Status: %s. Please check your schedule.",
				shipment.ShipmentID, shipment.TrackingNumber, shipment.ReceiverName, shipment.ReceiverAddress, newStatus)
			_ = c.notifier.NotifyPersonnel(ctx, &newPerson.PersonnelID, shipment.ShipmentID, msg, shipment.IsUrgent)
		}
	}
	return nil
}

// DeleteDelivery removes a delivery. The shipment falls back to Pending and
// an assigned driver becomes Available again; both are notified.
func (c *Coordinator) DeleteDelivery(ctx context.Context, deliveryID string) error {
	delivery, err := c.deliveries.FindByID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("find delivery: %w", err)
	}
	if delivery == nil {
		return fmt.Errorf("delivery %s: %w", deliveryID, ErrNotFound)
	}
	if err := c.deliveries.Delete(ctx, deliveryID); err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}

	shipment, err := c.shipments.FindByID(ctx, delivery.ShipmentID)
	if err != nil {
		return fmt.Errorf("find shipment: %w", err)
	}
	if shipment != nil {
		shipment.CurrentStatus = models.ShipmentStatusPending
		if err := c.shipments.Update(ctx, shipment); err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}
		customerMsg := fmt.Sprintf("Dear %s, the scheduled delivery for your shipment '%s' (Tracking No: %s) has been cancelled. It is now Pending for new scheduling.",
			shipment.ReceiverName, shipment.ShipmentID, shipment.TrackingNumber)
		_ = c.notifier.NotifyCustomer(ctx, shipment.ShipmentID, customerMsg, false)
	}

	if delivery.HasPersonnel() {
		person, err := c.personnel.FindByID(ctx, *delivery.PersonnelID)
		if err != nil {
			return fmt.Errorf("find personnel: %w", err)
		}
		if person != nil {
			person.AvailabilityStatus = models.AvailabilityAvailable
			if err := c.personnel.Update(ctx, person); err != nil {
				return fmt.Errorf("update personnel: %w", err)
			}
			if shipment != nil {
				msg := fmt.Sprintf("Your assigned delivery for Shipment ID: %s (Tracking No: %s) has been cancelled. You are now Available.",
					shipment.ShipmentID, shipment.TrackingNumber)
				_ = c.notifier.NotifyPersonnel(ctx, &person.PersonnelID, shipment.ShipmentID, msg, false)
			}
		}
	}
	return nil
}
