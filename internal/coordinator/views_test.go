package coordinator

import (
	"context"
	"testing"

	"fasttrackLogistics/models"
)

func TestUnassignedAndUnscheduledShipments(t *testing.T) {
	env := newTestEnv(t, "views_classify")
	ctx := context.Background()

	// A: no delivery. B: delivery without driver. C: delivery with driver.
	a := env.seedShipment(t, "FT-6001", false)
	b := env.seedShipment(t, "FT-6002", false)
	c := env.seedShipment(t, "FT-6003", false)
	p := env.seedPersonnel(t, "Driver Twelve")

	if _, err := env.coord.ScheduleDelivery(ctx, ScheduleDeliveryInput{
		ShipmentID:           b.ShipmentID,
		ScheduledDate:        "2026-09-20",
		ScheduledTimeSlot:    "Any Time",
		EstimatedArrivalTime: "2026-09-20 12:00",
		DeliveryStatus:       string(models.DeliveryStatusScheduled),
	}); err != nil {
		t.Fatalf("schedule b: %v", err)
	}
	if err := env.coord.AssignDriver(ctx, c.ShipmentID, p.PersonnelID); err != nil {
		t.Fatalf("assign c: %v", err)
	}

	unassigned, err := env.coord.UnassignedShipments(ctx)
	if err != nil {
		t.Fatalf("UnassignedShipments: %v", err)
	}
	if !hasShipment(unassigned, a.ShipmentID) || !hasShipment(unassigned, b.ShipmentID) || hasShipment(unassigned, c.ShipmentID) {
		t.Fatalf("unassigned classification wrong: %+v", unassigned)
	}

	unscheduled, err := env.coord.UnscheduledShipments(ctx)
	if err != nil {
		t.Fatalf("UnscheduledShipments: %v", err)
	}
	if !hasShipment(unscheduled, a.ShipmentID) || hasShipment(unscheduled, b.ShipmentID) || hasShipment(unscheduled, c.ShipmentID) {
		t.Fatalf("unscheduled classification wrong: %+v", unscheduled)
	}
}

func hasShipment(list []models.Shipment, id string) bool {
	for _, s := range list {
		if s.ShipmentID == id {
			return true
		}
	}
	return false
}

func TestAssignedDeliveries(t *testing.T) {
	env := newTestEnv(t, "views_assigned")
	ctx := context.Background()

	withDriver := env.seedShipment(t, "FT-6004", false)
	withoutDriver := env.seedShipment(t, "FT-6005", false)
	p := env.seedPersonnel(t, "Driver Thirteen")

	if err := env.coord.AssignDriver(ctx, withDriver.ShipmentID, p.PersonnelID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := env.coord.ScheduleDelivery(ctx, ScheduleDeliveryInput{
		ShipmentID:           withoutDriver.ShipmentID,
		ScheduledDate:        "2026-09-21",
		ScheduledTimeSlot:    "Any Time",
		EstimatedArrivalTime: "2026-09-21 12:00",
		DeliveryStatus:       string(models.DeliveryStatusScheduled),
	}); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	rows, err := env.coord.AssignedDeliveries(ctx)
	if err != nil {
		t.Fatalf("AssignedDeliveries: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one assigned delivery, got %d", len(rows))
	}
	if rows[0].Shipment.ShipmentID != withDriver.ShipmentID || rows[0].Personnel.PersonnelID != p.PersonnelID {
		t.Fatalf("joined row mismatch: %+v", rows[0])
	}
}

func TestDeliverySchedule(t *testing.T) {
	env := newTestEnv(t, "views_schedule")
	ctx := context.Background()

	assigned := env.seedShipment(t, "FT-6006", false)
	unassigned := env.seedShipment(t, "FT-6007", false)
	p := env.seedPersonnel(t, "Driver Fourteen")

	if err := env.coord.AssignDriver(ctx, assigned.ShipmentID, p.PersonnelID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := env.coord.ScheduleDelivery(ctx, ScheduleDeliveryInput{
		ShipmentID:           unassigned.ShipmentID,
		ScheduledDate:        "2026-09-22",
		ScheduledTimeSlot:    "Any Time",
		EstimatedArrivalTime: "2026-09-22 12:00",
		DeliveryStatus:       string(models.DeliveryStatusScheduled),
	}); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	rows, err := env.coord.DeliverySchedule(ctx)
	if err != nil {
		t.Fatalf("DeliverySchedule: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two schedule rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Shipment == nil {
			t.Fatalf("expected shipment joined: %+v", row)
		}
		if row.Shipment.ShipmentID == assigned.ShipmentID && row.Personnel == nil {
			t.Fatalf("expected driver joined for assigned delivery: %+v", row)
		}
		if row.Shipment.ShipmentID == unassigned.ShipmentID && row.Personnel != nil {
			t.Fatalf("expected no driver for unassigned delivery: %+v", row)
		}
	}
}
