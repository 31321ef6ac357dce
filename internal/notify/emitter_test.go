package notify

import (
	"context"
	"testing"

	"fasttrackLogistics/internal/testutil"
	"fasttrackLogistics/models"
	"fasttrackLogistics/repository"
)

func TestEmitter_RecipientResolution(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "emitter_recipient")
	notifications := repository.NewNotificationRepository(d)
	e := NewEmitter(notifications)
	ctx := context.Background()

	if err := e.NotifyCustomer(ctx, "SHP-AAAA1111", "Your shipment 'FT-1' has been created.", false); err != nil {
		t.Fatalf("NotifyCustomer: %v", err)
	}

	driverID := "driver-1"
	if err := e.NotifyPersonnel(ctx, &driverID, "SHP-AAAA1111", "You have been assigned Shipment ID: SHP-AAAA1111.", false); err != nil {
		t.Fatalf("NotifyPersonnel: %v", err)
	}
	// Broadcast: no driver, related entity id becomes the recipient.
	if err := e.NotifyPersonnel(ctx, nil, "SHP-BBBB2222", "URGENT: New shipment 'FT-2' added.", true); err != nil {
		t.Fatalf("broadcast: %v", err)
	}

	customer, err := e.CustomerNotifications(ctx)
	if err != nil || len(customer) != 1 {
		t.Fatalf("CustomerNotifications: %v len=%d", err, len(customer))
	}
	if customer[0].RecipientType != models.RecipientCustomer || customer[0].RecipientID != "SHP-AAAA1111" {
		t.Fatalf("customer recipient: %+v", customer[0])
	}

	personnel, err := e.PersonnelNotifications(ctx, false)
	if err != nil || len(personnel) != 2 {
		t.Fatalf("PersonnelNotifications: %v len=%d", err, len(personnel))
	}
	recipients := map[string]bool{}
	for _, n := range personnel {
		recipients[n.RecipientID] = true
	}
	if !recipients[driverID] || !recipients["SHP-BBBB2222"] {
		t.Fatalf("personnel recipients: %+v", recipients)
	}

	urgent, err := e.PersonnelNotifications(ctx, true)
	if err != nil || len(urgent) != 1 || !urgent[0].IsUrgent {
		t.Fatalf("urgent filter: %v %+v", err, urgent)
	}
	if urgent[0].RecipientID != "SHP-BBBB2222" {
		t.Fatalf("urgent recipient: %+v", urgent[0])
	}
}

func TestEmitter_RecordsSentStatus(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "emitter_status")
	notifications := repository.NewNotificationRepository(d)
	e := NewEmitter(notifications)

	if err := e.NotifyCustomer(context.Background(), "SHP-CCCC3333", "Test message.", false); err != nil {
		t.Fatalf("NotifyCustomer: %v", err)
	}
	got, err := notifications.FindAll(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("FindAll: %v len=%d", err, len(got))
	}
	if got[0].Status != models.NotificationStatusSent || got[0].Timestamp == "" {
		t.Fatalf("expected SENT with timestamp: %+v", got[0])
	}
}
