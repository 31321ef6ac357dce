// Package notify records notifications for customers and delivery personnel.
// Sending is simulated: every message is logged and stored with status SENT.
package notify

import (
	"context"
	"log"

	"fasttrackLogistics/models"
	"fasttrackLogistics/repository"
)

// Emitter formats and records notifications through the notification repository.
type Emitter struct {
	notifications repository.NotificationRepositoryI
}

// NewEmitter creates a new Emitter.
func NewEmitter(notifications repository.NotificationRepositoryI) *Emitter {
	return &Emitter{notifications: notifications}
}

// NotifyCustomer records a notification for a customer. The recipient id is
// the shipment id.
func (e *Emitter) NotifyCustomer(ctx context.Context, shipmentID, message string, urgent bool) error {
	n := &models.Notification{
		RecipientType: models.RecipientCustomer,
		RecipientID:   shipmentID,
		Message:       message,
		IsUrgent:      urgent,
	}
	if err := e.notifications.Insert(ctx, n); err != nil {
		log.Printf("notify: failed to record customer notification: %v", err)
		return err
	}
	log.Printf("notify: customer notification logged: %s", message)
	return nil
}

// NotifyPersonnel records a notification for a driver. When personnelID is
// nil the related entity id becomes the recipient id, which is how urgent
// broadcasts with no specific driver are recorded.
func (e *Emitter) NotifyPersonnel(ctx context.Context, personnelID *string, relatedEntityID, message string, urgent bool) error {
	recipient := relatedEntityID
	if personnelID != nil && *personnelID != "" {
		recipient = *personnelID
	}
	n := &models.Notification{
		RecipientType: models.RecipientPersonnel,
		RecipientID:   recipient,
		Message:       message,
		IsUrgent:      urgent,
	}
	if err := e.notifications.Insert(ctx, n); err != nil {
		log.Printf("notify: failed to record personnel notification: %v", err)
		return err
	}
	log.Printf("notify: personnel notification logged: %s", message)
	return nil
}

// CustomerNotifications returns the customer notification log, newest first.
func (e *Emitter) CustomerNotifications(ctx context.Context) ([]models.Notification, error) {
	return e.notifications.FindByRecipientType(ctx, models.RecipientCustomer)
}

// PersonnelNotifications returns the personnel notification log, newest
// first. With urgentOnly set, only urgent notifications are returned.
func (e *Emitter) PersonnelNotifications(ctx context.Context, urgentOnly bool) ([]models.Notification, error) {
	if urgentOnly {
		return e.notifications.FindByUrgency(ctx, true)
	}
	return e.notifications.FindByRecipientType(ctx, models.RecipientPersonnel)
}
