package repository

import (
	"context"

	"fasttrackLogistics/models"
)

// ShipmentRepositoryI defines operations on Shipment entities.
type ShipmentRepositoryI interface {
	Insert(ctx context.Context, s *models.Shipment) error
	Update(ctx context.Context, s *models.Shipment) error
	Delete(ctx context.Context, shipmentID string) error
	FindByID(ctx context.Context, shipmentID string) (*models.Shipment, error)
	FindAll(ctx context.Context) ([]models.Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Shipment, error)
}

// PersonnelRepositoryI defines operations on DeliveryPersonnel entities.
type PersonnelRepositoryI interface {
	Insert(ctx context.Context, p *models.DeliveryPersonnel) error
	Update(ctx context.Context, p *models.DeliveryPersonnel) error
	Delete(ctx context.Context, personnelID string) error
	FindByID(ctx context.Context, personnelID string) (*models.DeliveryPersonnel, error)
	FindAll(ctx context.Context) ([]models.DeliveryPersonnel, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.DeliveryPersonnel, error)
	FindAvailable(ctx context.Context) ([]models.DeliveryPersonnel, error)
}

// DeliveryRepositoryI defines operations on Delivery entities.
type DeliveryRepositoryI interface {
	Insert(ctx context.Context, d *models.Delivery) error
	Update(ctx context.Context, d *models.Delivery) error
	Delete(ctx context.Context, deliveryID string) error
	FindByID(ctx context.Context, deliveryID string) (*models.Delivery, error)
	FindAll(ctx context.Context) ([]models.Delivery, error)
	FindByShipmentID(ctx context.Context, shipmentID string) (*models.Delivery, error)
	FindByPersonnelID(ctx context.Context, personnelID string) ([]models.Delivery, error)
}

// NotificationRepositoryI defines operations on Notification entities.
type NotificationRepositoryI interface {
	Insert(ctx context.Context, n *models.Notification) error
	FindAll(ctx context.Context) ([]models.Notification, error)
	FindByRecipientType(ctx context.Context, recipientType models.RecipientType) ([]models.Notification, error)
	FindByUrgency(ctx context.Context, urgent bool) ([]models.Notification, error)
}
