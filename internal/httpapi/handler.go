// Package httpapi exposes the coordinator over a JSON HTTP surface.
package httpapi

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"fasttrackLogistics/internal/coordinator"
	"fasttrackLogistics/internal/notify"
)

// Handler routes HTTP requests into the coordinator.
type Handler struct {
	coord   *coordinator.Coordinator
	emitter *notify.Emitter
}

// NewHandler creates a Handler.
func NewHandler(coord *coordinator.Coordinator, emitter *notify.Emitter) *Handler {
	return &Handler{coord: coord, emitter: emitter}
}

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.HealthCheck)

	app.Post("/shipments", h.CreateShipment)
	app.Get("/shipments", h.ListShipments)
	app.Get("/shipments/unassigned", h.UnassignedShipments)
	app.Get("/shipments/unscheduled", h.UnscheduledShipments)
	app.Put("/shipments/:id", h.UpdateShipment)
	app.Delete("/shipments/:id", h.DeleteShipment)

	app.Post("/personnel", h.CreatePersonnel)
	app.Get("/personnel", h.ListPersonnel)
	app.Get("/personnel/available", h.AvailablePersonnel)
	app.Put("/personnel/:id", h.UpdatePersonnel)
	app.Delete("/personnel/:id", h.DeletePersonnel)

	app.Post("/assignments", h.AssignDriver)

	app.Post("/deliveries", h.ScheduleDelivery)
	app.Get("/deliveries", h.DeliverySchedule)
	app.Get("/deliveries/assigned", h.AssignedDeliveries)
	app.Put("/deliveries/:id", h.UpdateDelivery)
	app.Delete("/deliveries/:id", h.DeleteDelivery)

	app.Get("/track/:trackingNumber", h.TrackShipment)

	app.Get("/notifications/customer", h.CustomerNotifications)
	app.Get("/notifications/personnel", h.PersonnelNotifications)
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return successResponse(c, "Service is healthy", map[string]interface{}{
		"service": "fasttrack-logistics",
		"status":  "healthy",
	})
}

// respondError translates a coordinator error into the matching HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, coordinator.ErrNotFound):
		return notFoundResponse(c, err.Error())
	case errors.Is(err, coordinator.ErrValidation):
		return badRequestResponse(c, err.Error(), nil)
	case errors.Is(err, coordinator.ErrConflict):
		return conflictResponse(c, err.Error(), nil)
	default:
		log.Printf("httpapi: %s %s: %v", c.Method(), c.Path(), err)
		return internalServerErrorResponse(c, "internal error", nil)
	}
}

func (h *Handler) CreateShipment(c *fiber.Ctx) error {
	var in coordinator.ShipmentInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	shipment, err := h.coord.AddShipment(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return createdResponse(c, "Shipment created successfully", shipment)
}

func (h *Handler) UpdateShipment(c *fiber.Ctx) error {
	var in coordinator.ShipmentInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	shipment, err := h.coord.UpdateShipment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Shipment updated successfully", shipment)
}

func (h *Handler) DeleteShipment(c *fiber.Ctx) error {
	if err := h.coord.DeleteShipment(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Shipment deleted successfully", nil)
}

func (h *Handler) ListShipments(c *fiber.Ctx) error {
	rows, err := h.coord.ListShipments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Shipments retrieved successfully", rows)
}

func (h *Handler) UnassignedShipments(c *fiber.Ctx) error {
	shipments, err := h.coord.UnassignedShipments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Unassigned shipments retrieved successfully", shipments)
}

func (h *Handler) UnscheduledShipments(c *fiber.Ctx) error {
	shipments, err := h.coord.UnscheduledShipments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Unscheduled shipments retrieved successfully", shipments)
}

func (h *Handler) CreatePersonnel(c *fiber.Ctx) error {
	var in coordinator.PersonnelInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	person, err := h.coord.AddPersonnel(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return createdResponse(c, "Personnel created successfully", person)
}

func (h *Handler) UpdatePersonnel(c *fiber.Ctx) error {
	var in coordinator.PersonnelInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	person, err := h.coord.UpdatePersonnel(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Personnel updated successfully", person)
}

func (h *Handler) DeletePersonnel(c *fiber.Ctx) error {
	if err := h.coord.DeletePersonnel(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Personnel deleted successfully", nil)
}

func (h *Handler) ListPersonnel(c *fiber.Ctx) error {
	personnel, err := h.coord.ListPersonnel(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Personnel retrieved successfully", personnel)
}

func (h *Handler) AvailablePersonnel(c *fiber.Ctx) error {
	personnel, err := h.coord.AvailablePersonnel(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Available personnel retrieved successfully", personnel)
}

// AssignRequest names the shipment and the driver to put on it.
type AssignRequest struct {
	ShipmentID  string `json:"shipment_id"`
	PersonnelID string `json:"personnel_id"`
}

func (h *Handler) AssignDriver(c *fiber.Ctx) error {
	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	if req.ShipmentID == "" || req.PersonnelID == "" {
		return badRequestResponse(c, "shipment_id and personnel_id are required", nil)
	}
	if err := h.coord.AssignDriver(c.UserContext(), req.ShipmentID, req.PersonnelID); err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Driver assigned successfully", nil)
}

func (h *Handler) ScheduleDelivery(c *fiber.Ctx) error {
	var in coordinator.ScheduleDeliveryInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	delivery, err := h.coord.ScheduleDelivery(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return createdResponse(c, "Delivery scheduled successfully", delivery)
}

func (h *Handler) UpdateDelivery(c *fiber.Ctx) error {
	var in coordinator.UpdateDeliveryInput
	if err := c.BodyParser(&in); err != nil {
		return badRequestResponse(c, "Invalid request body", nil)
	}
	in.DeliveryID = c.Params("id")
	if err := h.coord.UpdateDelivery(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Delivery updated successfully", nil)
}

func (h *Handler) DeleteDelivery(c *fiber.Ctx) error {
	if err := h.coord.DeleteDelivery(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Delivery cancelled successfully", nil)
}

func (h *Handler) DeliverySchedule(c *fiber.Ctx) error {
	rows, err := h.coord.DeliverySchedule(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Delivery schedule retrieved successfully", rows)
}

func (h *Handler) AssignedDeliveries(c *fiber.Ctx) error {
	rows, err := h.coord.AssignedDeliveries(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Assigned deliveries retrieved successfully", rows)
}

func (h *Handler) TrackShipment(c *fiber.Ctx) error {
	result, err := h.coord.TrackShipment(c.UserContext(), c.Params("trackingNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Shipment tracked successfully", result)
}

func (h *Handler) CustomerNotifications(c *fiber.Ctx) error {
	notifications, err := h.emitter.CustomerNotifications(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Customer notifications retrieved successfully", notifications)
}

func (h *Handler) PersonnelNotifications(c *fiber.Ctx) error {
	urgentOnly := c.Query("urgent") == "1" || c.Query("urgent") == "true"
	notifications, err := h.emitter.PersonnelNotifications(c.UserContext(), urgentOnly)
	if err != nil {
		return respondError(c, err)
	}
	return successResponse(c, "Personnel notifications retrieved successfully", notifications)
}
