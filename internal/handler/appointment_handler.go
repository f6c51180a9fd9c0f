package handler

import (
	"errors"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	service service.AppointmentService
}

func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) GetAppointments(c *fiber.Ctx) error {
	appointments, err := h.service.GetAllAppointments()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(appointments)
}

func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	appointment, err := h.service.GetAppointment(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Appointment not found"})
	}
	return c.JSON(appointment)
}

func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var appointment model.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateAppointment(&appointment, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Appointment created", "data": created})
}

func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var appointment model.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateAppointment(id, &appointment, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Appointment not found"})
		case errors.Is(err, service.ErrSlotTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Appointment updated", "data": updated})
}

func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	if err := h.service.DeleteAppointment(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Appointment not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Appointment deleted"})
}
