package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
	"github.com/DesVallees/VAQ-sub000/internal/ws"
	"github.com/DesVallees/VAQ-sub000/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeSlot     = errors.New("invalid time slot, use HH:MM (e.g., 08:30, 15:00)")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrSlotTaken           = errors.New("time slot already booked for this pediatrician")
)

var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

type AppointmentService interface {
	CreateAppointment(req *model.Appointment, actorID string) (*model.Appointment, error)
	UpdateAppointment(id uuid.UUID, req *model.Appointment, actorID string) (*model.Appointment, error)
	DeleteAppointment(id uuid.UUID, actorID string) error
	GetAppointment(id uuid.UUID) (*model.Appointment, error)
	GetAllAppointments() ([]model.Appointment, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	wsHub           *ws.Hub
}

func NewAppointmentService(repo repository.AppointmentRepository, hub *ws.Hub) AppointmentService {
	return &appointmentService{appointmentRepo: repo, wsHub: hub}
}

func (s *appointmentService) checkRequest(req *model.Appointment, excludeID *uuid.UUID) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if !timeSlotPattern.MatchString(req.TimeSlot) {
		return ErrInvalidTimeSlot
	}

	if req.Status == "" {
		req.Status = model.AppointmentPending
	}
	if !model.ValidAppointmentStatus(req.Status) {
		return ErrInvalidStatus
	}

	// Cancelled visits free their slot, so they don't need a conflict check.
	if req.Status != model.AppointmentCancelled {
		conflicts, err := s.appointmentRepo.FindConflicting(req.PediatricianID, req.Date, req.TimeSlot, excludeID)
		if err != nil {
			return errors.New("failed to check for schedule conflicts")
		}
		if len(conflicts) > 0 {
			return ErrSlotTaken
		}
	}

	return nil
}

func (s *appointmentService) CreateAppointment(req *model.Appointment, actorID string) (*model.Appointment, error) {
	if err := s.checkRequest(req, nil); err != nil {
		return nil, err
	}

	req.CreatedBy = actorID
	req.UpdatedBy = actorID

	if err := s.appointmentRepo.Create(req); err != nil {
		return nil, err
	}

	s.notify("appointment_created", req)
	return req, nil
}

func (s *appointmentService) UpdateAppointment(id uuid.UUID, req *model.Appointment, actorID string) (*model.Appointment, error) {
	existing, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	if err := s.checkRequest(req, &id); err != nil {
		return nil, err
	}

	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	req.CreatedBy = existing.CreatedBy
	req.UpdatedBy = actorID

	if err := s.appointmentRepo.Update(req); err != nil {
		return nil, err
	}

	s.notify("appointment_updated", req)
	return req, nil
}

func (s *appointmentService) DeleteAppointment(id uuid.UUID, actorID string) error {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if err := s.appointmentRepo.Delete(id, actorID); err != nil {
		return err
	}

	s.notify("appointment_deleted", appointment)
	return nil
}

func (s *appointmentService) GetAppointment(id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (s *appointmentService) GetAllAppointments() ([]model.Appointment, error) {
	return s.appointmentRepo.FindAll()
}

func (s *appointmentService) notify(action string, a *model.Appointment) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Notify("appointment_update", map[string]interface{}{
		"action": action,
		"appointment": map[string]interface{}{
			"id":        a.ID,
			"date":      a.Date.Format("2006-01-02"),
			"time_slot": a.TimeSlot,
			"status":    a.Status,
		},
	})
}
