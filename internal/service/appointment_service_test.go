package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DesVallees/VAQ-sub000/internal/model"

	"github.com/google/uuid"
)

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[uuid.UUID]model.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(a *model.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.byID[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Update(a *model.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errors.New("record not found")
	}
	r.byID[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Delete(id uuid.UUID, deletedBy string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(id uuid.UUID) (*model.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) FindAll() ([]model.Appointment, error) {
	out := make([]model.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindConflicting(pediatricianID uuid.UUID, date time.Time, timeSlot string, excludeID *uuid.UUID) ([]model.Appointment, error) {
	out := make([]model.Appointment, 0)
	for _, a := range r.byID {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.PediatricianID == pediatricianID && a.Date.Equal(date) && a.TimeSlot == timeSlot && a.Status != model.AppointmentCancelled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByStatus() (map[model.AppointmentStatus]int64, error) {
	counts := map[model.AppointmentStatus]int64{}
	for _, a := range r.byID {
		counts[a.Status]++
	}
	return counts, nil
}

func (r *fakeAppointmentRepo) CountUpcoming(from time.Time) (int64, error) {
	var count int64
	for _, a := range r.byID {
		if !a.Date.Before(from) && (a.Status == model.AppointmentPending || a.Status == model.AppointmentConfirmed) {
			count++
		}
	}
	return count, nil
}

func validAppointment() *model.Appointment {
	return &model.Appointment{
		ChildName:      "Sofía Rojas",
		ParentName:     "Carolina Rojas",
		Email:          "carolina@example.com",
		PediatricianID: uuid.New(),
		LocationID:     uuid.New(),
		Date:           time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:       "09:30",
	}
}

func TestCreateAppointment_DefaultsToPending(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo(), nil)

	created, err := svc.CreateAppointment(validAppointment(), "tester")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != model.AppointmentPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
}

func TestCreateAppointment_RejectsBadTimeSlot(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo(), nil)

	appointment := validAppointment()
	appointment.TimeSlot = "25:99"

	if _, err := svc.CreateAppointment(appointment, "tester"); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
	}
}

func TestCreateAppointment_RejectsUnknownStatus(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo(), nil)

	appointment := validAppointment()
	appointment.Status = "rescheduled"

	if _, err := svc.CreateAppointment(appointment, "tester"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateAppointment_SlotConflictDetected(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo, nil)

	first := validAppointment()
	if _, err := svc.CreateAppointment(first, "tester"); err != nil {
		t.Fatalf("create first: %v", err)
	}

	// Same pediatrician, same day, same slot.
	second := validAppointment()
	second.PediatricianID = first.PediatricianID
	second.Date = first.Date
	if _, err := svc.CreateAppointment(second, "tester"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// A different slot is fine.
	third := validAppointment()
	third.PediatricianID = first.PediatricianID
	third.Date = first.Date
	third.TimeSlot = "10:00"
	if _, err := svc.CreateAppointment(third, "tester"); err != nil {
		t.Fatalf("different slot should pass: %v", err)
	}
}

func TestCreateAppointment_CancelledVisitFreesSlot(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo, nil)

	first := validAppointment()
	first.Status = model.AppointmentCancelled
	if _, err := svc.CreateAppointment(first, "tester"); err != nil {
		t.Fatalf("create cancelled: %v", err)
	}

	second := validAppointment()
	second.PediatricianID = first.PediatricianID
	second.Date = first.Date
	if _, err := svc.CreateAppointment(second, "tester"); err != nil {
		t.Fatalf("cancelled visits must not block the slot: %v", err)
	}
}

func TestUpdateAppointment_ExcludesItselfFromConflictCheck(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo, nil)

	created, err := svc.CreateAppointment(validAppointment(), "tester")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edit := validAppointment()
	edit.PediatricianID = created.PediatricianID
	edit.Date = created.Date
	edit.Status = model.AppointmentConfirmed
	edit.Notes = "confirmada por teléfono"

	updated, err := svc.UpdateAppointment(created.ID, edit, "tester")
	if err != nil {
		t.Fatalf("update in place must not conflict with itself: %v", err)
	}
	if updated.Status != model.AppointmentConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}
}
