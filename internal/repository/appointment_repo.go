package repository

import (
	"time"

	"github.com/DesVallees/VAQ-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(appointment *model.Appointment) error
	Update(appointment *model.Appointment) error
	Delete(id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Appointment, error)
	FindAll() ([]model.Appointment, error)

	// FindConflicting returns booked appointments occupying the same slot
	// for a pediatrician on a given day. Cancelled visits don't block.
	FindConflicting(pediatricianID uuid.UUID, date time.Time, timeSlot string, excludeID *uuid.UUID) ([]model.Appointment, error)

	CountByStatus() (map[model.AppointmentStatus]int64, error)
	CountUpcoming(from time.Time) (int64, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db}
}

func (r *appointmentRepo) Create(appointment *model.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *appointmentRepo) Update(appointment *model.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *appointmentRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Appointment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *appointmentRepo) FindByID(id uuid.UUID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepo) FindAll() ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.Order("date ASC, time_slot ASC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepo) FindConflicting(pediatricianID uuid.UUID, date time.Time, timeSlot string, excludeID *uuid.UUID) ([]model.Appointment, error) {
	query := r.db.Where("pediatrician_id = ?", pediatricianID).
		Where("date = ?", date).
		Where("time_slot = ?", timeSlot).
		Where("status <> ?", model.AppointmentCancelled)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var appointments []model.Appointment
	err := query.Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepo) CountByStatus() (map[model.AppointmentStatus]int64, error) {
	type row struct {
		Status model.AppointmentStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&model.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepo) CountUpcoming(from time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Appointment{}).
		Where("date >= ?", from).
		Where("status IN ?", []model.AppointmentStatus{model.AppointmentPending, model.AppointmentConfirmed}).
		Count(&count).Error
	return count, err
}
