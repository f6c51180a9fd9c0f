package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is one of the known states.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit for a child at a clinic location.
type Appointment struct {
	BaseModel
	ChildName  string `gorm:"type:varchar(255);not null" json:"child_name" validate:"required"`
	ParentName string `gorm:"type:varchar(255);not null" json:"parent_name" validate:"required"`
	Email      string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone      string `gorm:"type:varchar(20)" json:"phone"`

	PediatricianID uuid.UUID  `gorm:"type:uuid;not null;index" json:"pediatrician_id" validate:"uuid_required"`
	LocationID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"location_id" validate:"uuid_required"`
	ProductID      *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`

	// Date is the calendar day; TimeSlot is "HH:MM" clinic local time.
	Date     time.Time         `gorm:"type:date;not null;index" json:"date" validate:"required"`
	TimeSlot string            `gorm:"type:varchar(5);not null" json:"time_slot" validate:"required"`
	Status   AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes    string            `gorm:"type:text" json:"notes"`
}
