package model

import "github.com/google/uuid"

// Pediatrician is a practitioner that can administer catalog products.
type Pediatrician struct {
	BaseModel
	FullName      string     `gorm:"type:varchar(255);not null" json:"full_name" validate:"required"`
	Specialty     string     `gorm:"type:varchar(255)" json:"specialty"`
	LicenseNumber string     `gorm:"type:varchar(50)" json:"license_number"`
	Email         string     `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string     `gorm:"type:varchar(20)" json:"phone"`
	Bio           string     `gorm:"type:text" json:"bio"`
	ImagePath     string     `gorm:"type:varchar(512)" json:"image_path"`
	LocationID    *uuid.UUID `gorm:"type:uuid" json:"location_id,omitempty"`
}
