package model

// Location is a physical clinic branch.
type Location struct {
	BaseModel
	Name         string   `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address      string   `gorm:"type:varchar(512);not null" json:"address" validate:"required"`
	City         string   `gorm:"type:varchar(100)" json:"city"`
	Phone        string   `gorm:"type:varchar(20)" json:"phone"`
	OpeningHours string   `gorm:"type:varchar(255)" json:"opening_hours"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}
