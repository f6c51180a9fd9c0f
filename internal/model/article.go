package model

import "time"

// Article is an editorial piece shown on the public site.
type Article struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Summary     string     `gorm:"type:text" json:"summary"`
	Body        string     `gorm:"type:text;not null" json:"body" validate:"required"`
	Author      string     `gorm:"type:varchar(255)" json:"author"`
	ImagePath   string     `gorm:"type:varchar(512)" json:"image_path"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
