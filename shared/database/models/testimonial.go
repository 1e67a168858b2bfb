package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ClientNames  string     `json:"clientNames" gorm:"size:200;not null"`
	Content      string     `json:"content" gorm:"not null"`
	Rating       int        `json:"rating" gorm:"default:5"`
	ServiceType  string     `json:"serviceType" gorm:"size:20;default:'all';index"`
	EventDate    *time.Time `json:"eventDate"`
	Location     string     `json:"location" gorm:"size:200"`
	Image        HeroImage  `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	IsActive     bool       `json:"isActive" gorm:"index"`
	IsFeatured   bool       `json:"isFeatured" gorm:"default:false"`
	DisplayOrder int        `json:"displayOrder" gorm:"default:0"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
