package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string    `json:"name" gorm:"size:100;not null"`
	Role             string    `json:"role" gorm:"size:100;not null"`
	FavoriteMenuItem string    `json:"favoriteMenuItem" gorm:"size:100"`
	Image            string    `json:"image"`
	ImageKey         string    `json:"imageKey" gorm:"size:200"`
	HasPhoto         bool      `json:"hasPhoto" gorm:"default:false;index"`
	DisplayOrder     int       `json:"displayOrder" gorm:"default:0;index"`
	IsActive         bool      `json:"isActive" gorm:"index"`
	Bio              string    `json:"bio" gorm:"size:500"`
	Specialties      []string  `json:"specialties" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
