package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CorporateService struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	Description  string    `json:"description" gorm:"not null"`
	Icon         string    `json:"icon" gorm:"size:100"`
	Image        ItemImage `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	IsActive     bool      `json:"isActive" gorm:"index:idx_corporate_services_active_order"`
	DisplayOrder int       `json:"displayOrder" gorm:"default:0;index:idx_corporate_services_active_order"`
	CTAText      string    `json:"ctaText" gorm:"size:100;default:'Learn More'"`
	CTALink      string    `json:"ctaLink" gorm:"size:200;default:'/contact'"`
	ServiceType  string    `json:"serviceType" gorm:"size:20;default:'corporate'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *CorporateService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
