package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceImage is an embedded image record on a service page
type ServiceImage struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Key          string `json:"key"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	Size         string `json:"size"`
}

// HeroImage is the banner image of a service page
type HeroImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Service struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string         `json:"title" gorm:"size:200;not null"`
	Slug           string         `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Subtitle       string         `json:"subtitle" gorm:"size:300"`
	Description    string         `json:"description" gorm:"not null"`
	HeroImage      HeroImage      `json:"heroImage" gorm:"embedded;embeddedPrefix:hero_image_"`
	Images         []ServiceImage `json:"images" gorm:"serializer:json"`
	CTAText        string         `json:"ctaText" gorm:"size:100;default:'Get Started'"`
	CTALink        string         `json:"ctaLink" gorm:"size:200;default:'/contact'"`
	IsActive       bool           `json:"isActive" gorm:"index:idx_services_active_order"`
	DisplayOrder   int            `json:"displayOrder" gorm:"default:0;index:idx_services_active_order"`
	SEOTitle       string         `json:"seoTitle" gorm:"size:200"`
	SEODescription string         `json:"seoDescription" gorm:"size:500"`
	SEOKeywords    string         `json:"seoKeywords" gorm:"size:500"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
