package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exclusive location availability statuses
const (
	LocationAvailable  = "Available"
	LocationBooked     = "Booked"
	LocationLimited    = "Limited"
	LocationComingSoon = "Coming Soon"
)

// LocationImage is the single hero image of an exclusive location
type LocationImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt" gorm:"default:''"`
	Key    string `json:"key" gorm:"default:''"`
	Width  int    `json:"width" gorm:"default:800"`
	Height int    `json:"height" gorm:"default:533"`
}

// LocationContactInfo is the public point of contact for a location
type LocationContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// LocationAddress is the location street address
type LocationAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state" gorm:"default:'OH'"`
	ZipCode string `json:"zipCode"`
}

type ExclusiveLocation struct {
	ID                 uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string              `json:"name" gorm:"size:200;not null"`
	Slug               string              `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Location           string              `json:"location" gorm:"size:200;not null"`
	Description        string              `json:"description" gorm:"not null"`
	Capacity           string              `json:"capacity" gorm:"size:100;not null"`
	Image              LocationImage       `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	Features           []string            `json:"features" gorm:"serializer:json"`
	Amenities          []string            `json:"amenities" gorm:"serializer:json"`
	PriceRange         string              `json:"priceRange" gorm:"size:4;default:'$$$'"`
	ContactInfo        LocationContactInfo `json:"contactInfo" gorm:"embedded;embeddedPrefix:contact_"`
	Address            LocationAddress     `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	IsActive           bool                `json:"isActive" gorm:"index:idx_exclusive_locations_active_order"`
	IsFeatured         bool                `json:"isFeatured"`
	DisplayOrder       int                 `json:"displayOrder" gorm:"default:0;index:idx_exclusive_locations_active_order"`
	AvailabilityStatus string              `json:"availabilityStatus" gorm:"size:20;default:'Available'"`
	SEO                SEOFields           `json:"seo" gorm:"embedded;embeddedPrefix:seo_"`
	SocialMedia        SocialMedia         `json:"socialMedia" gorm:"embedded;embeddedPrefix:social_"`
	Tags               []string            `json:"tags" gorm:"serializer:json"`
	Notes              string              `json:"notes"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

func (l *ExclusiveLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
