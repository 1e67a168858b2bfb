package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue categories
const (
	VenueCategoryExclusive = "Exclusive"
	VenueCategoryFeatured  = "Featured"
	VenueCategoryPartner   = "Partner"
)

// VenueImage is an embedded image record on a venue
type VenueImage struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Key          string `json:"key"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	IsPrimary    bool   `json:"isPrimary"`
}

// VenueAmenity is an embedded amenity record on a venue
type VenueAmenity struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	IsHighlight bool   `json:"isHighlight"`
}

// VenueAddress is the venue street address
type VenueAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country" gorm:"default:'USA'"`
}

// VenueCapacity holds guest counts; Seated is the filterable column
type VenueCapacity struct {
	Seated      int    `json:"seated"`
	Standing    int    `json:"standing"`
	DisplayText string `json:"displayText"`
}

// VenueSpaces flags which physical spaces the venue offers
type VenueSpaces struct {
	HasOutdoorSpace bool `json:"hasOutdoorSpace" gorm:"default:false"`
	HasIndoorSpace  bool `json:"hasIndoorSpace"`
	HasBridal       bool `json:"hasBridal" gorm:"default:false"`
	HasDanceFloor   bool `json:"hasDanceFloor" gorm:"default:false"`
	HasStage        bool `json:"hasStage" gorm:"default:false"`
	HasKitchen      bool `json:"hasKitchen" gorm:"default:false"`
	HasParking      bool `json:"hasParking"`
}

// VenueContact is the venue's point of contact
type VenueContact struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contactPerson"`
}

// VenuePricing holds pricing details
type VenuePricing struct {
	BasePrice    float64 `json:"basePrice"`
	PriceUnit    string  `json:"priceUnit" gorm:"size:20;default:'per person'"`
	MinimumSpend float64 `json:"minimumSpend"`
	Notes        string  `json:"notes"`
}

// VenueAvailability describes when the venue can be booked
type VenueAvailability struct {
	DaysOfWeek  []string `json:"daysOfWeek" gorm:"serializer:json"`
	Seasonality string   `json:"seasonality" gorm:"size:30;default:'Year-round'"`
}

// SEOFields are shared meta tags for public pages
type SEOFields struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords" gorm:"serializer:json"`
}

// SocialMedia holds public profile links
type SocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

type Venue struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string            `json:"name" gorm:"size:200;not null"`
	Slug         string            `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Description  string            `json:"description" gorm:"not null"`
	Location     string            `json:"location" gorm:"size:200;not null;index"`
	Address      VenueAddress      `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Capacity     VenueCapacity     `json:"capacity" gorm:"embedded;embeddedPrefix:capacity_"`
	Style        []string          `json:"style" gorm:"serializer:json"`
	PriceRange   string            `json:"priceRange" gorm:"size:4;not null"`
	Category     string            `json:"category" gorm:"size:20;default:'Partner';index"`
	VenueType    []string          `json:"venueType" gorm:"serializer:json"`
	Spaces       VenueSpaces       `json:"spaces" gorm:"embedded;embeddedPrefix:spaces_"`
	Images       []VenueImage      `json:"images" gorm:"serializer:json"`
	Amenities    []VenueAmenity    `json:"amenities" gorm:"serializer:json"`
	Website      string            `json:"website" gorm:"size:500"`
	Contact      VenueContact      `json:"contact" gorm:"embedded;embeddedPrefix:contact_"`
	Pricing      VenuePricing      `json:"pricing" gorm:"embedded;embeddedPrefix:pricing_"`
	Availability VenueAvailability `json:"availability" gorm:"embedded;embeddedPrefix:availability_"`
	Features     []string          `json:"features" gorm:"serializer:json"`
	Restrictions []string          `json:"restrictions" gorm:"serializer:json"`
	IsActive     bool              `json:"isActive" gorm:"index"`
	IsFeatured   bool              `json:"isFeatured" gorm:"default:false"`
	IsExclusive  bool              `json:"isExclusive" gorm:"default:false"`
	DisplayOrder int               `json:"displayOrder" gorm:"default:0"`
	SEO          SEOFields         `json:"seo" gorm:"embedded;embeddedPrefix:seo_"`
	SocialMedia  SocialMedia       `json:"socialMedia" gorm:"embedded;embeddedPrefix:social_"`
	Tags         []string          `json:"tags" gorm:"serializer:json"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
