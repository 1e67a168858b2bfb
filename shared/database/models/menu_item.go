package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemImage is a single embedded image with its storage key
type ItemImage struct {
	URL string `json:"url" gorm:"default:''"`
	Alt string `json:"alt" gorm:"default:''"`
	Key string `json:"key" gorm:"default:''"`
}

type MenuItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"size:200;not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	PriceUnit    string    `json:"priceUnit" gorm:"size:20;default:'person'"`
	Category     string    `json:"category" gorm:"size:20;not null;index:idx_menu_items_listing"`
	Subcategory  string    `json:"subcategory" gorm:"size:100"`
	ServiceType  string    `json:"serviceType" gorm:"size:20;default:'corporate';index:idx_menu_items_listing"`
	IsActive     bool      `json:"isActive" gorm:"index:idx_menu_items_listing"`
	IsFeatured   bool      `json:"isFeatured" gorm:"default:false"`
	DisplayOrder int       `json:"displayOrder" gorm:"default:0"`
	MinimumOrder int       `json:"minimumOrder" gorm:"default:1"`
	Notes        string    `json:"notes"`
	Image        ItemImage `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
