package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact statuses
const (
	ContactStatusNew        = "new"
	ContactStatusContacted  = "contacted"
	ContactStatusInProgress = "in_progress"
	ContactStatusCompleted  = "completed"
	ContactStatusCancelled  = "cancelled"
)

type Contact struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:255;not null"`
	Phone        string     `json:"phone" gorm:"size:20;not null"`
	EventType    string     `json:"eventType" gorm:"size:20;not null;index"`
	Message      string     `json:"message" gorm:"size:1000;not null"`
	Status       string     `json:"status" gorm:"size:20;default:'new';index"`
	Priority     string     `json:"priority" gorm:"size:10;default:'medium'"`
	Notes        string     `json:"notes" gorm:"size:500"`
	ContactedAt  *time.Time `json:"contactedAt"`
	FollowUpDate *time.Time `json:"followUpDate"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
