package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Career application statuses
const (
	ApplicationStatusNew       = "new"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusInterview = "interview"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusArchived  = "archived"
)

// Resume holds the uploaded resume file metadata
type Resume struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
	Key          string `json:"key"`
}

type CareerApplication struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	Email         string     `json:"email" gorm:"size:255;not null;index"`
	Phone         string     `json:"phone" gorm:"size:20;not null"`
	Role          string     `json:"role" gorm:"size:100;not null;index"`
	Resume        Resume     `json:"resume" gorm:"embedded;embeddedPrefix:resume_"`
	Status        string     `json:"status" gorm:"size:20;default:'new';index:idx_career_applications_status"`
	Notes         string     `json:"notes" gorm:"default:''"`
	ReviewedBy    string     `json:"reviewedBy" gorm:"size:100;default:''"`
	ReviewedAt    *time.Time `json:"reviewedAt"`
	InterviewDate *time.Time `json:"interviewDate"`
	Rating        *int       `json:"rating"`
	Tags          []string   `json:"tags" gorm:"serializer:json"`
	Source        string     `json:"source" gorm:"size:50;default:'website'"`
	IPAddress     string     `json:"ipAddress" gorm:"size:45"`
	UserAgent     string     `json:"userAgent" gorm:"size:500"`
	IsArchived    bool       `json:"isArchived" gorm:"default:false;index"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (a *CareerApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
