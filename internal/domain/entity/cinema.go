package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalStatus is the lifecycle of a Cinema's admin approval.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Cinema is owned by the organizer principal that created it; ownership
// never transfers after creation.
type Cinema struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizerID    string         `gorm:"not null;index" json:"organizerId"`
	Name           string         `gorm:"not null" json:"name"`
	Location       string         `gorm:"not null" json:"location"`
	ContactEmail   string         `gorm:"not null" json:"contactEmail"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"approvalStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CreatedBy      string         `json:"-"`
	UpdatedBy      string         `json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Cinema) TableName() string {
	return "cinemas"
}

// IsApproved reports whether showtimes may be created under this cinema.
func (c *Cinema) IsApproved() bool {
	return c.ApprovalStatus == ApprovalApproved
}
