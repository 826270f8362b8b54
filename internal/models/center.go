package models

import (
	"time"
)

// Center represents the centers table. One active row describes the
// coaching center the deployment serves; its name labels gateway checkouts
// and its contact details are used as the reminder sender.
type Center struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Name         string    `json:"name" gorm:"column:name"`
	ContactEmail string    `json:"contact_email" gorm:"column:contact_email"`
	ContactPhone string    `json:"contact_phone" gorm:"column:contact_phone"`
	Active       *bool     `json:"active" gorm:"column:active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Center
func (Center) TableName() string {
	return "centers"
}
