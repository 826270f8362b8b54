package models

import (
	"time"
)

// Student represents the students table. A student with a GuardianID is a
// ward: their fees surface on the guardian's my-fees view as well.
type Student struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CenterID   uint      `json:"center_id" gorm:"column:center_id;index"`
	Name       string    `json:"name" gorm:"column:name"`
	Email      string    `json:"email" gorm:"column:email"`
	Phone      string    `json:"phone" gorm:"column:phone"`
	GuardianID *uint     `json:"guardian_id" gorm:"column:guardian_id;index"`
	Active     *bool     `json:"active" gorm:"column:active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Student
func (Student) TableName() string {
	return "students"
}
