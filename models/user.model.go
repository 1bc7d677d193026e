package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''"`
	Email               string     `gorm:"unique;not null"`
	Password            string     `gorm:"not null" json:"-"`
	Role                string     `gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR
	ProfileImage        string     `gorm:"default:''"`
	About               string     `gorm:"default:''"`
	LastLogin           time.Time  `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsDeleted           bool       `gorm:"default:false"`
}
