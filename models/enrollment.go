package models

import (
	"gorm.io/gorm"
)

// Enrollment links a user to a course. The composite unique index makes a
// second enrollment attempt for the same pair fail at the store layer, so a
// replayed payment callback cannot double-enroll.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course    Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}
