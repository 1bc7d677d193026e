package models

import (
	"gorm.io/gorm"
)

// CourseProgress tracks which videos a user has completed in a course.
// One record per (course, user), enforced by the composite unique index.
type CourseProgress struct {
	gorm.Model
	CourseID        uint    `json:"course_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	UserID          uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	CompletedVideos []Video `json:"completed_videos" gorm:"many2many:progress_completed_videos;"`
	User            User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course          Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
