package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        uint   `json:"price"` // major currency units (rupees)
	ThumbnailURL string `json:"thumbnail_url"`
	InstructorID uint   `json:"instructor_id" gorm:"index"`
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED
	IsDeleted    bool   `gorm:"default:false"`

	Instructor User    `gorm:"foreignKey:InstructorID" json:"-"`
	Videos     []Video `gorm:"foreignKey:CourseID" json:"videos,omitempty"`
}

type Video struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	DurationSec int64  `json:"duration_sec"`
	OrderIndex  int    `json:"order_index"`
	IsDeleted   bool   `gorm:"default:false"`
}
