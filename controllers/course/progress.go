package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// MarkVideoComplete records a completed video on the user's progress record
func MarkVideoComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	videoID := c.Locals("videoID").(int)

	db := database.Database.Db

	// Completion requires enrollment
	var progress models.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var video models.Video
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", videoID, courseID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	// Skip if already marked
	var completed []models.Video
	if err := db.Model(&progress).Association("CompletedVideos").Find(&completed); err == nil {
		for _, v := range completed {
			if v.ID == video.ID {
				return middleware.JsonResponse(c, fiber.StatusOK, true, "Video already marked complete!", nil)
			}
		}
	}

	if err := db.Model(&progress).Association("CompletedVideos").Append(&video); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video marked complete!", nil)
}

// GetCourseProgress returns the user's completion percentage for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var progress models.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Preload("CompletedVideos").
		First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var totalVideos int64
	db.Model(&models.Video{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalVideos)

	percentage := 0.0
	if totalVideos > 0 {
		percentage = float64(len(progress.CompletedVideos)) / float64(totalVideos) * 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completed_videos": progress.CompletedVideos,
		"total_videos":     totalVideos,
		"percentage":       percentage,
	})
}
