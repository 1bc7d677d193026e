package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	courseValidator "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a draft course owned by the authenticated instructor
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Price:        uint(reqData.Price),
		InstructorID: userID,
		Status:       "DRAFT",
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UploadCourseThumbnail uploads a thumbnail image and attaches it to the course
func UploadCourseThumbnail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	url, err := utils.UploadToCloudinary(file, "course-thumbnails")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
	}

	if err := db.Model(&course).Update("thumbnail_url", url).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", fiber.Map{
		"thumbnail_url": url,
	})
}

// AddVideo appends a video to an instructor's course
func AddVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedVideo").(*courseValidator.AddVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	video := models.Video{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		URL:         reqData.URL,
		DurationSec: reqData.DurationSec,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video added successfully!", video)
}

// PublishCourse moves a draft course to the public catalog
func PublishCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var videoCount int64
	db.Model(&models.Video{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&videoCount)
	if videoCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot publish a course with no videos!", nil)
	}

	if err := db.Model(&course).Update("status", "PUBLISHED").Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", nil)
}

// GetAllCourses lists published courses
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_deleted = ? AND status = ?", false, "PUBLISHED").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a published course with its videos and whether the
// caller is enrolled
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "PUBLISHED").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var videos []models.Video
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&videos)

	var enrollment models.Enrollment
	isEnrolled := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"videos":      videos,
		"is_enrolled": isEnrolled,
	})
}
