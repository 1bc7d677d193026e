package userController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the user with their enrollments and progress records
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	user.Password = ""

	var enrollments []models.Enrollment
	db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&enrollments)

	var progress []models.CourseProgress
	db.Where("user_id = ?", userID).Preload("CompletedVideos").Find(&progress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":        user,
		"enrollments": enrollments,
		"progress":    progress,
	})
}

// UpdateProfile updates the user's display name and about text
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Name  string `json:"name"`
		About string `json:"about"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	reqData.Name = strings.TrimSpace(reqData.Name)
	if reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"name":  reqData.Name,
		"about": reqData.About,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", nil)
}

// UploadProfileImage uploads the user's avatar to media hosting
func UploadProfileImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	url, err := utils.UploadToCloudinary(file, "profile-images")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	if err := db.Model(&user).Update("profile_image", url).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile image updated successfully!", fiber.Map{
		"profile_image": url,
	})
}
