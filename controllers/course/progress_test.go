package courseController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseValidator "elearn/validators/course"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupCourseTest(t *testing.T) (*fiber.App, *gorm.DB) {
	config.AppConfig = &config.Config{
		JWTKey:    "test-jwt-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Video{},
		&models.Enrollment{},
		&models.CourseProgress{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/course/list", middleware.JWTMiddleware, GetAllCourses)
	app.Get("/course/:id", middleware.JWTMiddleware, courseValidator.CourseID(), GetCourseDetails)
	app.Post("/course/:course_id/video/:video_id/complete", middleware.JWTMiddleware, courseValidator.MarkVideoComplete(), MarkVideoComplete)
	app.Get("/course/:course_id/progress", middleware.JWTMiddleware, courseValidator.CourseProgressParam(), GetCourseProgress)

	return app, db
}

func seedEnrolledCourse(t *testing.T, db *gorm.DB) (models.User, models.Course, []models.Video) {
	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{Title: "Go from Scratch", Description: "desc", Price: 500, Status: "PUBLISHED"}
	require.NoError(t, db.Create(&course).Error)

	videos := []models.Video{
		{CourseID: course.ID, Title: "Intro", URL: "https://cdn/v1", DurationSec: 300, OrderIndex: 1},
		{CourseID: course.ID, Title: "Setup", URL: "https://cdn/v2", DurationSec: 600, OrderIndex: 2},
	}
	require.NoError(t, db.Create(&videos).Error)

	require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)
	require.NoError(t, db.Create(&models.CourseProgress{UserID: user.ID, CourseID: course.ID}).Error)

	return user, course, videos
}

func request(t *testing.T, app *fiber.App, method, path string, user models.User) (int, apiResponse) {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestMarkVideoCompleteAddsOnce(t *testing.T) {
	app, db := setupCourseTest(t)
	user, course, videos := seedEnrolledCourse(t, db)

	path := fmt.Sprintf("/course/%d/video/%d/complete", course.ID, videos[0].ID)

	code, resp := request(t, app, "POST", path, user)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	// Marking the same video again does not duplicate the record
	code, resp = request(t, app, "POST", path, user)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)
	assert.Equal(t, "Video already marked complete!", resp.Message)

	var progress models.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&progress).Error)
	assert.Equal(t, int64(1), db.Model(&progress).Association("CompletedVideos").Count())
}

func TestMarkVideoCompleteRequiresEnrollment(t *testing.T) {
	app, db := setupCourseTest(t)
	_, course, videos := seedEnrolledCourse(t, db)

	stranger := models.User{Name: "Ravi", Email: "ravi@example.com", Password: "x"}
	require.NoError(t, db.Create(&stranger).Error)

	path := fmt.Sprintf("/course/%d/video/%d/complete", course.ID, videos[0].ID)

	code, resp := request(t, app, "POST", path, stranger)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.False(t, resp.Status)
}

func TestGetCourseProgressPercentage(t *testing.T) {
	app, db := setupCourseTest(t)
	user, course, videos := seedEnrolledCourse(t, db)

	var progress models.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&progress).Error)
	require.NoError(t, db.Model(&progress).Association("CompletedVideos").Append(&videos[0]))

	code, resp := request(t, app, "GET", fmt.Sprintf("/course/%d/progress", course.ID), user)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	var data struct {
		TotalVideos int64   `json:"total_videos"`
		Percentage  float64 `json:"percentage"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(2), data.TotalVideos)
	assert.Equal(t, 50.0, data.Percentage)
}

func TestGetCourseDetailsShowsEnrollmentFlag(t *testing.T) {
	app, db := setupCourseTest(t)
	user, course, _ := seedEnrolledCourse(t, db)

	code, resp := request(t, app, "GET", fmt.Sprintf("/course/%d", course.ID), user)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	var data struct {
		IsEnrolled bool `json:"is_enrolled"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.IsEnrolled)

	stranger := models.User{Name: "Ravi", Email: "ravi@example.com", Password: "x"}
	require.NoError(t, db.Create(&stranger).Error)

	_, resp = request(t, app, "GET", fmt.Sprintf("/course/%d", course.ID), stranger)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.IsEnrolled)
}

func TestGetAllCoursesOnlyPublished(t *testing.T) {
	app, db := setupCourseTest(t)
	user, _, _ := seedEnrolledCourse(t, db)

	draft := models.Course{Title: "Hidden Draft", Description: "wip", Price: 100, Status: "DRAFT"}
	require.NoError(t, db.Create(&draft).Error)

	code, resp := request(t, app, "GET", "/course/list", user)
	assert.Equal(t, fiber.StatusOK, code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(resp.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Go from Scratch", courses[0].Title)
}
