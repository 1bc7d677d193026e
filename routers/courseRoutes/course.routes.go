package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, instructor and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Instructor course management
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Post("/:id/thumbnail", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.CourseID(), controllers.UploadCourseThumbnail)
	courseGroup.Post("/:id/video", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.AddVideo(), controllers.AddVideo)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.CourseID(), controllers.PublishCourse)

	// Progress tracking
	courseGroup.Post("/:course_id/video/:video_id/complete", middleware.JWTMiddleware, validators.MarkVideoComplete(), controllers.MarkVideoComplete)
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseProgressParam(), controllers.GetCourseProgress)
}
