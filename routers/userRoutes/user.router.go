package userRoutes

import (
	controllers "elearn/controllers/userControllers"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, controllers.UpdateProfile)
	userGroup.Post("/profile/image", middleware.JWTMiddleware, controllers.UploadProfileImage)
}
