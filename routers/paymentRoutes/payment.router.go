package paymentRoutes

import (
	controllers "elearn/controllers/payment"
	"elearn/middleware"
	validators "elearn/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up order capture and verification routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/capture", middleware.JWTMiddleware, validators.CapturePayment(), controllers.CapturePayment)
	paymentGroup.Post("/verify", middleware.JWTMiddleware, validators.VerifyPayment(), controllers.VerifyPayment)
	paymentGroup.Post("/success-email", middleware.JWTMiddleware, validators.SendSuccessEmail(), controllers.SendPaymentSuccessEmail)
}
