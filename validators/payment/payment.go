package paymentValidator

import (
	"elearn/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CaptureRequest carries the course ids an order should cover.
type CaptureRequest struct {
	Courses []uint `json:"courses" validate:"required,min=1,dive,gt=0"`
}

// VerifyRequest is the payment callback posted by the client after checkout.
// Field names follow the gateway's callback payload.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	Courses           []uint `json:"courses" validate:"required,min=1,dive,gt=0"`
}

// SuccessEmailRequest asks for a payment receipt email.
type SuccessEmailRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"` // minor currency units
}

// CapturePayment validates the order-creation request
func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CaptureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Please provide course IDs!", nil)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}

// VerifyPayment validates the payment callback. A missing field is a
// verification failure, not a validation error, so the decline shape matches
// a signature mismatch.
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment Failed", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment Failed", nil)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// SendSuccessEmail validates the payment receipt email request
func SendSuccessEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SuccessEmailRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all the details!", nil)
		}

		c.Locals("validatedSuccessEmail", reqData)
		return c.Next()
	}
}
