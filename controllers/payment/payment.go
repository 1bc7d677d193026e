package paymentController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	paymentValidator "elearn/validators/payment"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// seam for tests
var createGatewayOrder = utils.CreateRazorpayOrder

var errCourseNotFound = errors.New("course not found")

// CapturePayment computes the total price across the requested courses and
// opens a payment order with the gateway.
func CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCapture").(*paymentValidator.CaptureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var totalAmount uint
	for _, courseID := range reqData.Courses {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "PUBLISHED").First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Could not find the course!", nil)
		}

		var enrollment models.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Student is already enrolled!", nil)
		}

		totalAmount += course.Price
	}

	// Prices are stored in rupees; the gateway expects paise.
	amount := int64(totalAmount) * 100
	receipt := utils.GenerateReceipt()

	order, err := createGatewayOrder(amount, "INR", receipt)
	if err != nil {
		log.Printf("[PAYMENT] Gateway order creation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order.", nil)
	}

	payment := models.Payment{
		UserID:          userID,
		OrderID:         order.ID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		Receipt:         receipt,
		Status:          models.PaymentStatusCreated,
		GatewayResponse: datatypes.JSON(order.Raw),
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("[PAYMENT] Failed to record payment for order %s: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order created!", order)
}

// VerifyPayment authenticates the gateway callback and enrolls the user in
// the purchased courses.
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment Failed", nil)
	}

	reqData, ok := c.Locals("validatedVerify").(*paymentValidator.VerifyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment Failed", nil)
	}

	db := database.Database.Db

	valid := utils.VerifyPaymentSignature(
		reqData.RazorpayOrderID,
		reqData.RazorpayPaymentID,
		reqData.RazorpaySignature,
		config.AppConfig.RazorpaySecret,
	)
	if !valid {
		db.Model(&models.Payment{}).
			Where("order_id = ? AND user_id = ?", reqData.RazorpayOrderID, userID).
			Updates(map[string]interface{}{
				"status":     models.PaymentStatusFailed,
				"payment_id": reqData.RazorpayPaymentID,
			})
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment Failed", nil)
	}

	db.Model(&models.Payment{}).
		Where("order_id = ? AND user_id = ?", reqData.RazorpayOrderID, userID).
		Updates(map[string]interface{}{
			"status":     models.PaymentStatusVerified,
			"payment_id": reqData.RazorpayPaymentID,
		})

	if err := enrollStudent(reqData.Courses, userID); err != nil {
		if errors.Is(err, errCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Course not found", nil)
		}
		log.Printf("[PAYMENT] Enrollment failed for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment Verified", nil)
}

// SendPaymentSuccessEmail queues the payment receipt email for the
// authenticated user.
func SendPaymentSuccessEmail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSuccessEmail").(*paymentValidator.SuccessEmailRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all the details!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not send email!", nil)
	}

	if err := utils.QueuePaymentSuccessEmail(user.Email, user.Name, reqData.Amount, reqData.OrderID, reqData.PaymentID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not send email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment receipt email queued!", nil)
}

// enrollStudent enrolls the user in each course in list order. A missing
// course aborts the remaining ids; courses already processed stay enrolled.
// A course the user already holds is skipped, so a replayed callback is a
// no-op. Roster append and progress creation commit in one transaction.
func enrollStudent(courses []uint, userID uint) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return fmt.Errorf("user %d not found: %v", userID, err)
	}

	for _, courseID := range courses {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return fmt.Errorf("%w: %d", errCourseNotFound, courseID)
		}

		var existing models.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
			continue
		}

		tx := db.Begin()

		enrollment := models.Enrollment{
			UserID:   userID,
			CourseID: courseID,
			Status:   "ENROLLED",
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			// A concurrent verification can win the insert between the check
			// above and this create. The unique index rejects the loser, so
			// treat a now-present row as already enrolled.
			var raced models.Enrollment
			if db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&raced).Error == nil {
				continue
			}
			return fmt.Errorf("failed to enroll user %d in course %d: %v", userID, courseID, err)
		}

		progress := models.CourseProgress{
			CourseID: courseID,
			UserID:   userID,
		}
		if err := tx.Create(&progress).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create progress record for course %d: %v", courseID, err)
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit enrollment for course %d: %v", courseID, err)
		}

		// Notification goes through the outbox after the commit, so a mail
		// failure cannot be mistaken for an enrollment failure.
		if err := utils.QueueEnrollmentEmail(user.Email, user.Name, course.Title); err != nil {
			log.Printf("[PAYMENT] Failed to queue enrollment email for %s: %v", user.Email, err)
		}
	}

	return nil
}
