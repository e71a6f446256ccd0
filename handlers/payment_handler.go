package handlers

import (
	"errors"
	"log"

	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/anqnd2510/tray-homework/payments"
	"github.com/anqnd2510/tray-homework/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type InitiatePaymentRequest struct {
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Package string `json:"package" validate:"required"`
}

// InitiatePayment starts a gateway payment for the authenticated user and
// returns the gateway's response (pay URL, QR code) to the caller.
func (h *PaymentHandler) InitiatePayment(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.service.InitiatePayment(userID, req.Amount, req.Package)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPackage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
		case errors.Is(err, payments.ErrGatewayUnavailable), errors.Is(err, payments.ErrGatewayRejected):
			log.Printf("🔥 Payment initiation failed for user %s: %v", userID, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Payment initiation failed"})
		default:
			log.Printf("🔥 Payment initiation failed for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Payment initiation failed"})
		}
	}

	return c.JSON(resp)
}

// HandlePaymentNotification receives the asynchronous MoMo IPN callback. The
// service verifies the signature before any state is touched; a replayed
// notification is acknowledged without effect.
func (h *PaymentHandler) HandlePaymentNotification(c *fiber.Ctx) error {
	var payload payments.Notification
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse notification payload"})
	}

	if err := h.service.HandleNotification(payload); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			// Logged with the order id so repeated verification failures are
			// visible: either tampering or an encoding drift on a real order.
			log.Printf("⚠️ Rejected notification with invalid signature for order %s (transId %d)", payload.OrderID, payload.TransID)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid signature"})
		case errors.Is(err, services.ErrPaymentMismatch):
			log.Printf("⚠️ Notification for order %s names payment %s it does not describe", payload.OrderID, payload.PaymentID)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Notification does not match payment"})
		case errors.Is(err, services.ErrDuplicateNotification):
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification already processed"})
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrPaymentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		default:
			log.Printf("🔥 CRITICAL: Error processing notification for order %s: %v", payload.OrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to process notification"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification received"})
}

type CreatePaymentRequest struct {
	Package string `json:"package" validate:"required"`
}

// CreatePayment is the synchronous purchase path: subscription, payment and
// ledger row are written in one transaction.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, expirationDate, err := h.service.CreatePayment(userID, req.Package)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPackage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid package type"})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
		default:
			log.Printf("🔥 Payment creation failed for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Payment creation failed"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Payment and transaction created successfully",
		"data": fiber.Map{
			"payment":         payment,
			"expiration_date": expirationDate,
		},
	})
}

// CheckPaymentStatus reports whether the authenticated user has a Paid payment.
func (h *PaymentHandler) CheckPaymentStatus(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	paid, err := h.service.CheckPaymentStatus(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check payment status"})
	}

	if paid {
		return c.JSON(fiber.Map{"success": true, "message": "Payment received"})
	}
	return c.JSON(fiber.Map{"success": false, "message": "Payment not received yet"})
}
