package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	api := app.Group("/api/v1")

	// IPN callback is authenticated by its HMAC signature, not by a JWT.
	api.Post("/payments/notify", h.HandlePaymentNotification)

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("/initiate", h.InitiatePayment)
	payments.Post("/create-payment", h.CreatePayment)
	payments.Post("/check-payment-status", h.CheckPaymentStatus)
}
