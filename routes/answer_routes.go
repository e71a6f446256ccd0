package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func AnswerRoutes(app *fiber.App, h *handlers.AnswerHandler) {
	api := app.Group("/api/v1")

	answers := api.Group("/answers", middleware.Protected())
	answers.Post("", middleware.SubscriptionRequired(), h.SubmitAnswers)
	answers.Get("/score/:userId/:slotId", h.GetUserScoreForSlot)
}
