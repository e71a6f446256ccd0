package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func FeedbackRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	feedbacks := api.Group("/feedbacks", middleware.Protected())
	feedbacks.Post("", handlers.CreateFeedback)
	feedbacks.Get("/class/:classId", handlers.ListFeedbackForClass)
}
