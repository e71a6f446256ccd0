package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuestionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	questions := api.Group("/questions", middleware.Protected())
	questions.Get("", handlers.ListQuestions)
	questions.Get("/:questionId", handlers.GetQuestion)
	questions.Post("", middleware.TeacherRequired(), handlers.CreateQuestion)
	questions.Put("/:questionId", middleware.TeacherRequired(), handlers.UpdateQuestion)
	questions.Delete("/:questionId", middleware.TeacherRequired(), handlers.DeleteQuestion)
}
