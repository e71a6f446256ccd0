package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClassRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	classes := api.Group("/classes", middleware.Protected())
	classes.Get("", handlers.ListClasses)
	classes.Get("/:classId", handlers.GetClass)
	classes.Post("", middleware.TeacherRequired(), handlers.CreateClass)
	classes.Put("/:classId", middleware.TeacherRequired(), handlers.UpdateClass)
	classes.Delete("/:classId", middleware.AdminRequired(), handlers.DeleteClass)
}
