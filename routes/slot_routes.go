package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func SlotRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	slots := api.Group("/slots", middleware.Protected())
	slots.Get("", handlers.ListSlots)
	slots.Get("/:slotId", handlers.GetSlot)
	slots.Post("", middleware.TeacherRequired(), handlers.CreateSlot)
	slots.Put("/:slotId", middleware.TeacherRequired(), handlers.UpdateSlot)
	slots.Delete("/:slotId", middleware.TeacherRequired(), handlers.DeleteSlot)
}
