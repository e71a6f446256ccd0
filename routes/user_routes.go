package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	users := api.Group("/users", middleware.Protected(), middleware.AdminRequired())
	users.Get("", handlers.ListUsers)
	users.Get("/:userId", handlers.GetUser)
	users.Patch("/:userId/deactivate", handlers.DeactivateUser)
}
