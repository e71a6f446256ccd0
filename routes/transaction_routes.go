package routes

import (
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/gofiber/fiber/v2"
)

func TransactionRoutes(app *fiber.App, h *handlers.TransactionHandler) {
	api := app.Group("/api/v1")

	transactions := api.Group("/transactions", middleware.Protected(), middleware.AdminRequired())
	transactions.Get("", h.GetAllTransactions)
	transactions.Get("/detail/:id", h.GetTransactionByID)
	transactions.Get("/user-transactions/:userId", h.GetTransactionsByUserID)
}
