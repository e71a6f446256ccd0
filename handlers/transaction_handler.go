package handlers

import (
	"errors"

	"github.com/anqnd2510/tray-homework/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service *services.TransactionService
}

func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) GetAllTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to retrieve transactions"})
	}
	return c.JSON(fiber.Map{"success": true, "transactions": transactions})
}

func (h *TransactionHandler) GetTransactionByID(c *fiber.Ctx) error {
	transactionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid transaction ID"})
	}

	transaction, err := h.service.ByID(transactionID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Transaction not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to retrieve transaction"})
	}
	return c.JSON(fiber.Map{"success": true, "transaction": transaction})
}

func (h *TransactionHandler) GetTransactionsByUserID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid user ID"})
	}

	transactions, err := h.service.ByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve user transactions"})
	}
	return c.JSON(fiber.Map{"success": true, "transactions": transactions})
}
