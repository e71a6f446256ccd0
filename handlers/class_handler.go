package handlers

import (
	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/anqnd2510/tray-homework/models"
	"github.com/gofiber/fiber/v2"
)

type ClassRequest struct {
	ClassName   string `json:"class_name" validate:"required"`
	Description string `json:"description"`
}

func CreateClass(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class := models.Class{
		ClassName:   req.ClassName,
		UserID:      userID,
		Description: req.Description,
	}
	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func ListClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve classes"})
	}
	return c.JSON(classes)
}

func GetClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	var class models.Class
	if err := database.DB.Preload("Slots").First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.JSON(class)
}

func UpdateClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	var class models.Class
	if err := database.DB.First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class.ClassName = req.ClassName
	class.Description = req.Description
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}
	return c.JSON(class)
}

func DeleteClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	result := database.DB.Delete(&models.Class{}, "id = ?", classID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
