package handlers

import (
	"time"

	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SlotRequest struct {
	ClassID   string    `json:"class_id" validate:"required,uuid4"`
	SlotName  string    `json:"slot_name" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof='Not started' 'Ongoing' 'Completed'"`
}

func CreateSlot(c *fiber.Ctx) error {
	var req SlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	classID, _ := uuid.Parse(req.ClassID)
	var class models.Class
	if err := database.DB.First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	status := req.Status
	if status == "" {
		status = models.SlotStatusNotStarted
	}

	slot := models.Slot{
		ClassID:   classID,
		SlotName:  req.SlotName,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create slot"})
	}

	return c.Status(fiber.StatusCreated).JSON(slot)
}

func ListSlots(c *fiber.Ctx) error {
	var slots []models.Slot
	query := database.DB
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if err := query.Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve slots"})
	}
	return c.JSON(slots)
}

func GetSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")
	var slot models.Slot
	if err := database.DB.Preload("Questions.Choices").First(&slot, "id = ?", slotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
	}
	return c.JSON(slot)
}

func UpdateSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")
	var slot models.Slot
	if err := database.DB.First(&slot, "id = ?", slotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
	}

	var req SlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slot.SlotName = req.SlotName
	slot.Date = req.Date
	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime
	if req.Status != "" {
		slot.Status = req.Status
	}
	if err := database.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update slot"})
	}
	return c.JSON(slot)
}

func DeleteSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")
	result := database.DB.Delete(&models.Slot{}, "id = ?", slotID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete slot"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
