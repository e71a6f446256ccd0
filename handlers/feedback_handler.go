package handlers

import (
	"time"

	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/anqnd2510/tray-homework/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeedbackRequest struct {
	ClassID     string     `json:"class_id" validate:"required,uuid4"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	LoveTeacher int        `json:"love_teacher" validate:"required,min=1,max=5"`
	LoveClass   int        `json:"love_class" validate:"required,min=1,max=5"`
}

func CreateFeedback(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req FeedbackRequest
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

	feedback := models.Feedback{
		UserID:      userID,
		ClassID:     classID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		LoveTeacher: req.LoveTeacher,
		LoveClass:   req.LoveClass,
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create feedback"})
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func ListFeedbackForClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	var feedbacks []models.Feedback
	if err := database.DB.Where("class_id = ?", classID).Find(&feedbacks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve feedback"})
	}
	return c.JSON(feedbacks)
}
