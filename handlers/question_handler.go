package handlers

import (
	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/anqnd2510/tray-homework/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChoiceRequest struct {
	ChoiceText string `json:"choice_text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionRequest struct {
	SlotID       string          `json:"slot_id" validate:"required,uuid4"`
	QuestionText string          `json:"question_text" validate:"required"`
	Choices      []ChoiceRequest `json:"choices" validate:"required,min=2,dive"`
}

func CreateQuestion(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slotID, _ := uuid.Parse(req.SlotID)
	var slot models.Slot
	if err := database.DB.First(&slot, "id = ?", slotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
	}

	choices := make([]models.Choice, 0, len(req.Choices))
	for _, choice := range req.Choices {
		choices = append(choices, models.Choice{
			ChoiceText: choice.ChoiceText,
			IsCorrect:  choice.IsCorrect,
		})
	}

	question := models.Question{
		UserID:       userID,
		SlotID:       slotID,
		QuestionText: req.QuestionText,
		Choices:      choices,
	}
	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func ListQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	query := database.DB.Preload("Choices")
	if slotID := c.Query("slot_id"); slotID != "" {
		query = query.Where("slot_id = ?", slotID)
	}
	if err := query.Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve questions"})
	}
	return c.JSON(questions)
}

func GetQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.Preload("Choices").First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.JSON(question)
}

type UpdateQuestionRequest struct {
	QuestionText string          `json:"question_text" validate:"required"`
	Choices      []ChoiceRequest `json:"choices" validate:"required,min=2,dive"`
}

// UpdateQuestion replaces the question text and its whole choice set. Stored
// answer correctness is frozen at submission time, so this never rewrites
// already-graded submissions.
func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.Preload("Choices").First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var req UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newChoices := make([]models.Choice, 0, len(req.Choices))
	for _, choice := range req.Choices {
		newChoices = append(newChoices, models.Choice{
			QuestionID: question.ID,
			ChoiceText: choice.ChoiceText,
			IsCorrect:  choice.IsCorrect,
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		question.QuestionText = req.QuestionText
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&newChoices).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	question.Choices = newChoices
	return c.JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Question{}, "id = ?", questionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
