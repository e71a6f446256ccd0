package handlers

import (
	"errors"

	"github.com/anqnd2510/tray-homework/middleware"
	"github.com/anqnd2510/tray-homework/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AnswerHandler struct {
	service *services.ScoreService
}

func NewAnswerHandler(service *services.ScoreService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

type SubmitAnswersRequest struct {
	SlotID  string `json:"slot_id" validate:"required,uuid4"`
	Answers []struct {
		QuestionID     string `json:"question_id" validate:"required,uuid4"`
		SelectedChoice string `json:"selected_choice" validate:"required"`
	} `json:"answers" validate:"required,min=1,dive"`
}

// SubmitAnswers grades and stores the authenticated user's answer sheet for a
// slot. Validation failures reject the whole batch; nothing partial is saved.
func (h *AnswerHandler) SubmitAnswers(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid slot ID"})
	}

	answers := make([]services.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		questionID, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid question ID"})
		}
		answers = append(answers, services.SubmittedAnswer{
			QuestionID:     questionID,
			SelectedChoice: a.SelectedChoice,
		})
	}

	if _, err := h.service.SubmitAnswers(userID, slotID, answers); err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrChoiceNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrDuplicateSubmission):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save answers"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User answers saved successfully",
	})
}

// GetUserScoreForSlot returns the stored score breakdown for a (user, slot)
// pair. Students can only read their own.
func (h *AnswerHandler) GetUserScoreForSlot(c *fiber.Ctx) error {
	viewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid user ID"})
	}
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid slot ID"})
	}

	score, err := h.service.ScoreForSlot(viewerID, middleware.CurrentUserRole(c), userID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You may only view your own score"})
		case errors.Is(err, services.ErrSubmissionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute score"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    score,
	})
}
