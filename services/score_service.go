package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/anqnd2510/tray-homework/models"
	"github.com/anqnd2510/tray-homework/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreService validates and grades answer submissions and serves score
// queries over the frozen results.
type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

type SubmittedAnswer struct {
	QuestionID     uuid.UUID
	SelectedChoice string
}

type SlotScore struct {
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	WrongAnswers   int     `json:"wrong_answers"`
	Score          float64 `json:"score"`
}

// gradeSubmission checks every submitted answer against the question set and
// freezes per-answer correctness. Choice matching is exact and case-sensitive
// on the choice text. Any single failure rejects the whole batch.
func gradeSubmission(questions map[uuid.UUID]models.Question, answers []SubmittedAnswer) ([]models.AnswerItem, error) {
	items := make([]models.AnswerItem, 0, len(answers))
	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, answer.QuestionID)
		}

		var selected *models.Choice
		for i := range question.Choices {
			if question.Choices[i].ChoiceText == answer.SelectedChoice {
				selected = &question.Choices[i]
				break
			}
		}
		if selected == nil {
			return nil, fmt.Errorf("%w: %q is not a choice of question %s", ErrChoiceNotFound, answer.SelectedChoice, question.ID)
		}

		items = append(items, models.AnswerItem{
			QuestionID:     question.ID,
			SelectedChoice: answer.SelectedChoice,
			IsCorrect:      selected.IsCorrect,
		})
	}
	return items, nil
}

// SubmitAnswers grades the whole batch before anything is persisted and then
// saves one Answer row holding the full list. A second submission for the same
// (user, slot) pair is a conflict, enforced by the unique index.
func (s *ScoreService) SubmitAnswers(userID, slotID uuid.UUID, answers []SubmittedAnswer) (*models.Answer, error) {
	ids := make([]uuid.UUID, 0, len(answers))
	for _, answer := range answers {
		ids = append(ids, answer.QuestionID)
	}

	var questionRows []models.Question
	if err := s.db.Preload("Choices").Where("id IN ?", ids).Find(&questionRows).Error; err != nil {
		return nil, err
	}
	questions := make(map[uuid.UUID]models.Question, len(questionRows))
	for _, q := range questionRows {
		questions[q.ID] = q
	}

	items, err := gradeSubmission(questions, answers)
	if err != nil {
		return nil, err
	}

	answer := models.Answer{
		UserID:      userID,
		SlotID:      slotID,
		SubmittedAt: time.Now(),
		Items:       items,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	return &answer, nil
}

// ScoreForSlot computes the score for a stored submission from its frozen
// is_correct flags; it never re-grades against the current question state.
// Students may only read their own score; teachers and admins may read any.
func (s *ScoreService) ScoreForSlot(viewerID uuid.UUID, viewerRole string, userID, slotID uuid.UUID) (*SlotScore, error) {
	if viewerRole == models.RoleStudent && viewerID != userID {
		return nil, ErrForbidden
	}

	var answer models.Answer
	err := s.db.Preload("Items").Where("user_id = ? AND slot_id = ?", userID, slotID).First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	correct := 0
	for _, item := range answer.Items {
		if item.IsCorrect {
			correct++
		}
	}
	total := len(answer.Items)

	return &SlotScore{
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   total - correct,
		Score:          utils.CalculateScore(correct, total),
	}, nil
}
