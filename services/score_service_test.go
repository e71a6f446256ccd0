package services

import (
	"testing"

	"github.com/anqnd2510/tray-homework/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionWithChoices(text string, choices ...models.Choice) models.Question {
	q := models.Question{
		ID:           uuid.New(),
		QuestionText: text,
		Choices:      choices,
	}
	for i := range q.Choices {
		q.Choices[i].QuestionID = q.ID
	}
	return q
}

func TestGradeSubmission(t *testing.T) {
	mars := questionWithChoices("Which planet is red?",
		models.Choice{ChoiceText: "Mars", IsCorrect: true},
		models.Choice{ChoiceText: "Venus"},
	)
	two := questionWithChoices("What is 1+1?",
		models.Choice{ChoiceText: "2", IsCorrect: true},
		models.Choice{ChoiceText: "3"},
	)
	questions := map[uuid.UUID]models.Question{
		mars.ID: mars,
		two.ID:  two,
	}

	items, err := gradeSubmission(questions, []SubmittedAnswer{
		{QuestionID: mars.ID, SelectedChoice: "Mars"},
		{QuestionID: two.ID, SelectedChoice: "3"},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, mars.ID, items[0].QuestionID)
	assert.True(t, items[0].IsCorrect)
	assert.Equal(t, "3", items[1].SelectedChoice)
	assert.False(t, items[1].IsCorrect)
}

func TestGradeSubmissionUnknownQuestionRejectsBatch(t *testing.T) {
	mars := questionWithChoices("Which planet is red?",
		models.Choice{ChoiceText: "Mars", IsCorrect: true},
	)
	questions := map[uuid.UUID]models.Question{mars.ID: mars}

	items, err := gradeSubmission(questions, []SubmittedAnswer{
		{QuestionID: mars.ID, SelectedChoice: "Mars"},
		{QuestionID: uuid.New(), SelectedChoice: "Mars"},
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	assert.Nil(t, items, "a single missing question must reject the whole batch")
}

func TestGradeSubmissionUnknownChoiceRejectsBatch(t *testing.T) {
	mars := questionWithChoices("Which planet is red?",
		models.Choice{ChoiceText: "Mars", IsCorrect: true},
		models.Choice{ChoiceText: "Venus"},
	)
	questions := map[uuid.UUID]models.Question{mars.ID: mars}

	items, err := gradeSubmission(questions, []SubmittedAnswer{
		{QuestionID: mars.ID, SelectedChoice: "Jupiter"},
	})
	assert.ErrorIs(t, err, ErrChoiceNotFound)
	assert.Nil(t, items)
}

func TestGradeSubmissionChoiceMatchIsCaseSensitive(t *testing.T) {
	mars := questionWithChoices("Which planet is red?",
		models.Choice{ChoiceText: "Mars", IsCorrect: true},
	)
	questions := map[uuid.UUID]models.Question{mars.ID: mars}

	_, err := gradeSubmission(questions, []SubmittedAnswer{
		{QuestionID: mars.ID, SelectedChoice: "mars"},
	})
	assert.ErrorIs(t, err, ErrChoiceNotFound)
}

func TestGradeSubmissionFreezesChoiceFlag(t *testing.T) {
	// Two choices marked correct: the engine records the flag of whichever
	// choice was selected, it does not enforce exactly-one-correct.
	q := questionWithChoices("Pick any",
		models.Choice{ChoiceText: "A", IsCorrect: true},
		models.Choice{ChoiceText: "B", IsCorrect: true},
		models.Choice{ChoiceText: "C"},
	)
	questions := map[uuid.UUID]models.Question{q.ID: q}

	items, err := gradeSubmission(questions, []SubmittedAnswer{
		{QuestionID: q.ID, SelectedChoice: "B"},
	})
	require.NoError(t, err)
	assert.True(t, items[0].IsCorrect)
}

func TestScoreForSlotForbidsReadingOthers(t *testing.T) {
	svc := NewScoreService(nil)

	viewer := uuid.New()
	other := uuid.New()

	_, err := svc.ScoreForSlot(viewer, models.RoleStudent, other, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}
