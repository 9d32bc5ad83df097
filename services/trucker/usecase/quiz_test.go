package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
)

func TestGradeAnswer(t *testing.T) {
	question := &models.QuizQuestion{
		Question:     "Какая федеральная трасса соединяет Москву и Санкт-Петербург?",
		Options:      []string{"М7", "М10/М11", "Р23", "А108"},
		CorrectIndex: 1,
	}

	testCases := []struct {
		name        string
		answerIndex int
		correct     bool
	}{
		{name: "Correct answer", answerIndex: 1, correct: true},
		{name: "Incorrect answer", answerIndex: 0, correct: false},
		{name: "Incorrect answer at other bound", answerIndex: 3, correct: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, cleanup := setupUsecaseTest(t)
			defer cleanup()

			mockRepo.EXPECT().
				GetQuestionByID(gomock.Any(), "q-id").
				Return(question, nil)

			result, err := uc.GradeAnswer(context.Background(), &models.AnswerRequest{
				QuestionID:  "q-id",
				AnswerIndex: tc.answerIndex,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.correct, result.Correct)
		})
	}
}

func TestGradeAnswerQuestionNotFound(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	mockRepo.EXPECT().
		GetQuestionByID(gomock.Any(), "missing").
		Return(nil, trucker.ErrQuestionNotFound)

	_, err := uc.GradeAnswer(context.Background(), &models.AnswerRequest{QuestionID: "missing", AnswerIndex: 0})
	assert.ErrorIs(t, err, trucker.ErrQuestionNotFound)
}
