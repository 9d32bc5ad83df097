package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
	"github.com/truckerru/backend/services/trucker/mocks"
)

func TestListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetQuizQuestions(gomock.Any(), int64(5)).
		Return([]bson.M{
			{"_id": primitive.NewObjectID(), "question": "q1"},
			{"_id": primitive.NewObjectID(), "question": "q2"},
		}, nil)

	handler := NewQuizHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/quiz/questions?limit=5", "")

	require.NoError(t, handler.ListQuestions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Contains(t, doc, "id")
		assert.NotContains(t, doc, "_id")
	}
}

func TestGradeAnswer(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		mockSetup      func(uc *mocks.MockTruckerUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Correct answer",
			body: `{"question_id":"abc","answer_index":1}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					GradeAnswer(gomock.Any(), gomock.Any()).
					Return(&models.AnswerResult{Correct: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"correct":true`,
		},
		{
			name: "Incorrect answer",
			body: `{"question_id":"abc","answer_index":2}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					GradeAnswer(gomock.Any(), gomock.Any()).
					Return(&models.AnswerResult{Correct: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"correct":false`,
		},
		{
			name: "Question not found",
			body: `{"question_id":"missing","answer_index":0}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					GradeAnswer(gomock.Any(), gomock.Any()).
					Return(nil, trucker.ErrQuestionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Question not found",
		},
		{
			name:           "Missing question id",
			body:           `{"answer_index":0}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "question_id is required",
		},
		{
			name:           "Answer index out of range",
			body:           `{"question_id":"abc","answer_index":7}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "answer_index must be between 0 and 3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTruckerUC(ctrl)
			tc.mockSetup(mockUC)
			handler := NewQuizHandler(mockUC)

			c, rec := newJSONContext(http.MethodPost, "/api/quiz/answer", tc.body)
			require.NoError(t, handler.GradeAnswer(c))
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedBody)
		})
	}
}
