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

	"github.com/truckerru/backend/services/trucker/mocks"
)

func TestAddCafe(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		mockSetup      func(uc *mocks.MockTruckerUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"title":"Кафе Дальнобойщик","location":"трасса М7, 212 км","rating":4.8}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					AddCafe(gomock.Any(), gomock.Any()).
					Return("cafe123", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"cafe123"`,
		},
		{
			name:           "Missing title",
			body:           `{"location":"трасса М7"}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "title is required",
		},
		{
			name:           "Rating out of range",
			body:           `{"title":"Кафе","location":"трасса М7","rating":7.5}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "rating must be between 0 and 5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTruckerUC(ctrl)
			tc.mockSetup(mockUC)
			handler := NewCafeHandler(mockUC)

			c, rec := newJSONContext(http.MethodPost, "/api/cafes", tc.body)
			require.NoError(t, handler.AddCafe(c))
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedBody)
		})
	}
}

func TestListCafes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		ListCafes(gomock.Any(), int64(30)).
		Return([]bson.M{
			{"_id": primitive.NewObjectID(), "title": "Кафе Дальнобойщик", "rating": 4.8},
		}, nil)

	handler := NewCafeHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/cafes", "")

	require.NoError(t, handler.ListCafes(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], "id")
	assert.NotContains(t, docs[0], "_id")
}
