package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/services/trucker"
	"github.com/truckerru/backend/services/trucker/mocks"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpsertProfile(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		mockSetup      func(uc *mocks.MockTruckerUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"handle":"kamaz_master","name":"Сергей","experience_years":15}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					UpsertProfile(gomock.Any(), gomock.Any()).
					Return("abc123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"abc123"`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"handle":`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request payload",
		},
		{
			name:           "Missing handle",
			body:           `{"name":"Сергей"}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "handle is required",
		},
		{
			name:           "Experience out of range",
			body:           `{"handle":"kamaz_master","name":"Сергей","experience_years":99}`,
			mockSetup:      func(uc *mocks.MockTruckerUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "experience_years must be between 0 and 80",
		},
		{
			name: "Store unavailable",
			body: `{"handle":"kamaz_master","name":"Сергей"}`,
			mockSetup: func(uc *mocks.MockTruckerUC) {
				uc.EXPECT().
					UpsertProfile(gomock.Any(), gomock.Any()).
					Return("", database.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "Database not configured",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTruckerUC(ctrl)
			tc.mockSetup(mockUC)
			handler := NewProfileHandler(mockUC)

			c, rec := newJSONContext(http.MethodPost, "/api/profile", tc.body)
			require.NoError(t, handler.UpsertProfile(c))
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedBody)
		})
	}
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oid := primitive.NewObjectID()
	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetProfile(gomock.Any(), "kamaz_master").
		Return(bson.M{"_id": oid, "handle": "kamaz_master", "name": "Сергей"}, nil)

	handler := NewProfileHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/profile/kamaz_master", "")
	c.SetParamNames("handle")
	c.SetParamValues("kamaz_master")

	require.NoError(t, handler.GetProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, oid.Hex(), doc["id"])
	assert.NotContains(t, doc, "_id")
}

func TestGetProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetProfile(gomock.Any(), "ghost").
		Return(nil, trucker.ErrProfileNotFound)

	handler := NewProfileHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/profile/ghost", "")
	c.SetParamNames("handle")
	c.SetParamValues("ghost")

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile not found")
}
