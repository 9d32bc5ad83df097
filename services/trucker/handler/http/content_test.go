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

	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/services/trucker/mocks"
)

func TestListHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetTruckHistory(gomock.Any(), int64(7)).
		Return([]bson.M{
			{"_id": primitive.NewObjectID(), "title": "КамАЗ-5320"},
		}, nil)

	handler := NewContentHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/history?limit=7", "")

	require.NoError(t, handler.ListHistory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], "id")
}

func TestListNewsPlaceholderIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetNews(gomock.Any(), int64(10)).
		Return([]bson.M{
			{"_id": "seed1", "title": "Новые правила режима труда и отдыха"},
			{"_id": "seed2", "title": "Открыт новый участок трассы М12"},
		}, nil)

	handler := NewContentHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/news", "")

	require.NoError(t, handler.ListNews(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "seed1", docs[0]["id"])
	assert.Equal(t, "seed2", docs[1]["id"])
}

func TestListGuideStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTruckerUC(ctrl)
	mockUC.EXPECT().
		GetGuide(gomock.Any()).
		Return(nil, database.ErrStoreUnavailable)

	handler := NewContentHandler(mockUC)
	c, rec := newJSONContext(http.MethodGet, "/api/guide", "")

	require.NoError(t, handler.ListGuide(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database not configured")
}
