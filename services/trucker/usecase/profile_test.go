package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
	"github.com/truckerru/backend/services/trucker/mocks"
)

func setupUsecaseTest(t *testing.T) (*TruckerUC, *mocks.MockTruckerRepo, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTruckerRepo(ctrl)
	uc := NewTruckerUC(&models.Config{}, mockRepo)
	return uc, mockRepo, ctrl.Finish
}

func TestUpsertProfileCreatesNewRecord(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	req := &models.ProfileRequest{
		Handle:          "kamaz_master",
		Name:            "Сергей Иванов",
		Region:          "Татарстан",
		ExperienceYears: 15,
	}

	mockRepo.EXPECT().
		GetProfileByHandle(gomock.Any(), "kamaz_master").
		Return(nil, trucker.ErrProfileNotFound)
	mockRepo.EXPECT().
		InsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.TruckerUser) (string, error) {
			assert.Equal(t, "kamaz_master", user.Handle)
			assert.Equal(t, "Сергей Иванов", user.Name)
			assert.Equal(t, 15, user.ExperienceYears)
			assert.False(t, user.IsAdmin)
			assert.False(t, user.CreatedAt.IsZero())
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
			return "new-id", nil
		})

	id, err := uc.UpsertProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
}

func TestUpsertProfileUpdatesExistingRecord(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	oid := primitive.NewObjectID()
	existing := bson.M{"_id": oid, "handle": "kamaz_master", "name": "Старое Имя"}

	req := &models.ProfileRequest{
		Handle:          "kamaz_master",
		Name:            "Новое Имя",
		ExperienceYears: 20,
	}

	mockRepo.EXPECT().
		GetProfileByHandle(gomock.Any(), "kamaz_master").
		Return(existing, nil)
	mockRepo.EXPECT().
		UpdateProfile(gomock.Any(), oid, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, fields bson.M) error {
			assert.Equal(t, "Новое Имя", fields["name"])
			assert.Equal(t, 20, fields["experience_years"])
			assert.Contains(t, fields, "updated_at")
			// created_at must never be rewritten on update
			assert.NotContains(t, fields, "created_at")
			return nil
		})

	id, err := uc.UpsertProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
}

func TestUpsertProfileStoreUnavailable(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	mockRepo.EXPECT().
		GetProfileByHandle(gomock.Any(), "kamaz_master").
		Return(nil, database.ErrStoreUnavailable)

	_, err := uc.UpsertProfile(context.Background(), &models.ProfileRequest{Handle: "kamaz_master", Name: "x"})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}

func TestGetProfile(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	doc := bson.M{"_id": primitive.NewObjectID(), "handle": "kamaz_master"}
	mockRepo.EXPECT().
		GetProfileByHandle(gomock.Any(), "kamaz_master").
		Return(doc, nil)

	out, err := uc.GetProfile(context.Background(), "kamaz_master")
	require.NoError(t, err)
	assert.Equal(t, doc, out)
}

func TestGetProfileNotFound(t *testing.T) {
	uc, mockRepo, cleanup := setupUsecaseTest(t)
	defer cleanup()

	mockRepo.EXPECT().
		GetProfileByHandle(gomock.Any(), "ghost").
		Return(nil, trucker.ErrProfileNotFound)

	_, err := uc.GetProfile(context.Background(), "ghost")
	assert.True(t, errors.Is(err, trucker.ErrProfileNotFound))
}
