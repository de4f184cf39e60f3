package service

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/testing/mocks"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type foodLogFixture struct {
	logs    *mocks.MockFoodLogRepository
	photos  *mocks.MockFoodPhotoRepository
	foods   *mocks.MockFoodRepository
	storage *mocks.MockFileStorage
	svc     FoodLogService
}

func newFoodLogFixture() *foodLogFixture {
	f := &foodLogFixture{
		logs:    &mocks.MockFoodLogRepository{},
		photos:  &mocks.MockFoodPhotoRepository{},
		foods:   &mocks.MockFoodRepository{},
		storage: &mocks.MockFileStorage{},
	}
	f.svc = NewFoodLogService(f.logs, f.photos, f.foods, f.storage)
	return f
}

func TestLogFood_FromCatalog(t *testing.T) {
	f := newFoodLogFixture()
	userID := primitive.NewObjectID()
	foodID := primitive.NewObjectID()
	f.foods.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.Food, error) {
		return &domain.Food{
			ID:      foodID,
			OwnerID: userID,
			Name:    "Rolled oats",
			Per100g: scoring.Macros{Calories: 350, Protein: 10, Carbs: 60, Fat: 5},
		}, nil
	}
	eatenAt := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))

	entry, err := f.svc.LogFood(context.Background(), userID, FoodLogInput{
		EatenAt:  eatenAt,
		MealType: scoring.MealBreakfast,
		FoodID:   &foodID,
		Grams:    200,
		Macros:   scoring.Macros{Calories: 1}, // ignored for catalog foods
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-02", entry.Date, "the day key is the UTC day")
	assert.Equal(t, "Rolled oats", entry.Name)
	assert.Equal(t, scoring.Macros{Calories: 700, Protein: 20, Carbs: 120, Fat: 10}, entry.Macros)
	assert.False(t, entry.ID.IsZero())
}

func TestLogFood_Validation(t *testing.T) {
	f := newFoodLogFixture()
	userID := primitive.NewObjectID()
	now := time.Now()

	_, err := f.svc.LogFood(context.Background(), userID, FoodLogInput{MealType: scoring.MealLunch})
	assert.ErrorIs(t, err, ErrInvalidFoodLog)

	_, err = f.svc.LogFood(context.Background(), userID, FoodLogInput{EatenAt: now, MealType: "brunch"})
	assert.ErrorIs(t, err, ErrInvalidFoodLog)

	_, err = f.svc.LogFood(context.Background(), userID, FoodLogInput{EatenAt: now, MealType: scoring.MealLunch, Macros: scoring.Macros{Carbs: -1}})
	assert.ErrorIs(t, err, ErrInvalidFoodLog)

	foodID := primitive.NewObjectID()
	f.foods.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.Food, error) {
		return &domain.Food{ID: foodID, OwnerID: primitive.NewObjectID()}, nil
	}
	_, err = f.svc.LogFood(context.Background(), userID, FoodLogInput{EatenAt: now, MealType: scoring.MealLunch, FoodID: &foodID, Grams: 50})
	assert.ErrorIs(t, err, ErrFoodAccessDenied)
}

func TestPhotoUploadFlow(t *testing.T) {
	f := newFoodLogFixture()
	userID := primitive.NewObjectID()
	logID := primitive.NewObjectID()
	entry := &domain.FoodLog{ID: logID, UserID: userID}
	f.logs.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.FoodLog, error) {
		c := *entry
		return &c, nil
	}
	var linked primitive.ObjectID
	f.logs.SetPhotoFunc = func(_ context.Context, _, photoID primitive.ObjectID) error {
		linked = photoID
		return nil
	}

	_, err := f.svc.RequestPhotoUpload(context.Background(), userID, logID, "video/mp4")
	assert.ErrorIs(t, err, ErrInvalidPhotoType)

	_, err = f.svc.RequestPhotoUpload(context.Background(), primitive.NewObjectID(), logID, "image/jpeg")
	assert.ErrorIs(t, err, ErrFoodLogAccessDenied)

	resp, err := f.svc.RequestPhotoUpload(context.Background(), userID, logID, "image/jpeg")
	require.NoError(t, err)
	prefix := "photos/" + userID.Hex() + "/" + logID.Hex() + "/"
	assert.True(t, strings.HasPrefix(resp.ObjectKey, prefix), resp.ObjectKey)
	assert.True(t, strings.HasSuffix(resp.ObjectKey, ".jpeg"), resp.ObjectKey)
	assert.Contains(t, resp.UploadURL, resp.ObjectKey)

	_, err = f.svc.ConfirmPhoto(context.Background(), userID, logID, "photos/other/key.jpeg", "a.jpg", 10, "image/jpeg")
	assert.ErrorIs(t, err, ErrPhotoKeyMismatch)

	updated, err := f.svc.ConfirmPhoto(context.Background(), userID, logID, resp.ObjectKey, "a.jpg", 1024, "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoID)
	assert.Equal(t, linked, *updated.PhotoID)
}

func TestDeleteLog_RemovesPhoto(t *testing.T) {
	f := newFoodLogFixture()
	userID := primitive.NewObjectID()
	logID := primitive.NewObjectID()
	photoID := primitive.NewObjectID()
	f.logs.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.FoodLog, error) {
		return &domain.FoodLog{ID: logID, UserID: userID, PhotoID: &photoID}, nil
	}
	f.photos.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.FoodPhoto, error) {
		return &domain.FoodPhoto{ID: photoID, ObjectKey: "photos/u/l/p.jpeg"}, nil
	}
	var deletedKey string
	var deletedPhoto primitive.ObjectID
	f.storage.DeleteObjectFunc = func(_ context.Context, key string) error {
		deletedKey = key
		return nil
	}
	f.photos.DeleteFunc = func(_ context.Context, id primitive.ObjectID) error {
		deletedPhoto = id
		return nil
	}

	require.NoError(t, f.svc.DeleteLog(context.Background(), userID, logID))
	assert.Equal(t, "photos/u/l/p.jpeg", deletedKey)
	assert.Equal(t, photoID, deletedPhoto)

	err := f.svc.DeleteLog(context.Background(), primitive.NewObjectID(), logID)
	assert.ErrorIs(t, err, ErrFoodLogAccessDenied)
}

func TestGetPhotoURL_NoPhoto(t *testing.T) {
	f := newFoodLogFixture()
	userID := primitive.NewObjectID()
	f.logs.GetByIDFunc = func(context.Context, primitive.ObjectID) (*domain.FoodLog, error) {
		return &domain.FoodLog{UserID: userID}, nil
	}

	_, err := f.svc.GetPhotoURL(context.Background(), userID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrPhotoMissing)
}
