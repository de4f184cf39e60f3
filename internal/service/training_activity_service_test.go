package service

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/testing/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecordActivity_DerivesZone(t *testing.T) {
	users := &mocks.MockUserRepository{
		GetByIDFunc: func(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id, MaxHeartRate: 190}, nil
		},
	}
	svc := NewTrainingActivityService(&mocks.MockTrainingActivityRepository{}, users)
	start := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)

	a, err := svc.RecordActivity(context.Background(), primitive.NewObjectID(), ActivityInput{
		StartTime:       start,
		DurationMinutes: 75,
		Type:            " Run ",
		AvgHeartRate:    150, // 79% of max
	})
	require.NoError(t, err)

	assert.Equal(t, 3, a.Intensity)
	assert.Equal(t, "run", a.Type)
	assert.Equal(t, "2024-05-01", a.Date)
	assert.Equal(t, domain.SourceManual, a.Source)
	assert.Equal(t, start.Add(75*time.Minute), a.End())
}

func TestRecordActivity_NoHeartRate(t *testing.T) {
	users := &mocks.MockUserRepository{
		GetByIDFunc: func(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	svc := NewTrainingActivityService(&mocks.MockTrainingActivityRepository{}, users)

	a, err := svc.RecordActivity(context.Background(), primitive.NewObjectID(), ActivityInput{
		StartTime:       time.Now(),
		DurationMinutes: 30,
		Type:            "swim",
		AvgHeartRate:    140,
		Source:          domain.SourceStrava,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Intensity, "unknown max HR gives no zone")
	assert.True(t, a.HasHeartRate())
	assert.Equal(t, domain.SourceStrava, a.Source)
}

func TestRecordActivity_Validation(t *testing.T) {
	svc := NewTrainingActivityService(&mocks.MockTrainingActivityRepository{}, &mocks.MockUserRepository{})
	ctx := context.Background()
	uid := primitive.NewObjectID()

	_, err := svc.RecordActivity(ctx, uid, ActivityInput{StartTime: time.Now(), Type: "run"})
	assert.ErrorIs(t, err, ErrInvalidActivity)

	_, err = svc.RecordActivity(ctx, uid, ActivityInput{StartTime: time.Now(), DurationMinutes: 10, Type: "run", Source: "garmin"})
	assert.ErrorIs(t, err, ErrInvalidActivity)

	_, err = svc.RecordActivity(ctx, uid, ActivityInput{StartTime: time.Now(), DurationMinutes: 10, Type: "run"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteActivity_NotFound(t *testing.T) {
	repo := &mocks.MockTrainingActivityRepository{
		DeleteFunc: func(context.Context, primitive.ObjectID, primitive.ObjectID) error {
			return repository.ErrNotFound
		},
	}
	svc := NewTrainingActivityService(repo, &mocks.MockUserRepository{})

	err := svc.DeleteActivity(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
