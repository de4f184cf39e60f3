// Package mocks holds function-field fakes of the repository and storage
// interfaces. A nil func falls back to a benign default.
package mocks

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock User Repository ---
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc              func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateMetricsFunc        func(ctx context.Context, id primitive.ObjectID, weightKg, maxHeartRate float64) error
	AddAthleteToCoachFunc    func(ctx context.Context, coachID, athleteID primitive.ObjectID) error
	GetAthletesByCoachIDFunc func(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	SetCoachForAthleteFunc   func(ctx context.Context, athleteID, coachID primitive.ObjectID) error
	ListAthleteIDsFunc       func(ctx context.Context) ([]primitive.ObjectID, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return primitive.NewObjectID(), nil
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}
func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *MockUserRepository) UpdateMetrics(ctx context.Context, id primitive.ObjectID, weightKg, maxHeartRate float64) error {
	if m.UpdateMetricsFunc != nil {
		return m.UpdateMetricsFunc(ctx, id, weightKg, maxHeartRate)
	}
	return nil
}
func (m *MockUserRepository) AddAthleteToCoach(ctx context.Context, coachID, athleteID primitive.ObjectID) error {
	if m.AddAthleteToCoachFunc != nil {
		return m.AddAthleteToCoachFunc(ctx, coachID, athleteID)
	}
	return nil
}
func (m *MockUserRepository) GetAthletesByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	if m.GetAthletesByCoachIDFunc != nil {
		return m.GetAthletesByCoachIDFunc(ctx, coachID)
	}
	return nil, nil
}
func (m *MockUserRepository) SetCoachForAthlete(ctx context.Context, athleteID, coachID primitive.ObjectID) error {
	if m.SetCoachForAthleteFunc != nil {
		return m.SetCoachForAthleteFunc(ctx, athleteID, coachID)
	}
	return nil
}
func (m *MockUserRepository) ListAthleteIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	if m.ListAthleteIDsFunc != nil {
		return m.ListAthleteIDsFunc(ctx)
	}
	return nil, nil
}

// --- Mock Food Repository ---
type MockFoodRepository struct {
	CreateFunc       func(ctx context.Context, food *domain.Food) (primitive.ObjectID, error)
	GetByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	GetByOwnerIDFunc func(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error)
	UpdateFunc       func(ctx context.Context, food *domain.Food) error
	DeleteFunc       func(ctx context.Context, id, ownerID primitive.ObjectID) error
}

func (m *MockFoodRepository) Create(ctx context.Context, food *domain.Food) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, food)
	}
	return primitive.NewObjectID(), nil
}
func (m *MockFoodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *MockFoodRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	if m.GetByOwnerIDFunc != nil {
		return m.GetByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}
func (m *MockFoodRepository) Update(ctx context.Context, food *domain.Food) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, food)
	}
	return nil
}
func (m *MockFoodRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return nil
}

// --- Mock Meal Plan Repository ---
type MockMealPlanRepository struct {
	UpsertFunc    func(ctx context.Context, plan *domain.DailyMealPlan) error
	GetByDateFunc func(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error)
	ListDatesFunc func(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error)
}

func (m *MockMealPlanRepository) Upsert(ctx context.Context, plan *domain.DailyMealPlan) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, plan)
	}
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	return nil
}
func (m *MockMealPlanRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, userID, date)
	}
	return nil, repository.ErrNotFound
}
func (m *MockMealPlanRepository) ListDates(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error) {
	if m.ListDatesFunc != nil {
		return m.ListDatesFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// --- Mock Food Log Repository ---
type MockFoodLogRepository struct {
	CreateFunc            func(ctx context.Context, entry *domain.FoodLog) (primitive.ObjectID, error)
	GetByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error)
	GetByDateFunc         func(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error)
	GetByEatenBetweenFunc func(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.FoodLog, error)
	SetPhotoFunc          func(ctx context.Context, id, photoID primitive.ObjectID) error
	DeleteFunc            func(ctx context.Context, id, userID primitive.ObjectID) error
}

func (m *MockFoodLogRepository) Create(ctx context.Context, entry *domain.FoodLog) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return primitive.NewObjectID(), nil
}
func (m *MockFoodLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *MockFoodLogRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, userID, date)
	}
	return nil, nil
}
func (m *MockFoodLogRepository) GetByEatenBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.FoodLog, error) {
	if m.GetByEatenBetweenFunc != nil {
		return m.GetByEatenBetweenFunc(ctx, userID, from, to)
	}
	return nil, nil
}
func (m *MockFoodLogRepository) SetPhoto(ctx context.Context, id, photoID primitive.ObjectID) error {
	if m.SetPhotoFunc != nil {
		return m.SetPhotoFunc(ctx, id, photoID)
	}
	return nil
}
func (m *MockFoodLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// --- Mock Food Photo Repository ---
type MockFoodPhotoRepository struct {
	CreateFunc  func(ctx context.Context, photo *domain.FoodPhoto) (primitive.ObjectID, error)
	GetByIDFunc func(ctx context.Context, id primitive.ObjectID) (*domain.FoodPhoto, error)
	DeleteFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockFoodPhotoRepository) Create(ctx context.Context, photo *domain.FoodPhoto) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, photo)
	}
	return primitive.NewObjectID(), nil
}
func (m *MockFoodPhotoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodPhoto, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *MockFoodPhotoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- Mock Training Activity Repository ---
type MockTrainingActivityRepository struct {
	CreateFunc    func(ctx context.Context, activity *domain.TrainingActivity) (primitive.ObjectID, error)
	GetByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingActivity, error)
	GetByDateFunc func(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error)
	DeleteFunc    func(ctx context.Context, id, userID primitive.ObjectID) error
}

func (m *MockTrainingActivityRepository) Create(ctx context.Context, activity *domain.TrainingActivity) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return primitive.NewObjectID(), nil
}
func (m *MockTrainingActivityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingActivity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *MockTrainingActivityRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, userID, date)
	}
	return nil, nil
}
func (m *MockTrainingActivityRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// --- Mock Nutrition Score Repository ---
type MockNutritionScoreRepository struct {
	UpsertFunc    func(ctx context.Context, score *domain.NutritionScore) error
	GetByDateFunc func(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error)
	GetRangeFunc  func(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error)
}

func (m *MockNutritionScoreRepository) Upsert(ctx context.Context, score *domain.NutritionScore) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, score)
	}
	return nil
}
func (m *MockNutritionScoreRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, userID, date)
	}
	return nil, repository.ErrNotFound
}
func (m *MockNutritionScoreRepository) GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error) {
	if m.GetRangeFunc != nil {
		return m.GetRangeFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// --- Mock File Storage ---
type MockFileStorage struct {
	GeneratePresignedUploadURLFunc   func(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	GeneratePresignedDownloadURLFunc func(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObjectFunc                 func(ctx context.Context, objectKey string) error
}

func (m *MockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	if m.GeneratePresignedUploadURLFunc != nil {
		return m.GeneratePresignedUploadURLFunc(ctx, objectKey, contentType, expires)
	}
	return "https://storage.test/upload/" + objectKey, nil
}
func (m *MockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if m.GeneratePresignedDownloadURLFunc != nil {
		return m.GeneratePresignedDownloadURLFunc(ctx, objectKey, expires)
	}
	return "https://storage.test/download/" + objectKey, nil
}
func (m *MockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, objectKey)
	}
	return nil
}
