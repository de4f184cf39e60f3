package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/storage"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrFoodLogNotFound       = errors.New("food log not found")
	ErrFoodLogAccessDenied   = errors.New("food log does not belong to this user")
	ErrInvalidFoodLog        = errors.New("invalid food log")
	ErrInvalidPhotoType      = errors.New("invalid or missing image content type")
	ErrPhotoKeyMismatch      = errors.New("object key does not belong to this food log")
	ErrPhotoMissing          = errors.New("no photo attached to this food log")
	ErrUploadURLError        = errors.New("failed to generate upload URL")
	ErrDownloadURLError      = errors.New("failed to generate download URL")
	ErrPhotoConfirmationFail = errors.New("failed to confirm photo upload")
)

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // reported back on confirm
}

// FoodLogInput is what a client sends to log food or water. Macros are taken
// as given unless FoodID and Grams point at a catalog entry.
type FoodLogInput struct {
	EatenAt  time.Time
	MealType scoring.MealType
	Name     string
	FoodID   *primitive.ObjectID
	Grams    float64
	Macros   scoring.Macros
	WaterMl  float64
}

type FoodLogService interface {
	LogFood(ctx context.Context, userID primitive.ObjectID, in FoodLogInput) (*domain.FoodLog, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error)
	DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error

	// Photo upload process
	RequestPhotoUpload(ctx context.Context, userID, logID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmPhoto(ctx context.Context, userID, logID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string) (*domain.FoodLog, error)
	GetPhotoURL(ctx context.Context, userID, logID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

type foodLogService struct {
	foodLogRepo repository.FoodLogRepository
	photoRepo   repository.FoodPhotoRepository
	foodRepo    repository.FoodRepository
	fileStorage storage.FileStorage
}

// NewFoodLogService creates a new instance of foodLogService.
func NewFoodLogService(
	foodLogRepo repository.FoodLogRepository,
	photoRepo repository.FoodPhotoRepository,
	foodRepo repository.FoodRepository,
	fileStorage storage.FileStorage,
) FoodLogService {
	return &foodLogService{
		foodLogRepo: foodLogRepo,
		photoRepo:   photoRepo,
		foodRepo:    foodRepo,
		fileStorage: fileStorage,
	}
}

// LogFood records an eaten item. The log date is the UTC day of EatenAt.
func (s *foodLogService) LogFood(ctx context.Context, userID primitive.ObjectID, in FoodLogInput) (*domain.FoodLog, error) {
	if in.EatenAt.IsZero() {
		return nil, fmt.Errorf("%w: eatenAt is required", ErrInvalidFoodLog)
	}
	if !in.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidFoodLog, in.MealType)
	}
	if in.WaterMl < 0 || in.Grams < 0 || !validMacros(in.Macros) {
		return nil, fmt.Errorf("%w: amounts cannot be negative", ErrInvalidFoodLog)
	}

	entry := &domain.FoodLog{
		UserID:   userID,
		Date:     domain.FormatDate(in.EatenAt),
		EatenAt:  in.EatenAt.UTC(),
		MealType: in.MealType,
		Name:     in.Name,
		Macros:   in.Macros,
		WaterMl:  in.WaterMl,
	}

	if in.FoodID != nil {
		if in.Grams <= 0 {
			return nil, fmt.Errorf("%w: grams are required when logging a catalog food", ErrInvalidFoodLog)
		}
		food, err := s.foodRepo.GetByID(ctx, *in.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrFoodNotFound
			}
			return nil, err
		}
		if food.OwnerID != userID {
			return nil, ErrFoodAccessDenied
		}
		entry.FoodID = in.FoodID
		entry.Grams = in.Grams
		entry.Macros = food.MacrosFor(in.Grams)
		if entry.Name == "" {
			entry.Name = food.Name
		}
	}

	id, err := s.foodLogRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *foodLogService) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return s.foodLogRepo.GetByDate(ctx, userID, date)
}

// getOwned loads a log entry and checks it belongs to userID.
func (s *foodLogService) getOwned(ctx context.Context, userID, logID primitive.ObjectID) (*domain.FoodLog, error) {
	entry, err := s.foodLogRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodLogNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrFoodLogAccessDenied
	}
	return entry, nil
}

// DeleteLog removes the entry and, when present, its photo.
func (s *foodLogService) DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error {
	entry, err := s.getOwned(ctx, userID, logID)
	if err != nil {
		return err
	}

	if err = s.foodLogRepo.Delete(ctx, logID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFoodLogNotFound
		}
		return err
	}

	if entry.PhotoID == nil {
		return nil
	}
	// The entry is gone; photo cleanup failures are only logged.
	photo, err := s.photoRepo.GetByID(ctx, *entry.PhotoID)
	if err != nil {
		log.Printf("WARN: Photo %s of deleted food log %s not found: %v", entry.PhotoID.Hex(), logID.Hex(), err)
		return nil
	}
	if err = s.fileStorage.DeleteObject(ctx, photo.ObjectKey); err != nil {
		log.Printf("WARN: Failed to delete photo object %s: %v", photo.ObjectKey, err)
	}
	if err = s.photoRepo.Delete(ctx, photo.ID); err != nil {
		log.Printf("WARN: Failed to delete photo metadata %s: %v", photo.ID.Hex(), err)
	}
	return nil
}

// === Photo Upload Process ===

func photoKeyPrefix(userID, logID primitive.ObjectID) string {
	return path.Join("photos", userID.Hex(), logID.Hex()) + "/"
}

// RequestPhotoUpload returns a presigned PUT URL for a meal photo.
func (s *foodLogService) RequestPhotoUpload(ctx context.Context, userID, logID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidPhotoType
	}
	if _, err := s.getOwned(ctx, userID, logID); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(contentType, "image/")
	objectKey := photoKeyPrefix(userID, logID) + fmt.Sprintf("%s.%s", uuid.NewString(), ext)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmPhoto stores the photo metadata after the client uploaded the object
// and links it to the entry, replacing any previous photo.
func (s *foodLogService) ConfirmPhoto(ctx context.Context, userID, logID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string) (*domain.FoodLog, error) {
	entry, err := s.getOwned(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(objectKey, photoKeyPrefix(userID, logID)) {
		return nil, ErrPhotoKeyMismatch
	}

	photo := &domain.FoodPhoto{
		FoodLogID:   logID,
		UserID:      userID,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
		Size:        fileSize,
	}
	photoID, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		return nil, ErrPhotoConfirmationFail
	}

	if err = s.foodLogRepo.SetPhoto(ctx, logID, photoID); err != nil {
		if delErr := s.photoRepo.Delete(ctx, photoID); delErr != nil {
			log.Printf("ERROR: Failed to roll back photo metadata %s: %v", photoID.Hex(), delErr)
		}
		return nil, ErrPhotoConfirmationFail
	}

	if entry.PhotoID != nil {
		s.dropPhoto(ctx, *entry.PhotoID)
	}
	entry.PhotoID = &photoID
	return entry, nil
}

// dropPhoto removes a superseded photo; failures are logged.
func (s *foodLogService) dropPhoto(ctx context.Context, photoID primitive.ObjectID) {
	old, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return
	}
	if err = s.fileStorage.DeleteObject(ctx, old.ObjectKey); err != nil {
		log.Printf("WARN: Failed to delete replaced photo object %s: %v", old.ObjectKey, err)
	}
	if err = s.photoRepo.Delete(ctx, photoID); err != nil {
		log.Printf("WARN: Failed to delete replaced photo metadata %s: %v", photoID.Hex(), err)
	}
}

// GetPhotoURL returns a presigned GET URL for the entry's photo.
func (s *foodLogService) GetPhotoURL(ctx context.Context, userID, logID primitive.ObjectID) (string, error) {
	entry, err := s.getOwned(ctx, userID, logID)
	if err != nil {
		return "", err
	}
	if entry.PhotoID == nil {
		return "", ErrPhotoMissing
	}
	photo, err := s.photoRepo.GetByID(ctx, *entry.PhotoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPhotoMissing
		}
		return "", err
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}
