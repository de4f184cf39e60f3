package mongo

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const foodPhotoCollectionName = "food_photos"

type mongoFoodPhotoRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodPhotoRepository creates a new photo metadata repository.
func NewMongoFoodPhotoRepository(db *mongo.Database) repository.FoodPhotoRepository {
	return &mongoFoodPhotoRepository{
		collection: db.Collection(foodPhotoCollectionName),
	}
}

// Create inserts new photo metadata.
func (r *mongoFoodPhotoRepository) Create(ctx context.Context, photo *domain.FoodPhoto) (primitive.ObjectID, error) {
	if photo.FoodLogID == primitive.NilObjectID || photo.UserID == primitive.NilObjectID || photo.ObjectKey == "" {
		return primitive.NilObjectID, errors.New("photo requires foodLogId, userId, and objectKey")
	}
	photo.ID = primitive.NewObjectID()
	photo.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves photo metadata by its ID.
func (r *mongoFoodPhotoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodPhoto, error) {
	var photo domain.FoodPhoto
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// Delete removes photo metadata. The stored object is removed by the caller.
func (r *mongoFoodPhotoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodPhotoIndexes creates necessary indexes for the photo collection.
func EnsureFoodPhotoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "foodLogId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
