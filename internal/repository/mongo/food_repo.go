// internal/repository/mongo/food_repo.go
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

const foodCollectionName = "foods"

// mongoFoodRepository implements repository.FoodRepository.
type mongoFoodRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodRepository creates a new food catalog repository.
func NewMongoFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &mongoFoodRepository{
		collection: db.Collection(foodCollectionName),
	}
}

// Create inserts a new catalog entry.
func (r *mongoFoodRepository) Create(ctx context.Context, food *domain.Food) (primitive.ObjectID, error) {
	if food.OwnerID == primitive.NilObjectID || food.Name == "" {
		return primitive.NilObjectID, errors.New("food requires ownerId and name")
	}
	food.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	food.CreatedAt = now
	food.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted food ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single food by its ID.
func (r *mongoFoodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	var food domain.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// GetByOwnerID lists a user's catalog sorted by name.
func (r *mongoFoodRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var foods []domain.Food
	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Update replaces the editable fields of a food.
func (r *mongoFoodRepository) Update(ctx context.Context, food *domain.Food) error {
	if food.ID == primitive.NilObjectID {
		return errors.New("food ID is required for update")
	}
	food.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":      food.Name,
			"brand":     food.Brand,
			"per100g":   food.Per100g,
			"updatedAt": food.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": food.ID, "ownerId": food.OwnerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a food owned by ownerID.
func (r *mongoFoodRepository) Delete(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// not found OR not owned by this user
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodIndexes creates necessary indexes for the foods collection.
func EnsureFoodIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
