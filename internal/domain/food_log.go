package domain

import (
	"nutrisync/nutrisync-app/internal/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodLog is a single eaten item (or a glass of water) logged by an athlete.
type FoodLog struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID  `bson:"userId" json:"userId"`
	Date     string              `bson:"date" json:"date"` // YYYY-MM-DD
	EatenAt  time.Time           `bson:"eatenAt" json:"eatenAt"`
	MealType scoring.MealType    `bson:"mealType" json:"mealType"`
	Name     string              `bson:"name" json:"name"`
	FoodID   *primitive.ObjectID `bson:"foodId,omitempty" json:"foodId,omitempty"` // catalog entry it was built from
	Grams    float64             `bson:"grams,omitempty" json:"grams,omitempty"`
	Macros   scoring.Macros      `bson:"macros" json:"macros"`
	WaterMl  float64             `bson:"waterMl,omitempty" json:"waterMl,omitempty"`
	PhotoID  *primitive.ObjectID `bson:"photoId,omitempty" json:"photoId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
