package domain

import (
	"nutrisync/nutrisync-app/internal/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionScore is the stored unified score of one athlete for one day.
// There is at most one per (UserID, Date).
type NutritionScore struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         string             `bson:"date" json:"date"`
	Score        int                `bson:"score" json:"score"`
	Load         scoring.Load       `bson:"load" json:"load"`
	Breakdown    scoring.Result     `bson:"breakdown" json:"breakdown"`
	Flags        scoring.Flags      `bson:"flags" json:"flags"`
	CalculatedAt time.Time          `bson:"calculatedAt" json:"calculatedAt"`
}
