// internal/domain/food.go
package domain

import (
	"nutrisync/nutrisync-app/internal/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a catalog entry an athlete can log by weight.
type Food struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name    string             `bson:"name" json:"name"`
	Brand   string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Per100g scoring.Macros     `bson:"per100g" json:"per100g"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MacrosFor scales the per-100g values to the given weight.
func (f *Food) MacrosFor(grams float64) scoring.Macros {
	k := grams / 100
	return scoring.Macros{
		Calories: f.Per100g.Calories * k,
		Protein:  f.Per100g.Protein * k,
		Carbs:    f.Per100g.Carbs * k,
		Fat:      f.Per100g.Fat * k,
	}
}
