package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documento para la colección collections (listas de recetas del usuario)
type CollectionDoc struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Name      string             `json:"name" bson:"name"`
	RecipeIDs []string           `json:"recipeIds" bson:"recipeIds"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CollectionCreateRequest struct {
	Name string `json:"name"` // obligatorio
}
