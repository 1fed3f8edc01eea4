package models

// Lo que está en Mongo
type RatingDoc struct {
	UserID    string  `json:"userId" bson:"userId"`
	RecipeID  string  `json:"recipeId" bson:"recipeId"`
	Rating    float64 `json:"rating" bson:"rating"` // 1..5
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}

// ViewDoc registra una vista de receta (historial para content-based).
type ViewDoc struct {
	UserID   string `json:"userId" bson:"userId"`
	RecipeID string `json:"recipeId" bson:"recipeId"`
	ViewedAt int64  `json:"viewedAt" bson:"viewedAt"`
}
