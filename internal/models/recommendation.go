package models

import "time"

// Recommendation guarda el historial de cada cómputo (cache miss) junto
// con sus métricas de explicabilidad. Los hits de cache no se registran.
type Recommendation struct {
	ID        string             `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Algo      string             `bson:"algo" json:"algo"`
	Params    any                `bson:"params" json:"params"`
	RecipeIDs []string           `bson:"recipeIds" json:"recipeIds"`
	Metrics   map[string]float64 `bson:"metrics,omitempty" json:"metrics,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
