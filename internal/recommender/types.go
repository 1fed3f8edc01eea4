package recommender

import (
	"context"
	"time"

	"saborml/internal/models"
)

// Interfaces angostas hacia los colaboradores externos. El motor no sabe
// de Mongo ni de HTTP: solo pide datos por acá.

type Catalog interface {
	GetByID(ctx context.Context, recipeID string) (*models.RecipeDoc, error)
	ByTags(ctx context.Context, tags []string, limit int) ([]models.RecipeDoc, error)
	ByCategory(ctx context.Context, category string, limit int) ([]models.RecipeDoc, error)
	List(ctx context.Context, page, pageSize int) ([]models.RecipeDoc, error)
}

type RatingSource interface {
	GetAll(ctx context.Context) ([]models.RatingDoc, error)
}

type ViewSource interface {
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.ViewDoc, error)
}

type PreferenceSource interface {
	GetPreferences(ctx context.Context, userID string) (models.UserPreferences, error)
}

// Store es el cache de bytes con TTL (Redis en producción, memoria en tests).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Result es lo que devuelve el orquestador. Metrics viene nil cuando el
// resultado salió del cache: recalcularlas en un hit lo encarecería al pedo.
type Result struct {
	Recommendations []models.RecipeDoc `json:"recommendations"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
}

// par (receta, score) efímero usado durante el ranking; nunca se persiste
type scoredRecipe struct {
	recipe models.RecipeDoc
	score  float64
}
