package recommender

import (
	"context"
	"time"

	"saborml/internal/models"
)

// Contextual sugiere recetas por hora del día y estación del año. Es una
// estrategia independiente: no participa del flujo por defecto del
// orquestador, se expone como entrada alternativa.
type Contextual struct {
	catalog Catalog

	// inyectable para tests; por defecto time.Now
	Now func() time.Time
}

func NewContextual(catalog Catalog) *Contextual {
	return &Contextual{catalog: catalog, Now: time.Now}
}

// seasonOf clasifica por mes calendario, no por fechas astronómicas.
func seasonOf(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

func isMorning(hour int) bool {
	return hour >= 6 && hour < 12
}

// Recommend devuelve candidatas en el orden del catálogo, sin scoring.
func (r *Contextual) Recommend(ctx context.Context, prefs models.UserPreferences, limit int) ([]models.RecipeDoc, error) {
	now := r.Now()

	var candidates []models.RecipeDoc
	var err error

	if isMorning(now.Hour()) {
		candidates, err = r.catalog.ByCategory(ctx, "breakfast", limit*2)
	} else {
		candidates, err = r.catalog.ByTags(ctx, []string{seasonOf(now.Month())}, limit*2)
	}
	if err != nil {
		return []models.RecipeDoc{}, nil
	}

	candidates = FilterByPreferences(candidates, prefs)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
