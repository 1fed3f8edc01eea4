package recommender

import (
	"context"
	"log"
	"sort"

	"saborml/internal/models"
)

const defaultHistoryLimit = 10

// ContentBased genera candidatas parecidas a lo que el usuario vio hace
// poco, comparando tags con similitud coseno.
type ContentBased struct {
	catalog      Catalog
	views        ViewSource
	historyLimit int
	catalogLimit int
}

func NewContentBased(catalog Catalog, views ViewSource, historyLimit, catalogLimit int) *ContentBased {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	if catalogLimit <= 0 {
		catalogLimit = 50
	}
	return &ContentBased{
		catalog:      catalog,
		views:        views,
		historyLimit: historyLimit,
		catalogLimit: catalogLimit,
	}
}

// Recommend degrada a lista vacía si no hay historial o si fallan los
// lookups: una señal caída nunca tumba el pedido completo.
func (r *ContentBased) Recommend(ctx context.Context, userID string, prefs models.UserPreferences, limit int) ([]models.RecipeDoc, error) {
	history, err := r.views.RecentByUser(ctx, userID, r.historyLimit)
	if err != nil {
		log.Printf("[content] error leyendo historial de %s: %v", userID, err)
		return []models.RecipeDoc{}, nil
	}
	if len(history) == 0 {
		return []models.RecipeDoc{}, nil
	}

	// Una candidata puede aparecer una vez por cada receta vista que la
	// trajo; la deduplicación recién ocurre en el agregador.
	var scored []scoredRecipe

	for _, v := range history {
		if v.RecipeID == "" {
			continue
		}

		viewed, err := r.catalog.GetByID(ctx, v.RecipeID)
		if err != nil || viewed == nil {
			continue
		}
		if len(viewed.Tags) == 0 {
			continue
		}

		related, err := r.catalog.ByTags(ctx, viewed.Tags, r.catalogLimit)
		if err != nil {
			continue
		}

		related = FilterByPreferences(related, prefs)

		for _, cand := range related {
			if cand.RecipeID == viewed.RecipeID {
				continue // la receta vista no se recomienda a sí misma
			}
			scored = append(scored, scoredRecipe{
				recipe: cand,
				score:  CosineSimilarity(viewed.Tags, cand.Tags),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	// los scores no se propagan más allá de esta etapa
	out := make([]models.RecipeDoc, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.recipe)
	}
	return out, nil
}
