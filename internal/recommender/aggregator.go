package recommender

import (
	"log"
	"math"
	"sort"
	"strings"

	"saborml/internal/models"
)

// Pesos del ranking multi-señal. Vienen de config, no van hardcodeados
// en la lógica.
type Weights struct {
	Content       float64 // afinidad de perfil de tags
	Collaborative float64 // proxy: rating promedio normalizado
	Popularity    float64 // viewCount normalizado
}

func DefaultWeights() Weights {
	return Weights{Content: 0.5, Collaborative: 0.4, Popularity: 0.1}
}

// Aggregator mergea las señales, deduplica, puntúa, ordena y calcula las
// métricas de explicabilidad.
type Aggregator struct {
	weights Weights
}

func NewAggregator(w Weights) *Aggregator {
	if w.Content == 0 && w.Collaborative == 0 && w.Popularity == 0 {
		w = DefaultWeights()
	}
	return &Aggregator{weights: w}
}

// Aggregate concatena content-based y colaborativo (en ese orden: ante un
// empate de id gana content-based por ir primero), deduplica por id,
// puntúa y devuelve (ranking, métricas). El sort es estable: con scores
// iguales se preserva el orden del merge.
func (a *Aggregator) Aggregate(contentBased, collaborative []models.RecipeDoc, prefs models.UserPreferences, limit int) ([]models.RecipeDoc, map[string]float64) {
	merged := make([]models.RecipeDoc, 0, len(contentBased)+len(collaborative))
	merged = append(merged, contentBased...)
	merged = append(merged, collaborative...)

	seen := make(map[string]struct{}, len(merged))
	unique := merged[:0]
	for _, c := range merged {
		if _, dup := seen[c.RecipeID]; dup {
			continue
		}
		seen[c.RecipeID] = struct{}{}
		unique = append(unique, c)
	}

	userProfile := append(append([]string{}, prefs.DietaryPreferences...), prefs.FavoriteCuisines...)

	scored := make([]scoredRecipe, 0, len(unique))
	for _, c := range unique {
		scored = append(scored, scoredRecipe{recipe: c, score: a.score(c, userProfile)})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	ranked := make([]models.RecipeDoc, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.recipe)
	}

	return ranked, a.computeMetrics(ranked, prefs)
}

func (a *Aggregator) score(c models.RecipeDoc, userProfile []string) float64 {
	candProfile := append([]string{c.Cuisine}, c.Diets...)

	return a.weights.Content*CosineSimilarity(userProfile, candProfile) +
		a.weights.Collaborative*Normalize(c.AverageRating(), 0, 1000) +
		a.weights.Popularity*Normalize(float64(c.ViewCount), 0, 1000)
}

// computeMetrics nunca rompe el ranking: ante cualquier panic durante el
// cálculo colapsa todo el mapa a {"Error": 1.0} en vez de dejar parciales.
func (a *Aggregator) computeMetrics(ranked []models.RecipeDoc, prefs models.UserPreferences) (metrics map[string]float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[aggregator] panic calculando métricas: %v", r)
			metrics = map[string]float64{"Error": 1.0}
		}
	}()

	relevance := meanRelevance(ranked, prefs)

	metrics = map[string]float64{
		"Diversity":        diversity(ranked),
		"Personalization":  relevance,
		"ContentRelevance": relevance,
	}
	return metrics
}

// diversity = promedio de recipeDistance sobre todos los pares no
// ordenados del ranking final; 0 con menos de 2 ítems.
func diversity(ranked []models.RecipeDoc) float64 {
	if len(ranked) < 2 {
		return 0
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			sum += recipeDistance(ranked[i], ranked[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}

func recipeDistance(a, b models.RecipeDoc) float64 {
	var d float64
	if a.CategoryID != b.CategoryID {
		d += 0.25
	}
	if !strings.EqualFold(a.Cuisine, b.Cuisine) {
		d += 0.25
	}
	d += 0.15 * math.Min(math.Abs(float64(a.CookingTime-b.CookingTime))/60.0, 1)
	d += 0.35 * JaccardDistance(a.Ingredients, b.Ingredients)

	if d > 1 {
		d = 1
	}
	if d < 0 {
		d = 0
	}
	return d
}

// relevancia por candidata: 0.5 si su cuisine está entre las favoritas,
// más 0.5 por la fracción de preferencias dietéticas que satisface
// (0.5 plano cuando el usuario no tiene preferencias dietéticas).
func candidateRelevance(c models.RecipeDoc, prefs models.UserPreferences) float64 {
	var rel float64

	favs := toSet(prefs.FavoriteCuisines)
	if _, ok := favs[strings.ToLower(strings.TrimSpace(c.Cuisine))]; ok {
		rel += 0.5
	}

	if len(prefs.DietaryPreferences) == 0 {
		rel += 0.5
		return rel
	}

	have := toSet(c.Diets)
	satisfied := 0
	total := 0
	for _, p := range prefs.DietaryPreferences {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		total++
		if _, ok := have[p]; ok {
			satisfied++
		}
	}
	if total > 0 {
		rel += 0.5 * float64(satisfied) / float64(total)
	} else {
		rel += 0.5
	}
	return rel
}

func meanRelevance(ranked []models.RecipeDoc, prefs models.UserPreferences) float64 {
	if len(ranked) == 0 {
		return 0
	}
	var sum float64
	for _, c := range ranked {
		sum += candidateRelevance(c, prefs)
	}
	return sum / float64(len(ranked))
}
