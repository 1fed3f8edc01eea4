package recommender

import (
	"math"
	"testing"

	"saborml/internal/models"
)

func TestAggregateDeduplicaGanaContentBased(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	content := []models.RecipeDoc{
		{RecipeID: "r1", Title: "Versión content"},
		{RecipeID: "r2", Title: "Solo content"},
	}
	collab := []models.RecipeDoc{
		{RecipeID: "r1", Title: "Versión colaborativa"},
		{RecipeID: "r3", Title: "Solo colaborativa"},
	}

	ranked, _ := agg.Aggregate(content, collab, models.UserPreferences{}, 10)

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3 (%v)", len(ranked), ranked)
	}
	seen := make(map[string]models.RecipeDoc)
	for _, c := range ranked {
		if _, dup := seen[c.RecipeID]; dup {
			t.Fatalf("id duplicado en el ranking: %s", c.RecipeID)
		}
		seen[c.RecipeID] = c
	}
	// el duplicado conserva la copia de content-based, que entró primero
	if seen["r1"].Title != "Versión content" {
		t.Errorf("r1 = %q, want la copia de content-based", seen["r1"].Title)
	}
}

func TestAggregateOrdenEstableConEmpates(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	// sin perfil ni ratings ni vistas, todos los scores son iguales
	content := []models.RecipeDoc{
		{RecipeID: "a"}, {RecipeID: "b"},
	}
	collab := []models.RecipeDoc{
		{RecipeID: "c"}, {RecipeID: "d"},
	}

	ranked, _ := agg.Aggregate(content, collab, models.UserPreferences{}, 10)

	want := []string{"a", "b", "c", "d"}
	for i, id := range want {
		if ranked[i].RecipeID != id {
			t.Fatalf("ranked = %v, want orden del merge %v", ranked, want)
		}
	}
}

func TestAggregatePonderaSeniales(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	prefs := models.UserPreferences{
		DietaryPreferences: []string{"vegan"},
		FavoriteCuisines:   []string{"asian"},
	}
	content := []models.RecipeDoc{
		// matchea el perfil completo y además es popular
		{RecipeID: "match", Cuisine: "asian", Diets: []string{"vegan"}, ViewCount: 800, RatingStats: &models.RatingStats{Average: 4.5, Count: 2}},
		// cero afinidad, cero popularidad
		{RecipeID: "nada", Cuisine: "french"},
	}

	ranked, _ := agg.Aggregate(content, nil, prefs, 10)

	if ranked[0].RecipeID != "match" {
		t.Errorf("ranked[0] = %s, want match", ranked[0].RecipeID)
	}
}

func TestAggregateRespetaLimite(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	content := []models.RecipeDoc{
		{RecipeID: "a"}, {RecipeID: "b"}, {RecipeID: "c"},
	}
	ranked, _ := agg.Aggregate(content, nil, models.UserPreferences{}, 2)
	if len(ranked) != 2 {
		t.Errorf("len = %d, want 2", len(ranked))
	}
}

func TestAggregateEsDeterminista(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	prefs := models.UserPreferences{FavoriteCuisines: []string{"asian"}}
	content := []models.RecipeDoc{
		{RecipeID: "a", Cuisine: "asian"}, {RecipeID: "b", Cuisine: "french"},
	}
	collab := []models.RecipeDoc{
		{RecipeID: "c", Cuisine: "asian"}, {RecipeID: "a", Cuisine: "asian"},
	}

	r1, m1 := agg.Aggregate(content, collab, prefs, 10)
	r2, m2 := agg.Aggregate(content, collab, prefs, 10)

	if len(r1) != len(r2) {
		t.Fatalf("len distinto entre corridas: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].RecipeID != r2[i].RecipeID {
			t.Errorf("posición %d: %s vs %s", i, r1[i].RecipeID, r2[i].RecipeID)
		}
	}
	for k, v := range m1 {
		if m2[k] != v {
			t.Errorf("métrica %s: %v vs %v", k, v, m2[k])
		}
	}
}

func TestMetricsDiversity(t *testing.T) {
	const eps = 1e-9
	agg := NewAggregator(DefaultWeights())

	// categoría distinta (0.25) + cocina distinta (0.25) + 30 min de
	// diferencia (0.15 * 0.5) + ingredientes disjuntos (0.35 * 1.0)
	a := models.RecipeDoc{RecipeID: "a", CategoryID: "c1", Cuisine: "asian", CookingTime: 15, Ingredients: []string{"arroz", "jengibre"}}
	b := models.RecipeDoc{RecipeID: "b", CategoryID: "c2", Cuisine: "french", CookingTime: 45, Ingredients: []string{"manteca", "harina"}}

	_, metrics := agg.Aggregate([]models.RecipeDoc{a, b}, nil, models.UserPreferences{}, 10)

	if got := metrics["Diversity"]; math.Abs(got-0.925) > eps {
		t.Errorf("Diversity = %v, want 0.925", got)
	}
}

func TestMetricsDiversityConMenosDeDosItems(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	_, metrics := agg.Aggregate([]models.RecipeDoc{{RecipeID: "a"}}, nil, models.UserPreferences{}, 10)
	if got := metrics["Diversity"]; got != 0 {
		t.Errorf("Diversity con 1 ítem = %v, want 0", got)
	}
}

func TestMetricsRelevancia(t *testing.T) {
	const eps = 1e-9
	agg := NewAggregator(DefaultWeights())

	prefs := models.UserPreferences{
		DietaryPreferences: []string{"vegan", "gluten-free"},
		FavoriteCuisines:   []string{"asian"},
	}
	// cocina favorita (0.5) + 1 de 2 dietas (0.25) = 0.75
	a := models.RecipeDoc{RecipeID: "a", Cuisine: "Asian", Diets: []string{"vegan"}}
	// ni cocina ni dietas = 0
	b := models.RecipeDoc{RecipeID: "b", Cuisine: "french"}

	_, metrics := agg.Aggregate([]models.RecipeDoc{a, b}, nil, prefs, 10)

	want := (0.75 + 0.0) / 2
	if got := metrics["Personalization"]; math.Abs(got-want) > eps {
		t.Errorf("Personalization = %v, want %v", got, want)
	}
	if metrics["ContentRelevance"] != metrics["Personalization"] {
		t.Errorf("ContentRelevance = %v, want igual a Personalization", metrics["ContentRelevance"])
	}
}

func TestMetricsSinPreferenciasDietarias(t *testing.T) {
	const eps = 1e-9
	agg := NewAggregator(DefaultWeights())

	// sin dietas declaradas la mitad dietaria vale 0.5 plano
	a := models.RecipeDoc{RecipeID: "a", Cuisine: "french"}
	_, metrics := agg.Aggregate([]models.RecipeDoc{a}, nil, models.UserPreferences{}, 10)

	if got := metrics["Personalization"]; math.Abs(got-0.5) > eps {
		t.Errorf("Personalization = %v, want 0.5", got)
	}
}
