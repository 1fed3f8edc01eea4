package recommender

import (
	"context"
	"testing"
	"time"

	"saborml/internal/models"
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.December, "winter"},
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.August, "summer"},
		{time.September, "autumn"},
		{time.November, "autumn"},
	}
	for _, tt := range tests {
		if got := seasonOf(tt.month); got != tt.want {
			t.Errorf("seasonOf(%s) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

func TestContextualDeManianaPideDesayunos(t *testing.T) {
	ctx := context.Background()

	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		{RecipeID: "r1", Title: "Tostadas francesas", Category: "breakfast"},
		{RecipeID: "r2", Title: "Guiso de lentejas", Category: "dinner"},
	}}
	c := NewContextual(catalog)
	c.Now = func() time.Time {
		return time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)
	}

	got, err := c.Recommend(ctx, models.UserPreferences{}, 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(catalog.byCategoryCalls) != 1 || catalog.byCategoryCalls[0] != "breakfast" {
		t.Fatalf("esperaba una consulta por categoría breakfast, got %v", catalog.byCategoryCalls)
	}
	if len(got) != 1 || got[0].RecipeID != "r1" {
		t.Errorf("got %v, want solo r1", got)
	}
}

func TestContextualFueraDeLaManianaPideEstacion(t *testing.T) {
	ctx := context.Background()

	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		{RecipeID: "r1", Title: "Sopa de calabaza", Tags: []string{"winter"}},
		{RecipeID: "r2", Title: "Ensalada de sandía", Tags: []string{"summer"}},
	}}
	c := NewContextual(catalog)
	c.Now = func() time.Time {
		return time.Date(2026, time.January, 15, 20, 0, 0, 0, time.UTC)
	}

	got, err := c.Recommend(ctx, models.UserPreferences{}, 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(catalog.byTagsCalls) != 1 || len(catalog.byTagsCalls[0]) != 1 || catalog.byTagsCalls[0][0] != "winter" {
		t.Fatalf("esperaba una consulta por tag winter, got %v", catalog.byTagsCalls)
	}
	if len(got) != 1 || got[0].RecipeID != "r1" {
		t.Errorf("got %v, want solo r1", got)
	}
}

func TestContextualCatalogoCaidoDevuelveVacio(t *testing.T) {
	ctx := context.Background()

	catalog := &fakeCatalog{err: errMongoCaido}
	c := NewContextual(catalog)
	c.Now = func() time.Time {
		return time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)
	}

	got, err := c.Recommend(ctx, models.UserPreferences{}, 6)
	if err != nil {
		t.Fatalf("la estrategia contextual degrada, no falla: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want vacío", got)
	}
}

func TestContextualAplicaPreferenciasYLimite(t *testing.T) {
	ctx := context.Background()

	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		{RecipeID: "r1", Title: "Porridge", Category: "breakfast", Diets: []string{"vegan"}},
		{RecipeID: "r2", Title: "Huevos revueltos", Category: "breakfast"},
		{RecipeID: "r3", Title: "Smoothie verde", Category: "breakfast", Diets: []string{"vegan"}},
		{RecipeID: "r4", Title: "Budín de banana", Category: "breakfast", Diets: []string{"vegan"}},
	}}
	c := NewContextual(catalog)
	c.Now = func() time.Time {
		return time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)
	}

	prefs := models.UserPreferences{DietaryPreferences: []string{"vegan"}}
	got, err := c.Recommend(ctx, prefs, 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(got), got)
	}
	if got[0].RecipeID != "r1" || got[1].RecipeID != "r3" {
		t.Errorf("orden = [%s %s], want [r1 r3]", got[0].RecipeID, got[1].RecipeID)
	}
}
