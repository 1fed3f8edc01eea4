package recommender

import (
	"context"
	"testing"
	"time"

	"saborml/internal/cache"
	"saborml/internal/models"
)

func TestResultCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	rc := NewResultCache(cache.NewMemoryStore(), time.Minute)

	if _, ok := rc.Get(ctx, "u1"); ok {
		t.Fatal("cache vacío no debería dar hit")
	}

	recs := []models.RecipeDoc{
		recipe("r1", "Wok de verduras", "asian", []string{"quick"}, []string{"vegan"}),
		recipe("r2", "Sopa de calabaza", "argentine", []string{"winter"}, nil),
	}
	rc.Set(ctx, "u1", recs)

	got, ok := rc.Get(ctx, "u1")
	if !ok {
		t.Fatal("esperaba hit después del Set")
	}
	if len(got) != 2 || got[0].RecipeID != "r1" || got[1].RecipeID != "r2" {
		t.Errorf("got %v, want [r1 r2]", got)
	}

	// la entrada de otro usuario no existe
	if _, ok := rc.Get(ctx, "u2"); ok {
		t.Error("claves de usuarios distintos no deben mezclarse")
	}
}

func TestResultCacheEntradaCorruptaEsMiss(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	rc := NewResultCache(store, time.Minute)

	if err := store.Set(ctx, CacheKey("u1"), []byte("{esto no es json"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok := rc.Get(ctx, "u1"); ok {
		t.Error("una entrada corrupta debe tratarse como miss")
	}
}

func TestResultCacheExpiraPorTTL(t *testing.T) {
	ctx := context.Background()
	rc := NewResultCache(cache.NewMemoryStore(), 10*time.Millisecond)

	rc.Set(ctx, "u1", []models.RecipeDoc{recipe("r1", "Receta", "x", nil, nil)})
	time.Sleep(30 * time.Millisecond)

	if _, ok := rc.Get(ctx, "u1"); ok {
		t.Error("la entrada debería haber expirado")
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey("abc-123"); got != "rec:user:abc-123" {
		t.Errorf("CacheKey = %q", got)
	}
}
