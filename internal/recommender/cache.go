package recommender

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"saborml/internal/models"
)

const DefaultCacheTTL = time.Hour

// ResultCache es el cache read-through de listas de recomendaciones,
// clave por usuario. No hay invalidación explícita cuando cambian ratings
// o preferencias: la staleness dentro del TTL es un trade-off aceptado
// (el bust manual queda del lado admin).
type ResultCache struct {
	store Store
	ttl   time.Duration
}

func NewResultCache(store Store, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{store: store, ttl: ttl}
}

func CacheKey(userID string) string {
	return "rec:user:" + userID
}

// Get devuelve (lista, true) en hit. Una entrada corrupta se trata como
// miss y dispara el recómputo completo.
func (c *ResultCache) Get(ctx context.Context, userID string) ([]models.RecipeDoc, bool) {
	raw, ok, err := c.store.Get(ctx, CacheKey(userID))
	if err != nil || !ok {
		return nil, false
	}

	var recs []models.RecipeDoc
	if err := json.Unmarshal(raw, &recs); err != nil {
		log.Printf("[cache] entrada corrupta para %s, se recalcula: %v", userID, err)
		return nil, false
	}
	return recs, true
}

func (c *ResultCache) Set(ctx context.Context, userID string, recs []models.RecipeDoc) {
	raw, err := json.Marshal(recs)
	if err != nil {
		log.Printf("[cache] error serializando recomendaciones de %s: %v", userID, err)
		return
	}
	if err := c.store.Set(ctx, CacheKey(userID), raw, c.ttl); err != nil {
		log.Printf("[cache] error cacheando recomendaciones de %s: %v", userID, err)
	}
}
