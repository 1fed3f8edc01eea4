package recommender

import (
	"context"
	"log"
	"sync"

	"saborml/internal/models"
)

const (
	DefaultLimit = 6
	MaxLimit     = 50 // por seguridad, no deja pedir 1000 recetas
)

// Request: solo los parámetros que sí cambian en runtime.
type Request struct {
	UserID  string
	Limit   int
	Refresh bool
}

// Orchestrator es el único punto de entrada del motor: cache, señales,
// agregación y write-through.
type Orchestrator struct {
	prefs   PreferenceSource
	content *ContentBased
	collab  *Collaborative
	agg     *Aggregator
	cache   *ResultCache
}

func NewOrchestrator(
	prefs PreferenceSource,
	content *ContentBased,
	collab *Collaborative,
	agg *Aggregator,
	cache *ResultCache,
) *Orchestrator {
	return &Orchestrator{
		prefs:   prefs,
		content: content,
		collab:  collab,
		agg:     agg,
		cache:   cache,
	}
}

// Recommend coordina el flujo completo. En hit de cache devuelve la lista
// cacheada sin métricas y sin ningún otro cómputo. En miss: preferencias
// (con default vacío si el colaborador falla), content-based y
// colaborativo en paralelo, agregación, write-through.
func (o *Orchestrator) Recommend(ctx context.Context, req Request) (*Result, error) {
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	} else if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}

	// 1) Cache (solo si refresh = false)
	if !req.Refresh {
		if recs, ok := o.cache.Get(ctx, req.UserID); ok {
			return &Result{Recommendations: recs}, nil
		}
	}

	// 2) Preferencias: si el colaborador falla, seguimos sin restricciones
	prefs, err := o.prefs.GetPreferences(ctx, req.UserID)
	if err != nil {
		log.Printf("[orchestrator] error leyendo preferencias de %s, sigo sin restricciones: %v", req.UserID, err)
		prefs = models.UserPreferences{UserID: req.UserID}
	}

	// 3) Las dos señales en paralelo: no dependen una de la otra, pero
	// ambas deben terminar antes de agregar.
	var (
		wg          sync.WaitGroup
		contentRecs []models.RecipeDoc
		collabRecs  []models.RecipeDoc
		collabErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		contentRecs, _ = o.content.Recommend(ctx, req.UserID, prefs, req.Limit)
	}()
	go func() {
		defer wg.Done()
		collabRecs, collabErr = o.collab.Recommend(ctx, req.UserID, req.Limit)
	}()
	wg.Wait()

	if collabErr != nil {
		// una señal degradada no es error de usuario... salvo que no
		// quede nada que servir (catálogo caído): eso sí es un 5xx.
		if len(contentRecs) == 0 {
			return nil, collabErr
		}
		log.Printf("[orchestrator] señal colaborativa caída para %s, sigo con content-based: %v", req.UserID, collabErr)
		collabRecs = nil
	}

	// 4) Merge + ranking + métricas
	ranked, metrics := o.agg.Aggregate(contentRecs, collabRecs, prefs, req.Limit)

	// 5) Write-through (no rompemos la respuesta si falla)
	o.cache.Set(ctx, req.UserID, ranked)

	return &Result{Recommendations: ranked, Metrics: metrics}, nil
}
