package service

import (
	"context"
	"log"
	"time"

	"saborml/internal/config"
	"saborml/internal/models"
	"saborml/internal/recommender"
	"saborml/internal/repository"
)

// CacheStore es el store del motor más el Delete que usa el bust manual
// de cache (Redis y memoria lo implementan).
type CacheStore interface {
	recommender.Store
	Delete(ctx context.Context, key string) error
}

// RecommendService arma el motor a partir de los repos y expone el flujo
// híbrido (orquestador), la estrategia contextual y el historial.
type RecommendService struct {
	orch       *recommender.Orchestrator
	contextual *recommender.Contextual
	prefs      recommender.PreferenceSource
	recRepo    *repository.RecommendationRepository
	store      CacheStore
	cfg        *config.Config
}

func NewRecommendService(
	cfg *config.Config,
	users *repository.UserRepository,
	recipes *repository.RecipeRepository,
	ratings *repository.RatingRepository,
	views *repository.ViewRepository,
	recRepo *repository.RecommendationRepository,
	store CacheStore,
) *RecommendService {
	content := recommender.NewContentBased(recipes, views, cfg.RecHistoryLimit, cfg.RecCatalogPageSize)
	collab := recommender.NewCollaborative(ratings, recipes, cfg.RecCatalogPageSize, recommender.MFOptions{
		Factors:        cfg.RecFactors,
		Epochs:         cfg.RecEpochs,
		LearningRate:   cfg.RecLearningRate,
		Regularization: cfg.RecRegularization,
	})
	agg := recommender.NewAggregator(recommender.Weights{
		Content:       cfg.RecWeightContent,
		Collaborative: cfg.RecWeightCollab,
		Popularity:    cfg.RecWeightPopularity,
	})
	cache := recommender.NewResultCache(store, time.Duration(cfg.RecCacheTTLSeconds)*time.Second)

	return &RecommendService{
		orch:       recommender.NewOrchestrator(users, content, collab, agg, cache),
		contextual: recommender.NewContextual(recipes),
		prefs:      users,
		recRepo:    recRepo,
		store:      store,
		cfg:        cfg,
	}
}

// Recommend corre el orquestador y, si hubo cómputo real (hay métricas),
// guarda el historial en Mongo. No rompemos la respuesta si falla.
func (s *RecommendService) Recommend(ctx context.Context, req recommender.Request) (*recommender.Result, error) {
	res, err := s.orch.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.Metrics != nil && s.recRepo != nil {
		ids := make([]string, 0, len(res.Recommendations))
		for _, rec := range res.Recommendations {
			ids = append(ids, rec.RecipeID)
		}

		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   "hybrid-mf-content",
			Params: map[string]any{
				"limit":   req.Limit,
				"refresh": req.Refresh,
				"factors": s.cfg.RecFactors,
				"epochs":  s.cfg.RecEpochs,
				"weights": map[string]float64{
					"content":    s.cfg.RecWeightContent,
					"collab":     s.cfg.RecWeightCollab,
					"popularity": s.cfg.RecWeightPopularity,
				},
			},
			RecipeIDs: ids,
			Metrics:   res.Metrics,
			CreatedAt: time.Now(),
		}

		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	return res, nil
}

// Contextual es la estrategia por hora/estación, fuera del flujo híbrido.
func (s *RecommendService) Contextual(ctx context.Context, userID string, limit int) ([]models.RecipeDoc, error) {
	if limit <= 0 {
		limit = recommender.DefaultLimit
	} else if limit > recommender.MaxLimit {
		limit = recommender.MaxLimit
	}

	prefs, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		log.Printf("[recommend] error leyendo preferencias de %s, sigo sin restricciones: %v", userID, err)
		prefs = models.UserPreferences{UserID: userID}
	}

	return s.contextual.Recommend(ctx, prefs, limit)
}

func (s *RecommendService) History(ctx context.Context, userID string, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}

// BustCache borra la entrada cacheada del usuario: es el gancho manual de
// invalidación, ya que un cambio de ratings/preferencias no invalida solo.
func (s *RecommendService) BustCache(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, recommender.CacheKey(userID))
}
