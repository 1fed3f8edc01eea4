package service

import (
	"context"
	"fmt"
	"time"

	"saborml/internal/models"
	"saborml/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
	recipes *repository.RecipeRepository
}

func NewRatingService(r *repository.RatingRepository, rec *repository.RecipeRepository) *RatingService {
	return &RatingService{
		ratings: r,
		recipes: rec,
	}
}

func (s *RatingService) AddOrUpdate(ctx context.Context, userID, recipeID string, rating float64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating debe estar entre 1 y 5")
	}

	// 1) Ver si ya existía un rating previo
	prev, err := s.ratings.GetOne(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	// 2) Upsert del rating (guarda timestamp como epoch)
	if err := s.ratings.UpsertRating(ctx, userID, recipeID, rating); err != nil {
		return err
	}

	// 3) Actualizar stats de la receta
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return fmt.Errorf("recipe %s no encontrada", recipeID)
	}

	// Aseguramos estructura de ratingStats
	if recipe.RatingStats == nil {
		recipe.RatingStats = &models.RatingStats{
			Average: 0,
			Count:   0,
		}
	}
	rs := recipe.RatingStats

	if !existedBefore {
		// Nuevo rating
		total := rs.Average*float64(rs.Count) + rating
		rs.Count++
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
	} else {
		// Update de rating existente
		total := rs.Average*float64(rs.Count) - prev.Rating + rating
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
		// rs.Count no cambia
	}

	nowStr := time.Now().Format(time.RFC3339)
	rs.LastRatedAt = nowStr
	recipe.UpdatedAt = nowStr

	return s.recipes.Update(ctx, recipe)
}

func (s *RatingService) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
