package service

import (
	"context"

	"saborml/internal/models"
	"saborml/internal/repository"
)

// AdminMaintenanceService responde cuánta cobertura tiene el motor:
// cuántas recetas pueden entrar al entrenamiento colaborativo y cuántas
// quedan en cold start.
type AdminMaintenanceService struct {
	recipes *repository.RecipeRepository
	ratings *repository.RatingRepository
}

func NewAdminMaintenanceService(r *repository.RecipeRepository, ra *repository.RatingRepository) *AdminMaintenanceService {
	return &AdminMaintenanceService{recipes: r, ratings: ra}
}

func (s *AdminMaintenanceService) Summary(ctx context.Context) (*models.AdminRecommendSummary, error) {
	totalRecipes, err := s.recipes.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	usersWithRatings, err := s.ratings.DistinctUsers(ctx)
	if err != nil {
		return nil, err
	}
	recipesRated, err := s.ratings.DistinctRecipes(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminRecommendSummary{
		TotalRecipes:     totalRecipes,
		TotalRatings:     totalRatings,
		UsersWithRatings: usersWithRatings,
		RecipesRated:     recipesRated,
		RecipesUnrated:   totalRecipes - recipesRated,
	}, nil
}
