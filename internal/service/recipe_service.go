// internal/service/recipe_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"saborml/internal/models"
	"saborml/internal/repository"

	"github.com/google/uuid"
)

type RecipeService struct {
	recipes *repository.RecipeRepository
	views   *repository.ViewRepository
}

func NewRecipeService(r *repository.RecipeRepository, v *repository.ViewRepository) *RecipeService {
	return &RecipeService{recipes: r, views: v}
}

func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.RecipeDoc, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *RecipeService) Search(
	ctx context.Context,
	q, cuisine, tag string,
	limit, offset int,
) ([]models.RecipeDoc, error) {
	return s.recipes.Search(ctx, q, cuisine, tag, limit, offset)
}

func (s *RecipeService) Top(ctx context.Context, metric string, limit int) ([]models.RecipeDoc, error) {
	return s.recipes.Top(ctx, metric, limit)
}

func (s *RecipeService) Create(ctx context.Context, req models.RecipeCreateRequest) (*models.RecipeDoc, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	doc := &models.RecipeDoc{
		RecipeID:    uuid.NewString(),
		Title:       req.Title,
		Tags:        req.Tags,
		Diets:       req.Diets,
		Allergens:   req.Allergens,
		Cuisine:     req.Cuisine,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.recipes.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *RecipeService) Update(ctx context.Context, id string, req models.RecipeUpdateRequest) (*models.RecipeDoc, error) {
	doc, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("recipe %s no encontrada", id)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		doc.Title = *req.Title
	}
	if req.Tags != nil {
		doc.Tags = *req.Tags
	}
	if req.Diets != nil {
		doc.Diets = *req.Diets
	}
	if req.Allergens != nil {
		doc.Allergens = *req.Allergens
	}
	if req.Cuisine != nil {
		doc.Cuisine = *req.Cuisine
	}
	if req.Category != nil {
		doc.Category = *req.Category
	}
	if req.CategoryID != nil {
		doc.CategoryID = *req.CategoryID
	}
	if req.CookingTime != nil {
		doc.CookingTime = *req.CookingTime
	}
	if req.Ingredients != nil {
		doc.Ingredients = *req.Ingredients
	}

	doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.recipes.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// RecordView registra la vista en el historial (alimenta el content-based)
// y suma al contador de popularidad de la receta.
func (s *RecipeService) RecordView(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return fmt.Errorf("recipe %s no encontrada", recipeID)
	}

	if err := s.views.Insert(ctx, userID, recipeID); err != nil {
		return err
	}
	return s.recipes.IncrementViewCount(ctx, recipeID)
}
