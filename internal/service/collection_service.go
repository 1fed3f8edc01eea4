package service

import (
	"context"
	"fmt"
	"time"

	"saborml/internal/models"
	"saborml/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollectionService struct {
	collections *repository.CollectionRepository
	recipes     *repository.RecipeRepository
}

func NewCollectionService(c *repository.CollectionRepository, r *repository.RecipeRepository) *CollectionService {
	return &CollectionService{collections: c, recipes: r}
}

func (s *CollectionService) Create(ctx context.Context, userID, name string) (*models.CollectionDoc, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	doc := &models.CollectionDoc{
		UserID:    userID,
		Name:      name,
		RecipeIDs: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.collections.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

func (s *CollectionService) ListMine(ctx context.Context, userID string) ([]models.CollectionDoc, error) {
	return s.collections.FindByUser(ctx, userID)
}

// findOwned valida que la colección exista y pertenezca al usuario.
func (s *CollectionService) findOwned(ctx context.Context, userID, collectionID string) (*models.CollectionDoc, error) {
	oid, err := primitive.ObjectIDFromHex(collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection id inválido")
	}
	c, err := s.collections.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, fmt.Errorf("collection no encontrada")
	}
	return c, nil
}

func (s *CollectionService) AddRecipe(ctx context.Context, userID, collectionID, recipeID string) error {
	c, err := s.findOwned(ctx, userID, collectionID)
	if err != nil {
		return err
	}

	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return fmt.Errorf("recipe %s no encontrada", recipeID)
	}

	return s.collections.AddRecipe(ctx, c.ID, recipeID, time.Now())
}

func (s *CollectionService) RemoveRecipe(ctx context.Context, userID, collectionID, recipeID string) error {
	c, err := s.findOwned(ctx, userID, collectionID)
	if err != nil {
		return err
	}
	return s.collections.RemoveRecipe(ctx, c.ID, recipeID, time.Now())
}

func (s *CollectionService) Delete(ctx context.Context, userID, collectionID string) error {
	c, err := s.findOwned(ctx, userID, collectionID)
	if err != nil {
		return err
	}
	return s.collections.Delete(ctx, c.ID)
}
