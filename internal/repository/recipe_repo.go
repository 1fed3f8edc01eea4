// internal/repository/recipe_repo.go
package repository

import (
	"context"

	"saborml/internal/db"
	"saborml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{col: db.DB().Collection("recipes")}
}

func (r *RecipeRepository) GetByID(ctx context.Context, recipeID string) (*models.RecipeDoc, error) {
	var m models.RecipeDoc
	err := r.col.FindOne(ctx, bson.M{"recipeId": recipeID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

// ByTags devuelve recetas que contengan al menos uno de los tags.
func (r *RecipeRepository) ByTags(ctx context.Context, tags []string, limit int) ([]models.RecipeDoc, error) {
	if len(tags) == 0 {
		return []models.RecipeDoc{}, nil
	}
	cur, err := r.col.Find(ctx,
		bson.M{"tags": bson.M{"$in": tags}},
		options.Find().SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRecipes(ctx, cur)
}

// ByCategory busca por nombre de categoría (sin distinguir mayúsculas).
func (r *RecipeRepository) ByCategory(ctx context.Context, category string, limit int) ([]models.RecipeDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"category": bson.M{"$regex": "^" + category + "$", "$options": "i"}},
		options.Find().SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRecipes(ctx, cur)
}

// List pagina el catálogo completo en orden estable por recipeId.
func (r *RecipeRepository) List(ctx context.Context, page, pageSize int) ([]models.RecipeDoc, error) {
	if page < 0 {
		page = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "recipeId", Value: 1}}).
		SetSkip(int64(page * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRecipes(ctx, cur)
}

func (r *RecipeRepository) Search(
	ctx context.Context,
	q string,
	cuisine string,
	tag string,
	limit, offset int,
) ([]models.RecipeDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}
	if cuisine != "" {
		filter["cuisine"] = cuisine
	}
	if tag != "" {
		// tags es un array, esto busca que contenga ese tag
		filter["tags"] = tag
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRecipes(ctx, cur)
}

// Top por popularidad (views) o rating promedio
func (r *RecipeRepository) Top(ctx context.Context, metric string, limit int) ([]models.RecipeDoc, error) {
	sortField := "viewCount" // popular
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRecipes(ctx, cur)
}

func (r *RecipeRepository) Insert(ctx context.Context, m *models.RecipeDoc) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *RecipeRepository) Update(ctx context.Context, m *models.RecipeDoc) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"recipeId": m.RecipeID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *RecipeRepository) IncrementViewCount(ctx context.Context, recipeID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"recipeId": recipeID},
		bson.M{"$inc": bson.M{"viewCount": 1}},
	)
	return err
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func decodeRecipes(ctx context.Context, cur *mongo.Cursor) ([]models.RecipeDoc, error) {
	var out []models.RecipeDoc
	for cur.Next(ctx) {
		var m models.RecipeDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
