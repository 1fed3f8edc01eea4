package repository

import (
	"context"
	"time"

	"saborml/internal/db"
	"saborml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// UpsertRating: un usuario valora una receta a lo sumo una vez; si
// re-valora, pisa el rating anterior (latest write wins).
func (r *RatingRepository) UpsertRating(ctx context.Context, userID, recipeID string, rating float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "recipeId": recipeID},
		bson.M{"$set": bson.M{
			"rating": rating,
			// guardamos epoch (int64)
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(ctx context.Context, userID, recipeID string) (*models.RatingDoc, error) {
	var rd models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "recipeId": recipeID}).Decode(&rd)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rd, err
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRatings(ctx, cur)
}

// GetAll devuelve el conjunto completo de ratings de todos los usuarios.
// Es lo que consume el entrenamiento colaborativo en cada request.
func (r *RatingRepository) GetAll(ctx context.Context) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeRatings(ctx, cur)
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// DistinctUsers / DistinctRecipes sirven para el resumen admin de
// cobertura del motor.
func (r *RatingRepository) DistinctUsers(ctx context.Context) (int64, error) {
	vals, err := r.col.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(vals)), nil
}

func (r *RatingRepository) DistinctRecipes(ctx context.Context) (int64, error) {
	vals, err := r.col.Distinct(ctx, "recipeId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(vals)), nil
}

func decodeRatings(ctx context.Context, cur *mongo.Cursor) ([]models.RatingDoc, error) {
	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}
