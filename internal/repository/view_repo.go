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

type ViewRepository struct {
	col *mongo.Collection
}

func NewViewRepository() *ViewRepository {
	return &ViewRepository{col: db.DB().Collection("views")}
}

func (r *ViewRepository) Insert(ctx context.Context, userID, recipeID string) error {
	_, err := r.col.InsertOne(ctx, models.ViewDoc{
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: time.Now().Unix(),
	})
	return err
}

// RecentByUser devuelve el historial acotado, lo más reciente primero.
func (r *ViewRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]models.ViewDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "viewedAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ViewDoc
	for cur.Next(ctx) {
		var v models.ViewDoc
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}
