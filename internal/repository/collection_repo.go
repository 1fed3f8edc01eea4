package repository

import (
	"context"

	"saborml/internal/db"
	"saborml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CollectionRepository struct {
	col *mongo.Collection
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{col: db.DB().Collection("collections")}
}

func (r *CollectionRepository) Insert(ctx context.Context, c *models.CollectionDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *CollectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CollectionDoc, error) {
	var c models.CollectionDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}

func (r *CollectionRepository) FindByUser(ctx context.Context, userID string) ([]models.CollectionDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CollectionDoc
	for cur.Next(ctx) {
		var c models.CollectionDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

// AddRecipe agrega sin duplicar; RemoveRecipe saca todas las ocurrencias.
func (r *CollectionRepository) AddRecipe(ctx context.Context, id primitive.ObjectID, recipeID string, updatedAt any) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"recipeIds": recipeID},
			"$set":      bson.M{"updatedAt": updatedAt},
		},
	)
	return err
}

func (r *CollectionRepository) RemoveRecipe(ctx context.Context, id primitive.ObjectID, recipeID string, updatedAt any) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"recipeIds": recipeID},
			"$set":  bson.M{"updatedAt": updatedAt},
		},
	)
	return err
}

func (r *CollectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
