package recommender

import (
	"context"
	"errors"
	"strings"

	"saborml/internal/models"
)

// Fakes en memoria de los colaboradores externos del motor.

var errMongoCaido = errors.New("mongo caído")

type fakeCatalog struct {
	recipes []models.RecipeDoc
	err     error

	// queries registradas, para verificar qué pidió cada estrategia
	byTagsCalls     [][]string
	byCategoryCalls []string
}

func (f *fakeCatalog) GetByID(_ context.Context, recipeID string) (*models.RecipeDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.recipes {
		if f.recipes[i].RecipeID == recipeID {
			return &f.recipes[i], nil
		}
	}
	return nil, nil
}

// ByTags emula el $in de Mongo: cualquier tag en común matchea.
func (f *fakeCatalog) ByTags(_ context.Context, tags []string, limit int) ([]models.RecipeDoc, error) {
	f.byTagsCalls = append(f.byTagsCalls, tags)
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		want[t] = struct{}{}
	}

	var out []models.RecipeDoc
	for _, rec := range f.recipes {
		if len(out) >= limit {
			break
		}
		for _, t := range rec.Tags {
			if _, ok := want[t]; ok {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCatalog) ByCategory(_ context.Context, category string, limit int) ([]models.RecipeDoc, error) {
	f.byCategoryCalls = append(f.byCategoryCalls, category)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RecipeDoc
	for _, rec := range f.recipes {
		if len(out) >= limit {
			break
		}
		if strings.EqualFold(rec.Category, category) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeCatalog) List(_ context.Context, page, pageSize int) ([]models.RecipeDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := page * pageSize
	if start >= len(f.recipes) {
		return []models.RecipeDoc{}, nil
	}
	end := start + pageSize
	if end > len(f.recipes) {
		end = len(f.recipes)
	}
	return f.recipes[start:end], nil
}

type fakeViews struct {
	views []models.ViewDoc
	err   error
}

func (f *fakeViews) RecentByUser(_ context.Context, userID string, limit int) ([]models.ViewDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ViewDoc
	for _, v := range f.views {
		if v.UserID != userID {
			continue
		}
		out = append(out, v)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeRatings struct {
	ratings []models.RatingDoc
	err     error
}

func (f *fakeRatings) GetAll(_ context.Context) ([]models.RatingDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ratings, nil
}

type fakePrefs struct {
	prefs models.UserPreferences
	err   error
}

func (f *fakePrefs) GetPreferences(_ context.Context, userID string) (models.UserPreferences, error) {
	if f.err != nil {
		return models.UserPreferences{}, f.err
	}
	return f.prefs, nil
}

func recipe(id, title, cuisine string, tags, diets []string) models.RecipeDoc {
	return models.RecipeDoc{
		RecipeID: id,
		Title:    title,
		Cuisine:  cuisine,
		Tags:     tags,
		Diets:    diets,
	}
}
