package recommender

import (
	"context"
	"errors"
	"testing"

	"saborml/internal/models"
)

// hiperparámetros más agresivos que los de producción para que el modelo
// converja rápido en datasets de juguete
func testMFOptions() MFOptions {
	return MFOptions{Factors: 8, Epochs: 60, LearningRate: 0.05, Regularization: 0.02}
}

func TestCollaborativeSinRatings(t *testing.T) {
	ctx := context.Background()
	collab := NewCollaborative(&fakeRatings{}, &fakeCatalog{}, 200, testMFOptions())

	got, err := collab.Recommend(ctx, "u1", 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("sin ratings debería devolver vacío, got %v", got)
	}
}

func TestCollaborativeColdStart(t *testing.T) {
	ctx := context.Background()
	ratings := &fakeRatings{ratings: []models.RatingDoc{
		{UserID: "otro", RecipeID: "r1", Rating: 5},
	}}
	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		recipe("r1", "Receta uno", "x", nil, nil),
	}}
	collab := NewCollaborative(ratings, catalog, 200, testMFOptions())

	got, err := collab.Recommend(ctx, "nuevo", 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("usuario sin ratings no puede puntuarse, got %v", got)
	}
}

func TestCollaborativePropagaErrorDeRatings(t *testing.T) {
	ctx := context.Background()
	ratings := &fakeRatings{err: errors.New("mongo caído")}
	collab := NewCollaborative(ratings, &fakeCatalog{}, 200, testMFOptions())

	if _, err := collab.Recommend(ctx, "u1", 6); err == nil {
		t.Fatal("esperaba error cuando la fuente de ratings falla")
	}
}

func TestCollaborativeOrdenaPorPrediccion(t *testing.T) {
	ctx := context.Background()

	// u1 amó rx y odió ry; varios usuarios coinciden para darle señal
	// al modelo.
	ratings := &fakeRatings{ratings: []models.RatingDoc{
		{UserID: "u1", RecipeID: "rx", Rating: 5},
		{UserID: "u1", RecipeID: "ry", Rating: 1},
		{UserID: "u2", RecipeID: "rx", Rating: 5},
		{UserID: "u2", RecipeID: "ry", Rating: 1},
		{UserID: "u3", RecipeID: "rx", Rating: 4},
		{UserID: "u3", RecipeID: "ry", Rating: 2},
	}}
	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		recipe("ry", "Receta y", "x", nil, nil),
		recipe("rx", "Receta x", "x", nil, nil),
		recipe("sin-ratings", "Nunca puntuada", "x", nil, nil),
	}}
	collab := NewCollaborative(ratings, catalog, 200, testMFOptions())

	got, err := collab.Recommend(ctx, "u1", 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// la receta sin ratings no entró al entrenamiento y queda afuera
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(got), got)
	}
	if got[0].RecipeID != "rx" || got[1].RecipeID != "ry" {
		t.Errorf("orden = [%s %s], want [rx ry]", got[0].RecipeID, got[1].RecipeID)
	}
}

func TestCollaborativeEsDeterminista(t *testing.T) {
	ctx := context.Background()

	ratings := &fakeRatings{ratings: []models.RatingDoc{
		{UserID: "u1", RecipeID: "ra", Rating: 4},
		{UserID: "u1", RecipeID: "rb", Rating: 3},
		{UserID: "u2", RecipeID: "ra", Rating: 5},
		{UserID: "u2", RecipeID: "rc", Rating: 2},
	}}
	catalog := &fakeCatalog{recipes: []models.RecipeDoc{
		recipe("ra", "A", "x", nil, nil),
		recipe("rb", "B", "x", nil, nil),
		recipe("rc", "C", "x", nil, nil),
	}}
	collab := NewCollaborative(ratings, catalog, 200, testMFOptions())

	first, err := collab.Recommend(ctx, "u1", 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := collab.Recommend(ctx, "u1", 6)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("len distinto entre corridas: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RecipeID != second[i].RecipeID {
			t.Errorf("posición %d: %s vs %s", i, first[i].RecipeID, second[i].RecipeID)
		}
	}
}

func TestCollaborativeRespetaLimite(t *testing.T) {
	ctx := context.Background()

	var docs []models.RecipeDoc
	var rts []models.RatingDoc
	for _, id := range []string{"r1", "r2", "r3", "r4"} {
		docs = append(docs, recipe(id, "Receta "+id, "x", nil, nil))
		rts = append(rts, models.RatingDoc{UserID: "u1", RecipeID: id, Rating: 4})
	}
	collab := NewCollaborative(&fakeRatings{ratings: rts}, &fakeCatalog{recipes: docs}, 200, testMFOptions())

	got, err := collab.Recommend(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
