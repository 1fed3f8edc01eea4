package recommender

import (
	"context"
	"sort"

	"saborml/internal/models"
)

// tope de páginas al recorrer el catálogo, por si pageSize quedó chico
const maxCatalogPages = 100

// denseIndex mapea ids tipo UUID a enteros contiguos. Se reconstruye en
// cada entrenamiento a partir de los ids observados en los ratings:
// un id ausente del entrenamiento no tiene índice y no puede puntuarse.
type denseIndex struct {
	idx map[string]int
	ids []string
}

func newDenseIndex() *denseIndex {
	return &denseIndex{idx: make(map[string]int)}
}

func (d *denseIndex) add(id string) int {
	if i, ok := d.idx[id]; ok {
		return i
	}
	i := len(d.ids)
	d.idx[id] = i
	d.ids = append(d.ids, id)
	return i
}

func (d *denseIndex) lookup(id string) (int, bool) {
	i, ok := d.idx[id]
	return i, ok
}

func (d *denseIndex) size() int { return len(d.ids) }

// Collaborative ajusta un modelo de factores latentes sobre la matriz
// rala de ratings y puntúa el catálogo para el usuario objetivo.
// El modelo se reajusta en cada invocación: no hay estado persistido
// entre requests.
type Collaborative struct {
	ratings  RatingSource
	catalog  Catalog
	pageSize int
	opts     MFOptions
}

func NewCollaborative(ratings RatingSource, catalog Catalog, pageSize int, opts MFOptions) *Collaborative {
	if pageSize <= 0 {
		pageSize = 200
	}
	return &Collaborative{
		ratings:  ratings,
		catalog:  catalog,
		pageSize: pageSize,
		opts:     opts,
	}
}

func (r *Collaborative) Recommend(ctx context.Context, userID string, limit int) ([]models.RecipeDoc, error) {
	all, err := r.ratings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return []models.RecipeDoc{}, nil
	}

	// índices densos independientes para usuarios y recetas
	userIdx := newDenseIndex()
	itemIdx := newDenseIndex()
	for _, rt := range all {
		userIdx.add(rt.UserID)
		itemIdx.add(rt.RecipeID)
	}

	// cold start: a un usuario sin índice no se le intenta predecir nada
	uIdx, ok := userIdx.lookup(userID)
	if !ok {
		return []models.RecipeDoc{}, nil
	}

	triples := make([]ratingTriple, 0, len(all))
	for _, rt := range all {
		u, _ := userIdx.lookup(rt.UserID)
		i, _ := itemIdx.lookup(rt.RecipeID)
		triples = append(triples, ratingTriple{user: u, item: i, rating: rt.Rating})
	}

	model := fitMF(triples, userIdx.size(), itemIdx.size(), r.opts)

	// recorrer el catálogo paginado y puntuar solo lo entrenado
	var scored []scoredRecipe
	for page := 0; page < maxCatalogPages; page++ {
		docs, err := r.catalog.List(ctx, page, r.pageSize)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			iIdx, ok := itemIdx.lookup(doc.RecipeID)
			if !ok {
				continue // receta no vista en entrenamiento
			}
			scored = append(scored, scoredRecipe{
				recipe: doc,
				score:  model.predict(uIdx, iIdx),
			})
		}

		if len(docs) < r.pageSize {
			break
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]models.RecipeDoc, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.recipe)
	}
	return out, nil
}
