package recommender

import "math/rand"

// Factorización de matrices por SGD sobre la matriz rala usuario×receta.
// Los hiperparámetros son constantes de configuración, no se derivan por
// request.

type MFOptions struct {
	Factors        int
	Epochs         int
	LearningRate   float64
	Regularization float64
}

func (o MFOptions) withDefaults() MFOptions {
	if o.Factors <= 0 {
		o.Factors = 10
	}
	if o.Epochs <= 0 {
		o.Epochs = 40
	}
	if o.LearningRate <= 0 {
		o.LearningRate = 0.01
	}
	if o.Regularization <= 0 {
		o.Regularization = 0.05
	}
	return o
}

// (uIdx, iIdx, rating) ya mapeado a índices densos
type ratingTriple struct {
	user   int
	item   int
	rating float64
}

type mfModel struct {
	userFactors [][]float64
	itemFactors [][]float64
}

// fitMF entrena el modelo de factores latentes. La semilla es fija para
// que el mismo conjunto de ratings produzca siempre el mismo ranking.
func fitMF(triples []ratingTriple, users, items int, opt MFOptions) *mfModel {
	opt = opt.withDefaults()
	rng := rand.New(rand.NewSource(1))

	m := &mfModel{
		userFactors: randomFactors(rng, users, opt.Factors),
		itemFactors: randomFactors(rng, items, opt.Factors),
	}

	for epoch := 0; epoch < opt.Epochs; epoch++ {
		for _, t := range triples {
			pu := m.userFactors[t.user]
			qi := m.itemFactors[t.item]

			errv := t.rating - dot(pu, qi)

			for f := 0; f < opt.Factors; f++ {
				du := errv*qi[f] - opt.Regularization*pu[f]
				di := errv*pu[f] - opt.Regularization*qi[f]
				pu[f] += opt.LearningRate * du
				qi[f] += opt.LearningRate * di
			}
		}
	}
	return m
}

// predict devuelve el producto punto crudo, sin normalizar: el agregador
// es quien lleva los scores a [0,1].
func (m *mfModel) predict(user, item int) float64 {
	return dot(m.userFactors[user], m.itemFactors[item])
}

func randomFactors(rng *rand.Rand, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		row := make([]float64, cols)
		for f := range row {
			row[f] = (rng.Float64() - 0.5) * 0.1
		}
		out[i] = row
	}
	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := 0; i < len(a); i++ {
		s += a[i] * b[i]
	}
	return s
}
