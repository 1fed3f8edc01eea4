package recommender

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"conjuntos idénticos", []string{"quick", "vegan"}, []string{"quick", "vegan"}, 1.0},
		{"a vacío", nil, []string{"quick"}, 0},
		{"b vacío", []string{"quick"}, nil, 0},
		{"ambos vacíos", nil, nil, 0},
		{"sin intersección", []string{"meat"}, []string{"vegan"}, 0},
		{"intersección parcial", []string{"quick", "vegan"}, []string{"quick"}, 1.0 / math.Sqrt(2)},
		{"case-insensitive y duplicados", []string{"Quick", "quick", "VEGAN"}, []string{"quick", "vegan"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("CosineSimilarity(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
			// simétrica
			if rev := CosineSimilarity(tt.b, tt.a); math.Abs(rev-got) > eps {
				t.Errorf("no es simétrica: %f vs %f", got, rev)
			}
		})
	}
}

func TestJaccardDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"ambos vacíos = máxima distancia", nil, nil, 1.0},
		{"idénticos", []string{"harina", "agua"}, []string{"harina", "agua"}, 0.0},
		{"disjuntos", []string{"harina"}, []string{"agua"}, 1.0},
		{"mitad compartida", []string{"harina", "agua"}, []string{"harina", "sal"}, 1.0 - 1.0/3.0},
		{"uno vacío", nil, []string{"sal"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("JaccardDistance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"mitad del rango", 500, 0, 1000, 0.5},
		{"debajo del mínimo clampa a 0", -10, 0, 100, 0},
		{"encima del máximo clampa a 1", 2000, 0, 1000, 1},
		{"rango degenerado", 5, 10, 10, 0},
		{"max menor que min", 5, 10, 0, 0},
		{"en el mínimo", 0, 0, 100, 0},
		{"en el máximo", 100, 0, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value, tt.min, tt.max)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Normalize(%g, %g, %g) = %f, want %f", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
