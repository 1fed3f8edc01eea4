package recommender

import (
	"math"
	"strings"
)

// Funciones puras de similitud sobre conjuntos de strings (tags, cuisines,
// ingredientes). Los slices de entrada se tratan como conjuntos: se
// deduplican y se comparan sin distinguir mayúsculas.

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for v := range a {
		if _, ok := b[v]; ok {
			n++
		}
	}
	return n
}

// CosineSimilarity = |A∩B| / sqrt(|A|·|B|). Devuelve 0 si alguno de los
// conjuntos está vacío (evita división por cero). Simétrica, rango [0,1].
func CosineSimilarity(a, b []string) float64 {
	sa, sb := toSet(a), toSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := intersectionSize(sa, sb)
	return float64(inter) / math.Sqrt(float64(len(sa))*float64(len(sb)))
}

// JaccardDistance = 1 - |A∩B|/|A∪B|. Con ambos conjuntos vacíos devuelve
// 1.0: sin estructura compartida no se puede inferir ninguna similitud.
func JaccardDistance(a, b []string) float64 {
	sa, sb := toSet(a), toSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	inter := intersectionSize(sa, sb)
	union := len(sa) + len(sb) - inter
	return 1.0 - float64(inter)/float64(union)
}

// Normalize lleva (value-min)/(max-min) al rango [0,1] con clamp.
func Normalize(value, min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := (value - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
