package recommender

import (
	"strings"

	"saborml/internal/models"
)

// FilterByPreferences filtra candidatas contra las preferencias del usuario
// preservando el orden de entrada. Una candidata pasa cuando:
//
//	(a) el usuario no tiene preferencias dietéticas, O todas sus
//	    preferencias aparecen en los diets de la receta (AND estricto), Y
//	(b) ningún alérgeno del usuario aparece como substring (sin distinguir
//	    mayúsculas) del título.
//
// El chequeo de alérgenos por título es deliberadamente conservador y
// aproximado; matchear contra la lista de ingredientes sería más preciso.
func FilterByPreferences(candidates []models.RecipeDoc, prefs models.UserPreferences) []models.RecipeDoc {
	out := make([]models.RecipeDoc, 0, len(candidates))

	for _, c := range candidates {
		if !satisfiesDiets(c.Diets, prefs.DietaryPreferences) {
			continue
		}
		if titleContainsAllergen(c.Title, prefs.Allergens) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func satisfiesDiets(diets, wanted []string) bool {
	if len(wanted) == 0 {
		return true // sin preferencias = sin restricción
	}
	have := toSet(diets)
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}

func titleContainsAllergen(title string, allergens []string) bool {
	lower := strings.ToLower(title)
	for _, a := range allergens {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if strings.Contains(lower, a) {
			return true
		}
	}
	return false
}
