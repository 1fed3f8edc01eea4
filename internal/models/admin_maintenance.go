package models

// AdminRecommendSummary representa el resumen de cobertura del motor:
// cuánto catálogo y cuántos usuarios pueden recibir predicciones colaborativas.
type AdminRecommendSummary struct {
	TotalRecipes     int64 `json:"totalRecipes"`
	TotalRatings     int64 `json:"totalRatings"`
	UsersWithRatings int64 `json:"usersWithRatings"`
	RecipesRated     int64 `json:"recipesRated"`
	RecipesUnrated   int64 `json:"recipesUnrated"` // cold start: sin índice denso posible
}
