package models

type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

// RecipeDoc es la forma única de receta que comparten catálogo y motor
// de recomendaciones. El motor nunca la muta: es un snapshot de lectura.
type RecipeDoc struct {
	RecipeID    string       `json:"recipeId" bson:"recipeId"`
	Title       string       `json:"title" bson:"title"`
	Tags        []string     `json:"tags" bson:"tags"`
	Diets       []string     `json:"diets,omitempty" bson:"diets,omitempty"`
	Allergens   []string     `json:"allergens,omitempty" bson:"allergens,omitempty"`
	Cuisine     string       `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	Category    string       `json:"category,omitempty" bson:"category,omitempty"`
	CategoryID  string       `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	CookingTime int          `json:"cookingTime,omitempty" bson:"cookingTime,omitempty"` // minutos
	Ingredients []string     `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	ViewCount   int          `json:"viewCount" bson:"viewCount"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt   string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string       `json:"updatedAt" bson:"updatedAt"`
}

// AverageRating devuelve el promedio actual o 0 si nadie valoró todavía.
func (r *RecipeDoc) AverageRating() float64 {
	if r.RatingStats == nil {
		return 0
	}
	return r.RatingStats.Average
}

// Payload para crear una receta (lo que expondremos en la API)
type RecipeCreateRequest struct {
	Title       string   `json:"title"` // obligatorio
	Tags        []string `json:"tags,omitempty"`
	Diets       []string `json:"diets,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Category    string   `json:"category,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	CookingTime int      `json:"cookingTime,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Payload para actualización parcial de receta
type RecipeUpdateRequest struct {
	Title       *string   `json:"title,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Diets       *[]string `json:"diets,omitempty"`
	Allergens   *[]string `json:"allergens,omitempty"`
	Cuisine     *string   `json:"cuisine,omitempty"`
	Category    *string   `json:"category,omitempty"`
	CategoryID  *string   `json:"categoryId,omitempty"`
	CookingTime *int      `json:"cookingTime,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
}
