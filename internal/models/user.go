package models

type UserDoc struct {
	UserID       string `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`

	// Preferencias usadas por el motor de recomendaciones
	DietaryPreferences []string `json:"dietaryPreferences,omitempty" bson:"dietaryPreferences,omitempty"`
	Allergens          []string `json:"allergens,omitempty" bson:"allergens,omitempty"`
	FavoriteCuisines   []string `json:"favoriteCuisines,omitempty" bson:"favoriteCuisines,omitempty"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// UserPreferences es la vista que consume el motor. Una categoría vacía
// significa "sin restricción", nunca "rechazar todo".
type UserPreferences struct {
	UserID             string   `json:"userId"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	Allergens          []string `json:"allergens"`
	FavoriteCuisines   []string `json:"favoriteCuisines"`
}

func (u *UserDoc) Preferences() UserPreferences {
	return UserPreferences{
		UserID:             u.UserID,
		DietaryPreferences: u.DietaryPreferences,
		Allergens:          u.Allergens,
		FavoriteCuisines:   u.FavoriteCuisines,
	}
}
