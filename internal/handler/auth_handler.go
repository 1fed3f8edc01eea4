package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"saborml/internal/models"
	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

type userResponse struct {
	UserID             string   `json:"userId"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
	Allergens          []string `json:"allergens,omitempty"`
	FavoriteCuisines   []string `json:"favoriteCuisines,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:             u.UserID,
		Email:              u.Email,
		Role:               u.Role,
		DietaryPreferences: u.DietaryPreferences,
		Allergens:          u.Allergens,
		FavoriteCuisines:   u.FavoriteCuisines,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	DietaryPreferences []string `json:"dietaryPreferences"`
	Allergens          []string `json:"allergens"`
	FavoriteCuisines   []string `json:"favoriteCuisines"`
}

// @Summary Register
// @Description Crea un usuario nuevo con sus preferencias
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Email:              req.Email,
		Password:           req.Password,
		Role:               req.Role,
		DietaryPreferences: req.DietaryPreferences,
		Allergens:          req.Allergens,
		FavoriteCuisines:   req.FavoriteCuisines,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

type updateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`

	DietaryPreferences *[]string `json:"dietaryPreferences,omitempty"`
	Allergens          *[]string `json:"allergens,omitempty"`
	FavoriteCuisines   *[]string `json:"favoriteCuisines,omitempty"`
}

// @Summary Actualizar usuario (ADMIN)
// @Tags auth
// @Accept json
// @Param id path string true "userId"
// @Param body body updateUserRequest true "campos a actualizar"
// @Success 204
// @Security BearerAuth
// @Router /users/{id}/update [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateUser(r.Context(), userID, service.UpdateUserData{
		Email:              req.Email,
		Role:               req.Role,
		Password:           req.Password,
		DietaryPreferences: req.DietaryPreferences,
		Allergens:          req.Allergens,
		FavoriteCuisines:   req.FavoriteCuisines,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar usuarios (ADMIN)
// @Tags auth
// @Produce json
// @Param role query string false "user|admin"
// @Param q query string false "búsqueda por email"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} handler.userResponse
// @Security BearerAuth
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role := r.URL.Query().Get("role")
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	users, err := h.svc.ListUsers(r.Context(), role, q, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Obtener usuario por id (ADMIN)
// @Tags auth
// @Produce json
// @Param id path string true "userId"
// @Success 200 {object} handler.userResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}
