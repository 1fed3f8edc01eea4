package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

type ratingRequest struct {
	RecipeID string  `json:"recipeId"`
	Rating   float64 `json:"rating"`
}

// @Summary Crear/actualizar rating (ADMIN, usuario arbitrario)
// @Tags ratings
// @Accept json
// @Param id path string true "userId"
// @Param body body ratingRequest true "rating"
// @Success 204
// @Security BearerAuth
// @Router /users/{id}/ratings [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.AddOrUpdate(r.Context(), userID, req.RecipeID, req.Rating); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar ratings de un usuario (ADMIN)
// @Tags ratings
// @Produce json
// @Param id path string true "userId"
// @Security BearerAuth
// @Router /users/{id}/ratings [get]
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")
	list, err := h.svc.GetByUser(r.Context(), userID, 100, 0)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Crear/actualizar mi rating
// @Tags ratings
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 204
// @Security BearerAuth
// @Router /me/ratings [post]
func (h *RatingHandler) PostMyRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.AddOrUpdate(r.Context(), userID, req.RecipeID, req.Rating); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar mis ratings
// @Tags ratings
// @Produce json
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Security BearerAuth
// @Router /me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 100
	}

	list, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
