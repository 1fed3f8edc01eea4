package handler

import (
	"encoding/json"
	"net/http"

	"saborml/internal/models"
	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
)

type CollectionHandler struct {
	svc *service.CollectionService
}

func NewCollectionHandler(s *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: s}
}

// @Summary Crear colección de recetas
// @Tags collections
// @Accept json
// @Produce json
// @Param body body models.CollectionCreateRequest true "colección"
// @Success 201 {object} models.CollectionDoc
// @Security BearerAuth
// @Router /me/collections [post]
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req models.CollectionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	c, err := h.svc.Create(r.Context(), userID, req.Name)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// @Summary Listar mis colecciones
// @Tags collections
// @Produce json
// @Success 200 {array} models.CollectionDoc
// @Security BearerAuth
// @Router /me/collections [get]
func (h *CollectionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	list, err := h.svc.ListMine(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

type collectionRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}

// @Summary Agregar receta a una colección
// @Tags collections
// @Accept json
// @Param id path string true "collectionId"
// @Param body body collectionRecipeRequest true "receta"
// @Success 204
// @Security BearerAuth
// @Router /me/collections/{id}/recipes [post]
func (h *CollectionHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "id")

	var req collectionRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	if err := h.svc.AddRecipe(r.Context(), userID, collectionID, req.RecipeID); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Sacar receta de una colección
// @Tags collections
// @Param id path string true "collectionId"
// @Param recipeId path string true "recipeId"
// @Success 204
// @Security BearerAuth
// @Router /me/collections/{id}/recipes/{recipeId} [delete]
func (h *CollectionHandler) RemoveRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "id")
	recipeID := chi.URLParam(r, "recipeId")

	if err := h.svc.RemoveRecipe(r.Context(), userID, collectionID, recipeID); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Borrar colección
// @Tags collections
// @Param id path string true "collectionId"
// @Success 204
// @Security BearerAuth
// @Router /me/collections/{id} [delete]
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), userID, collectionID); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
