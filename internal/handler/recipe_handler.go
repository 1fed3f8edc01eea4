// internal/handler/recipe_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"saborml/internal/models"
	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
)

type RecipeHandler struct {
	svc *service.RecipeService
}

func NewRecipeHandler(s *service.RecipeService) *RecipeHandler { return &RecipeHandler{svc: s} }

// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "recipeId"
// @Success 200 {object} models.RecipeDoc
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")
	m, err := h.svc.GetRecipe(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if m == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// @Summary Buscar / listar recetas (paginado)
// @Tags recipes
// @Produce json
// @Param q query string false "búsqueda por título"
// @Param cuisine query string false "filtrar por cocina"
// @Param tag query string false "filtrar por tag"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.RecipeDoc
// @Router /recipes/search [get]
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	cuisine := r.URL.Query().Get("cuisine")
	tag := r.URL.Query().Get("tag")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	recipes, err := h.svc.Search(r.Context(), q, cuisine, tag, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(recipes)
}

// @Summary Top recetas (popularidad o rating)
// @Tags recipes
// @Produce json
// @Param metric query string false "popular|rating (default: popular)"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.RecipeDoc
// @Router /recipes/top [get]
func (h *RecipeHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "popular"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	recipes, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(recipes)
}

// @Summary Crear receta (ADMIN)
// @Tags recipes
// @Accept json
// @Produce json
// @Param body body models.RecipeCreateRequest true "receta"
// @Success 201 {object} models.RecipeDoc
// @Security BearerAuth
// @Router /admin/recipes [post]
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req models.RecipeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	doc, err := h.svc.Create(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(doc)
}

// @Summary Actualizar receta (ADMIN)
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "recipeId"
// @Param body body models.RecipeUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.RecipeDoc
// @Security BearerAuth
// @Router /admin/recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	var req models.RecipeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	doc, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	_ = json.NewEncoder(w).Encode(doc)
}

type viewRequest struct {
	RecipeID string `json:"recipeId"`
}

// @Summary Registrar vista de receta (alimenta el historial content-based)
// @Tags recipes
// @Accept json
// @Param body body viewRequest true "vista"
// @Success 204
// @Security BearerAuth
// @Router /me/views [post]
func (h *RecipeHandler) PostMyView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.RecipeID == "" {
		http.Error(w, "recipeId is required", 400)
		return
	}

	if err := h.svc.RecordView(r.Context(), userID, req.RecipeID); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
