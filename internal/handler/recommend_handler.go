package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"saborml/internal/recommender"
	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func recommendRequestFrom(r *http.Request, userID string) recommender.Request {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	refresh := r.URL.Query().Get("refresh") == "true"
	return recommender.Request{
		UserID:  userID,
		Limit:   limit,
		Refresh: refresh,
	}
}

// @Summary Mis recomendaciones
// @Description Ranking híbrido (content-based + colaborativo), deduplicado. Las métricas van al historial, no a esta respuesta.
// @Tags recommend
// @Produce json
// @Param limit query int false "cantidad de recomendaciones (default 6, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecipeDoc
// @Security BearerAuth
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	res, err := h.svc.Recommend(r.Context(), recommendRequestFrom(r, userID))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res.Recommendations)
}

// @Summary Recomendaciones de un usuario (ADMIN)
// @Tags recommend
// @Produce json
// @Param id path string true "userId"
// @Param limit query int false "cantidad de recomendaciones (default 6, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecipeDoc
// @Security BearerAuth
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")

	res, err := h.svc.Recommend(r.Context(), recommendRequestFrom(r, userID))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res.Recommendations)
}

// @Summary Recomendaciones contextuales (hora del día / estación)
// @Tags recommend
// @Produce json
// @Param limit query int false "cantidad (default 6)"
// @Success 200 {array} models.RecipeDoc
// @Security BearerAuth
// @Router /me/recommendations/contextual [get]
func (h *RecommendHandler) GetContextual(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.svc.Contextual(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}

// @Summary Historial de recomendaciones con métricas
// @Tags recommend
// @Produce json
// @Param limit query int false "límite (default 20)"
// @Success 200 {array} models.Recommendation
// @Security BearerAuth
// @Router /me/recommendations/history [get]
func (h *RecommendHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Description Igual que el GET pero avisa el avance y devuelve las métricas de explicabilidad en el mensaje final.
// @Tags recommend
// @Produce json
// @Param limit query int false "cantidad de recomendaciones (default 6, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /me/recommendations/ws [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := UserIDFromContext(r.Context())
	req := recommendRequestFrom(r, userID)

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	res, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones y métricas (nil si vino de cache)
	conn.WriteJSON(map[string]any{
		"type":            "recommendations",
		"userId":          userID,
		"recommendations": res.Recommendations,
		"metrics":         res.Metrics,
		"fromCache":       res.Metrics == nil,
		"generatedAt":     time.Now(),
	})
}
