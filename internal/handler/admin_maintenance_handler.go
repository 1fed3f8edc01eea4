package handler

import (
	"encoding/json"
	"net/http"

	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
)

type AdminMaintenanceHandler struct {
	svc    *service.AdminMaintenanceService
	recSvc *service.RecommendService
}

func NewAdminMaintenanceHandler(s *service.AdminMaintenanceService, rec *service.RecommendService) *AdminMaintenanceHandler {
	return &AdminMaintenanceHandler{svc: s, recSvc: rec}
}

// MountAdminMaintenanceRoutes monta las rutas de mantenimiento del motor.
func MountAdminMaintenanceRoutes(r chi.Router, h *AdminMaintenanceHandler) {
	r.Get("/admin/recommendations/summary", h.Summary)
	r.Delete("/admin/users/{id}/recommendations/cache", h.BustCache)
}

// @Summary Resumen de cobertura del motor (ADMIN)
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminRecommendSummary
// @Security BearerAuth
// @Router /admin/recommendations/summary [get]
func (h *AdminMaintenanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(s)
}

// @Summary Borrar cache de recomendaciones de un usuario (ADMIN)
// @Description Gancho manual de invalidación: el cache no se invalida solo cuando cambian ratings o preferencias.
// @Tags admin
// @Param id path string true "userId"
// @Success 204
// @Security BearerAuth
// @Router /admin/users/{id}/recommendations/cache [delete]
func (h *AdminMaintenanceHandler) BustCache(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := chi.URLParam(r, "id")

	if err := h.recSvc.BustCache(r.Context(), userID); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
