package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"recmovies-pf/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminTrainHandler expone el reentrenamiento y el estado del motor.
type AdminTrainHandler struct {
	svc *service.TrainService
}

// NewAdminTrainHandler crea el handler.
func NewAdminTrainHandler(svc *service.TrainService) *AdminTrainHandler {
	return &AdminTrainHandler{svc: svc}
}

// @Summary Reentrenar los modelos
// @Description Reentrena el colaborativo y el de contenido con todo lo que haya en Mongo y publica el snapshot nuevo. Un solo rebuild a la vez.
// @Tags admin-models
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.TrainResult
// @Failure 409 {string} string "ya hay un reentrenamiento en curso"
// @Failure 500 {string} string "error interno"
// @Router /admin/models/rebuild [post]
// POST /admin/models/rebuild
func (h *AdminTrainHandler) PostRebuild(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Rebuild(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrRebuildInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Estado del motor de recomendación
// @Description Conteos de datos de entrenamiento y estado del snapshot activo.
// @Tags admin-models
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.TrainStatus
// @Failure 500 {string} string "error interno"
// @Router /admin/models/status [get]
// GET /admin/models/status
func (h *AdminTrainHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminTrainRoutes(r chi.Router, h *AdminTrainHandler) {
	r.Route("/admin/models", func(r chi.Router) {
		r.Post("/rebuild", h.PostRebuild)
		r.Get("/status", h.GetStatus)
	})
}
