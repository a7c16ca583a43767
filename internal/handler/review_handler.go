package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"recmovies-pf/internal/models"
	"recmovies-pf/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler { return &ReviewHandler{svc: s} }

// @Summary Ingestar review de una película
// @Description Las reviews con mejor qualityScore entran al corpus del modelo de contenido en el próximo reentrenamiento.
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "movieId"
// @Param body body models.ReviewCreateRequest true "review"
// @Success 201 {object} models.ReviewDoc
// @Failure 400 {string} string "body inválido"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.ReviewCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	rev, err := h.svc.Add(r.Context(), movieID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rev)
}

// @Summary Listar reviews de una película
// @Tags reviews
// @Produce json
// @Param id path int true "movieId"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.ReviewDoc
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	list, err := h.svc.ListByMovie(r.Context(), movieID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
