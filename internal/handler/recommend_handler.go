package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"recmovies-pf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// parseLiked lee "liked=1,2,3" del query string.
func parseLiked(r *http.Request) []int {
	raw := r.URL.Query().Get("liked")
	if raw == "" {
		return nil
	}
	var liked []int
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			liked = append(liked, id)
		}
	}
	return liked
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param liked query string false "movieIds gustados separados por coma (default: ratings >= 4)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Liked:   parseLiked(r),
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recomendaciones del usuario autenticado
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param liked query string false "movieIds gustados separados por coma (default: ratings >= 4)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Liked:   parseLiked(r),
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Películas similares a una dada
// @Tags recommend
// @Produce json
// @Param id path int true "movieId"
// @Param k query int false "cantidad de vecinos (máx 50)"
// @Param model query string false "content|collab (default: content)"
// @Param embeddings query bool false "si true, usa embeddings en vez de TF-IDF (solo content)"
// @Success 200 {array} models.RecItem
// @Router /movies/{id}/similar [get]
func (h *RecommendHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	model := r.URL.Query().Get("model")
	preferEmb := r.URL.Query().Get("embeddings") == "true"

	items, err := h.svc.SimilarMovies(r.Context(), movieID, k, model, preferEmb)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Explicar una recomendación
// @Description Reconstruye las contribuciones de contenido y colaborativo para una película recomendada.
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param movieId path int true "movieId"
// @Param liked query string false "movieIds gustados separados por coma (default: ratings >= 4)"
// @Success 200 {object} models.Explanation
// @Router /users/{id}/recommendations/{movieId}/explain [get]
func (h *RecommendHandler) Explain(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	exp, err := h.svc.Explain(r.Context(), service.ExplainRequest{
		UserID:  userID,
		MovieID: movieID,
		Liked:   parseLiked(r),
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(exp)
}

// @Summary Historial de recomendaciones del usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default: 20, máx 100)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	list, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	conn.WriteJSON(map[string]any{
		"type":  "progress",
		"stage": "content",
		"msg":   "Puntuando candidatos del modelo de contenido…",
	})
	conn.WriteJSON(map[string]any{
		"type":  "progress",
		"stage": "collab",
		"msg":   "Puntuando candidatos del modelo colaborativo…",
	})

	// Calcular recomendaciones reales
	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Liked:   parseLiked(r),
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
