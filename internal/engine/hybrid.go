package engine

import (
	"log"
	"sort"
)

// candidatesPerModel: cuántos candidatos aporta cada sub-modelo antes
// de combinar.
const candidatesPerModel = 50

// explainNeighbors: vecinos revisados por liked al explicar.
const explainNeighbors = 20

// ContentModel es la capacidad que el híbrido necesita del modelo de
// contenido.
type ContentModel interface {
	RecommendForLiked(liked []int, k int) ([]ScoredItem, error)
	SimilarItems(movieID, k int, preferEmbeddings bool) ([]ScoredItem, error)
}

// CollabModel es la capacidad que el híbrido necesita del modelo
// colaborativo.
type CollabModel interface {
	Recommend(userID, k int, excludeRated bool) ([]ScoredItem, error)
	Predict(userID, movieID int) float64
}

// Explanation detalla por qué se recomendó una película.
type Explanation struct {
	MovieID             int     `json:"movie_id"`
	ContentContribution float64 `json:"cbf_contribution"`
	CollabContribution  float64 `json:"cf_contribution"`
	// SimilarMovies trae, si existe, la película liked responsable de
	// la mayor similitud de contenido.
	SimilarMovies []int   `json:"similar_movies"`
	TotalScore    float64 `json:"total_score"`
}

// HybridRecommender combina el modelo de contenido y el colaborativo
// con pesos α (contenido) y β (colaborativo) normalizados a α+β=1.
//
// Si un sub-modelo falla durante el scoring se loggea y se sigue solo
// con el otro (degradación parcial); solo si ambos fallan la salida
// es una lista vacía, nunca un error.
type HybridRecommender struct {
	content ContentModel
	collab  CollabModel
	alpha   float64
	beta    float64
}

// NewHybridRecommender normaliza los pesos crudos: (3,1) -> (0.75,
// 0.25). Pesos no positivos caen al default 0.6/0.4.
func NewHybridRecommender(content ContentModel, collab CollabModel, alpha, beta float64) *HybridRecommender {
	if alpha < 0 {
		alpha = 0
	}
	if beta < 0 {
		beta = 0
	}
	total := alpha + beta
	if total <= 0 {
		alpha, beta, total = 0.6, 0.4, 1.0
	}
	h := &HybridRecommender{
		content: content,
		collab:  collab,
		alpha:   alpha / total,
		beta:    beta / total,
	}
	log.Printf("[hybrid] pesos α=%.2f β=%.2f", h.alpha, h.beta)
	return h
}

// Alpha y Beta devuelven los pesos ya normalizados.
func (h *HybridRecommender) Alpha() float64 { return h.alpha }
func (h *HybridRecommender) Beta() float64  { return h.beta }

// Recommend pide hasta 50 candidatos a cada sub-modelo (contenido si
// hay liked, colaborativo si hay userID), une los candidatos y puntúa
// score = α·norm(content,1) + β·norm(collab,5). Una contribución
// ausente vale 0.
func (h *HybridRecommender) Recommend(userID int, liked []int, k int) []ScoredItem {
	contentScores := make(map[int]float64)
	collabScores := make(map[int]float64)

	if len(liked) > 0 && h.content != nil {
		recs, err := h.content.RecommendForLiked(liked, candidatesPerModel)
		if err != nil {
			log.Printf("[hybrid] modelo de contenido falló, sigo sin él: %v", err)
		} else {
			for _, r := range recs {
				contentScores[r.MovieID] = r.Score
			}
		}
	}

	if userID != 0 && h.collab != nil {
		recs, err := h.collab.Recommend(userID, candidatesPerModel, true)
		if err != nil {
			log.Printf("[hybrid] modelo colaborativo falló, sigo sin él: %v", err)
		} else {
			for _, r := range recs {
				collabScores[r.MovieID] = r.Score
			}
		}
	}

	union := make(map[int]struct{}, len(contentScores)+len(collabScores))
	for id := range contentScores {
		union[id] = struct{}{}
	}
	for id := range collabScores {
		union[id] = struct{}{}
	}

	out := make([]ScoredItem, 0, len(union))
	for id := range union {
		score := h.alpha*normalizeScore(contentScores[id], 1.0) +
			h.beta*normalizeScore(collabScores[id], RatingMax)
		out = append(out, ScoredItem{MovieID: id, Score: score})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].MovieID < out[b].MovieID
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// normalizeScore lleva score/max al rango [0,1].
func normalizeScore(score, max float64) float64 {
	return clamp(score/max, 0, 1)
}

// Explain reconstruye las contribuciones de cada sub-modelo para una
// película ya recomendada. Es salida diagnóstica: no altera ningún
// ranking.
func (h *HybridRecommender) Explain(movieID, userID int, liked []int) *Explanation {
	ex := &Explanation{MovieID: movieID, SimilarMovies: []int{}}

	if len(liked) > 0 && h.content != nil {
		var maxSim float64
		mostSimilar := 0
		found := false

		for _, likedID := range liked {
			similar, err := h.content.SimilarItems(likedID, explainNeighbors, true)
			if err != nil {
				log.Printf("[hybrid] explain: contenido falló para liked=%d: %v", likedID, err)
				continue
			}
			for _, s := range similar {
				if s.MovieID == movieID && s.Score > maxSim {
					maxSim = s.Score
					mostSimilar = likedID
					found = true
				}
			}
		}

		ex.ContentContribution = maxSim * h.alpha
		if found {
			ex.SimilarMovies = []int{mostSimilar}
		}
	}

	if userID != 0 && h.collab != nil {
		predicted := h.collab.Predict(userID, movieID)
		ex.CollabContribution = (predicted / RatingMax) * h.beta
	}

	ex.TotalScore = ex.ContentContribution + ex.CollabContribution
	return ex
}
