package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"recmovies-pf/internal/cache"
	"recmovies-pf/internal/models"
	"recmovies-pf/internal/repository"
)

const (
	DefaultK = 20
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems

	// a partir de qué rating una película cuenta como "gustada"
	// cuando el cliente no pasa la lista explícita
	likedThreshold = 4.0
)

type RecommendService struct {
	ratings *repository.RatingRepository
	recRepo *repository.RecommendationRepository
	holder  *ModelHolder
}

func NewRecommendService(
	r *repository.RatingRepository,
	recRepo *repository.RecommendationRepository,
	holder *ModelHolder,
) *RecommendService {
	return &RecommendService{
		ratings: r,
		recRepo: recRepo,
		holder:  holder,
	}
}

// ====== Petición de recomendaciones (solo parámetros que sí cambian en runtime) ======

type RecRequest struct {
	UserID  int
	Liked   []int // películas "gustadas"; vacío = derivar de los ratings
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// Cachea por usuario + k + liked (no incluye refresh, refresh solo
	// decide si usar cache). liked va ordenado para que la key sea estable.
	liked := append([]int(nil), req.Liked...)
	sort.Ints(liked)

	parts := make([]string, len(liked))
	for i, id := range liked {
		parts[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("rec:user:%d:k:%d:liked:%s", req.UserID, req.K, strings.Join(parts, ","))
}

// likedFromRatings deriva la lista de gustadas del historial del usuario.
func likedFromRatings(ratings []models.RatingDoc) []int {
	var liked []int
	for _, r := range ratings {
		if r.Rating >= likedThreshold {
			liked = append(liked, r.MovieID)
		}
	}
	sort.Ints(liked)
	return liked
}

// Recommend sirve el top-K híbrido desde el snapshot activo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	snap := s.holder.Current()
	if snap == nil {
		return nil, fmt.Errorf("los modelos aún no están entrenados")
	}

	// liked no explícito: derivar de los ratings del usuario
	if len(req.Liked) == 0 {
		ratings, err := s.ratings.GetAllByUser(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		req.Liked = likedFromRatings(ratings)
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) El híbrido nunca devuelve error: si un sub-modelo falla lo
	// loguea y sigue con el otro
	scored := snap.Hybrid.Recommend(req.UserID, req.Liked, req.K)

	items := make([]models.RecItem, len(scored))
	for i, it := range scored {
		items[i] = models.RecItem{MovieID: it.MovieID, Score: it.Score}
	}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   "hybrid",
			Params: map[string]any{
				"k":       req.K,
				"alpha":   snap.Hybrid.Alpha(),
				"beta":    snap.Hybrid.Beta(),
				"liked":   req.Liked,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}

		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// ====== Similares a una película ======

// SimilarMovies devuelve los k vecinos de una película según el modelo
// pedido: "content" (default) o "collab".
func (s *RecommendService) SimilarMovies(ctx context.Context, movieID, k int, model string, preferEmbeddings bool) ([]models.RecItem, error) {
	if k <= 0 {
		k = DefaultK
	} else if k > MaxK {
		k = MaxK
	}

	snap := s.holder.Current()
	if snap == nil {
		return nil, fmt.Errorf("los modelos aún no están entrenados")
	}

	switch model {
	case "collab":
		items, err := snap.Collab.SimilarItems(movieID, k)
		if err != nil {
			return nil, err
		}
		out := make([]models.RecItem, len(items))
		for i, it := range items {
			out[i] = models.RecItem{MovieID: it.MovieID, Score: it.Score}
		}
		return out, nil
	case "", "content":
		items, err := snap.Content.SimilarItems(movieID, k, preferEmbeddings)
		if err != nil {
			return nil, err
		}
		out := make([]models.RecItem, len(items))
		for i, it := range items {
			out[i] = models.RecItem{MovieID: it.MovieID, Score: it.Score}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid model (must be content|collab)")
	}
}

// ====== Explicación de una recomendación híbrida ======

type ExplainRequest struct {
	UserID  int
	MovieID int
	Liked   []int
}

// Explain reconstruye las contribuciones de cada sub-modelo para una
// película recomendada.
func (s *RecommendService) Explain(ctx context.Context, req ExplainRequest) (*models.Explanation, error) {
	snap := s.holder.Current()
	if snap == nil {
		return nil, fmt.Errorf("los modelos aún no están entrenados")
	}

	if len(req.Liked) == 0 {
		ratings, err := s.ratings.GetAllByUser(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		req.Liked = likedFromRatings(ratings)
	}

	ex := snap.Hybrid.Explain(req.MovieID, req.UserID, req.Liked)

	return &models.Explanation{
		MovieID:             ex.MovieID,
		ContentContribution: ex.ContentContribution,
		CollabContribution:  ex.CollabContribution,
		SimilarMovies:       ex.SimilarMovies,
		TotalScore:          ex.TotalScore,
	}, nil
}

// History devuelve las últimas recomendaciones guardadas de un usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}
