package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"recmovies-pf/internal/config"
	"recmovies-pf/internal/engine"
	"recmovies-pf/internal/models"
	"recmovies-pf/internal/repository"
)

// nombres de los blobs persistidos en Mongo
const (
	blobCollab  = "collaborative"
	blobContent = "content"
)

var ErrRebuildInProgress = errors.New("ya hay un reentrenamiento en curso")

// TrainService entrena los dos modelos contra Mongo y publica el
// resultado como snapshot atómico. Un solo reentrenamiento a la vez.
type TrainService struct {
	cfg      *config.Config
	ratings  *repository.RatingRepository
	movies   *repository.MovieRepository
	reviews  *repository.ReviewRepository
	blobs    *repository.ModelRepository
	embedder engine.Embedder // nil = sin servicio de embeddings
	holder   *ModelHolder

	mu sync.Mutex
}

func NewTrainService(
	cfg *config.Config,
	ratings *repository.RatingRepository,
	movies *repository.MovieRepository,
	reviews *repository.ReviewRepository,
	blobs *repository.ModelRepository,
	embedder engine.Embedder,
	holder *ModelHolder,
) *TrainService {
	return &TrainService{
		cfg:      cfg,
		ratings:  ratings,
		movies:   movies,
		reviews:  reviews,
		blobs:    blobs,
		embedder: embedder,
		holder:   holder,
	}
}

// Rebuild reentrena ambos modelos desde cero y hace el swap. Los
// requests en vuelo siguen sirviéndose con el snapshot anterior.
func (s *TrainService) Rebuild(ctx context.Context) (*models.TrainResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrRebuildInProgress
	}
	defer s.mu.Unlock()

	start := time.Now()

	// 1) Datos de entrenamiento
	ratingDocs, err := s.ratings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	movieDocs, err := s.movies.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make([]engine.Rating, len(ratingDocs))
	for i, r := range ratingDocs {
		ratings[i] = engine.Rating{
			UserID:  r.UserID,
			MovieID: r.MovieID,
			Score:   r.Rating,
		}
	}

	movies := make([]engine.Movie, len(movieDocs))
	for i, m := range movieDocs {
		year := 0
		if m.Year != nil {
			year = *m.Year
		}
		movies[i] = engine.Movie{
			MovieID:  m.MovieID,
			Title:    m.Title,
			Overview: m.Overview,
			Genres:   m.Genres,
			Year:     year,
		}
	}

	// 2) Colaborativo
	collab := engine.NewCollaborativeFilter(s.cfg.Factors)
	if err := collab.Fit(ratings); err != nil {
		return nil, fmt.Errorf("entrenando colaborativo: %w", err)
	}

	// 3) Contenido (las reviews entran vía TextProvider)
	content := engine.NewContentFilter(s.cfg.MaxVocab, s.embedder)
	if err := content.Fit(ctx, movies, s.reviews); err != nil {
		return nil, fmt.Errorf("entrenando contenido: %w", err)
	}

	// 4) Publicar snapshot
	hybrid := engine.NewHybridRecommender(content, collab, s.cfg.HybridAlpha, s.cfg.HybridBeta)
	s.holder.Swap(&ModelSnapshot{
		Hybrid:    hybrid,
		Collab:    collab,
		Content:   content,
		TrainedAt: time.Now(),
	})

	// 5) Persistir blobs para poder restaurar al arrancar. Si falla no
	// rompemos el rebuild: el snapshot ya está sirviendo.
	if blob, err := collab.Save(); err != nil {
		log.Printf("[train] serializando colaborativo: %v", err)
	} else if err := s.blobs.SaveBlob(ctx, blobCollab, blob); err != nil {
		log.Printf("[train] guardando blob colaborativo: %v", err)
	}
	if blob, err := content.Save(); err != nil {
		log.Printf("[train] serializando contenido: %v", err)
	} else if err := s.blobs.SaveBlob(ctx, blobContent, blob); err != nil {
		log.Printf("[train] guardando blob de contenido: %v", err)
	}

	elapsed := time.Since(start)
	log.Printf("✅ Reentrenamiento OK: ratings=%d movies=%d vocab=%d embeddings=%v (%s)",
		len(ratings), len(movies), content.VocabSize(), content.HasEmbeddings(), elapsed)

	return &models.TrainResult{
		RatingsUsed:     len(ratings),
		MoviesUsed:      len(movies),
		Factors:         collab.Factors(),
		VocabSize:       content.VocabSize(),
		EmbeddingsReady: content.HasEmbeddings(),
		Elapsed:         elapsed.String(),
	}, nil
}

// RestoreFromStore intenta levantar los modelos persistidos al
// arrancar, para no servir vacío hasta el primer rebuild.
func (s *TrainService) RestoreFromStore(ctx context.Context) error {
	collabBlob, _, err := s.blobs.LoadBlob(ctx, blobCollab)
	if err != nil {
		return err
	}
	contentBlob, trainedAt, err := s.blobs.LoadBlob(ctx, blobContent)
	if err != nil {
		return err
	}
	if collabBlob == nil || contentBlob == nil {
		log.Println("[train] no hay modelos persistidos, se arranca sin snapshot")
		return nil
	}

	collab := engine.NewCollaborativeFilter(s.cfg.Factors)
	if err := collab.Restore(collabBlob); err != nil {
		return fmt.Errorf("restaurando colaborativo: %w", err)
	}

	// el embedder no se serializa: se reinyecta al restaurar
	content := engine.NewContentFilter(s.cfg.MaxVocab, s.embedder)
	if err := content.Restore(contentBlob); err != nil {
		return fmt.Errorf("restaurando contenido: %w", err)
	}

	hybrid := engine.NewHybridRecommender(content, collab, s.cfg.HybridAlpha, s.cfg.HybridBeta)
	s.holder.Swap(&ModelSnapshot{
		Hybrid:    hybrid,
		Collab:    collab,
		Content:   content,
		TrainedAt: trainedAt,
	})

	log.Printf("✅ Modelos restaurados desde Mongo (entrenados %s)", trainedAt.Format(time.RFC3339))
	return nil
}

// Status arma el estado del motor para el panel de admin.
func (s *TrainService) Status(ctx context.Context) (*models.TrainStatus, error) {
	ratingsCount, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	moviesCount, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	reviewsCount, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, err
	}

	st := &models.TrainStatus{
		RatingsCount: ratingsCount,
		MoviesCount:  moviesCount,
		ReviewsCount: reviewsCount,
		Factors:      s.cfg.Factors,
	}

	if snap := s.holder.Current(); snap != nil {
		st.CollabFitted = snap.Collab.Fitted()
		st.ContentFitted = snap.Content.Fitted()
		st.EmbeddingsReady = snap.Content.HasEmbeddings()
		st.Factors = snap.Collab.Factors()
		st.Alpha = snap.Hybrid.Alpha()
		st.Beta = snap.Hybrid.Beta()
		if !snap.TrainedAt.IsZero() {
			st.LastTrainedAt = snap.TrainedAt.Format(time.RFC3339)
		}
	} else {
		st.Alpha = s.cfg.HybridAlpha
		st.Beta = s.cfg.HybridBeta
	}

	return st, nil
}
