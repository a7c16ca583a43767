package service

import (
	"context"
	"fmt"
	"time"

	"recmovies-pf/internal/models"
	"recmovies-pf/internal/repository"
)

var validReviewSources = map[string]bool{
	"imdb":   true,
	"reddit": true,
	"rt":     true,
	"user":   true,
}

type ReviewService struct {
	reviews *repository.ReviewRepository
	movies  *repository.MovieRepository
}

func NewReviewService(rev *repository.ReviewRepository, m *repository.MovieRepository) *ReviewService {
	return &ReviewService{reviews: rev, movies: m}
}

// Add ingesta una review para una película existente. El qualityScore
// va en [0,1]: decide si la review llega al corpus del modelo de
// contenido en el próximo reentrenamiento.
func (s *ReviewService) Add(ctx context.Context, movieID int, req models.ReviewCreateRequest) (*models.ReviewDoc, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("text is required")
	}
	if req.QualityScore < 0 || req.QualityScore > 1 {
		return nil, fmt.Errorf("qualityScore fuera de rango [0, 1]")
	}

	source := req.Source
	if source == "" {
		source = "user"
	}
	if !validReviewSources[source] {
		return nil, fmt.Errorf("invalid source (must be imdb|reddit|rt|user)")
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d no encontrada", movieID)
	}

	rev := &models.ReviewDoc{
		MovieID:      movieID,
		Source:       source,
		Author:       req.Author,
		Text:         req.Text,
		QualityScore: req.QualityScore,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.reviews.Insert(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieID, limit, offset int) ([]models.ReviewDoc, error) {
	return s.reviews.ListByMovie(ctx, movieID, limit, offset)
}
