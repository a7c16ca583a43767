// internal/service/movie_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"recmovies-pf/internal/models"
	"recmovies-pf/internal/repository"
)

type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(m *repository.MovieRepository) *MovieService {
	return &MovieService{movies: m}
}

func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *MovieService) Search(
	ctx context.Context,
	q, genre string,
	yearFrom, yearTo, limit, offset int,
) ([]models.MovieDoc, error) {
	return s.movies.Search(ctx, q, genre, yearFrom, yearTo, limit, offset)
}

func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	return s.movies.Top(ctx, metric, limit)
}

// Create da de alta una película nueva con el siguiente movieId libre.
func (s *MovieService) Create(ctx context.Context, req models.MovieCreateRequest) (*models.MovieDoc, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	nextID, err := s.movies.GetNextMovieID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	m := &models.MovieDoc{
		MovieID:  nextID,
		Title:    req.Title,
		Year:     req.Year,
		Genres:   req.Genres,
		Overview: req.Overview,
		RatingStats: &models.RatingStats{
			Average: 0,
			Count:   0,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update aplica cambios parciales sobre una película existente.
func (s *MovieService) Update(ctx context.Context, movieID int, req models.MovieUpdateRequest) (*models.MovieDoc, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("movie %d no encontrada", movieID)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		m.Title = *req.Title
	}
	if req.Year != nil {
		m.Year = req.Year
	}
	if req.Genres != nil {
		m.Genres = req.Genres
	}
	if req.Overview != nil {
		m.Overview = *req.Overview
	}

	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.movies.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
