package engine

import (
	"context"
	"strings"
)

// topReviewsPerMovie es cuántas reviews (ordenadas por qualityScore
// desc) entran al texto de cada película.
const topReviewsPerMovie = 10

// BuildMovieText arma la representación textual de una película:
// título + overview + géneros + las mejores reviews. Se construye
// independiente de los ratings; si el provider falla, la película
// queda solo con su metadata (no es un error del fit).
func BuildMovieText(ctx context.Context, m Movie, texts TextProvider) string {
	var parts []string

	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	if m.Overview != "" {
		parts = append(parts, m.Overview)
	}
	if len(m.Genres) > 0 {
		parts = append(parts, strings.Join(m.Genres, " "))
	}

	if texts != nil {
		reviews, err := texts.TopReviewTexts(ctx, m.MovieID, topReviewsPerMovie)
		if err == nil && len(reviews) > 0 {
			parts = append(parts, strings.Join(reviews, " "))
		}
	}

	return strings.Join(parts, " ")
}
