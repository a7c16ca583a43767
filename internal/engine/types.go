// Package engine implementa el motor de recomendación híbrido:
// filtrado colaborativo (SVD truncado sobre la matriz de ratings),
// filtrado por contenido (TF-IDF + embeddings opcionales) y el
// combinador híbrido con explicaciones.
//
// Todo el estado ajustado es inmutable después de Fit: las lecturas
// (Predict / Recommend / SimilarItems) son seguras desde varias
// goroutines siempre que el refit se haga con swap de snapshot.
package engine

import "context"

// Escala de ratings (MovieLens 1..5).
const (
	RatingMin = 1.0
	RatingMax = 5.0
	// NeutralRating se devuelve para usuarios/películas fuera del
	// vocabulario de entrenamiento (cold start).
	NeutralRating = 3.0
)

// Rating es una observación (usuario, película, rating).
type Rating struct {
	UserID  int     `json:"userId"`
	MovieID int     `json:"movieId"`
	Score   float64 `json:"rating"`
}

// Movie es la ficha de catálogo que consume el modelo de contenido.
type Movie struct {
	MovieID  int      `json:"movieId"`
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
	Year     int      `json:"year"`
}

// ScoredItem es un par (película, score) de cualquier modelo.
type ScoredItem struct {
	MovieID int     `json:"movieId"`
	Score   float64 `json:"score"`
}

// TextProvider entrega los textos de reviews de mejor calidad para una
// película (colaborador externo; el motor no toca Mongo directamente).
type TextProvider interface {
	TopReviewTexts(ctx context.Context, movieID, n int) ([]string, error)
}

// Embedder es el proveedor opcional de embeddings densos. Si no hay
// uno disponible el modelo de contenido funciona solo con TF-IDF.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
