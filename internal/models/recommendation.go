package models

import "time"

type RecItem struct {
	MovieID int     `bson:"movieId" json:"movieId"`
	Score   float64 `bson:"score"  json:"score"`
}

type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    int       `bson:"userId"        json:"userId"`
	Algo      string    `bson:"algo"          json:"algo"`
	Params    any       `bson:"params"        json:"params"`
	Items     []RecItem `bson:"items"         json:"items"`
	CreatedAt time.Time `bson:"createdAt"     json:"createdAt"`
}

// ====== Explicación de una recomendación híbrida ======

// Explanation reconstruye las contribuciones de cada modelo para una
// película recomendada (salida diagnóstica, no altera el ranking).
type Explanation struct {
	MovieID             int     `json:"movie_id"`
	ContentContribution float64 `json:"cbf_contribution"`
	CollabContribution  float64 `json:"cf_contribution"`
	SimilarMovies       []int   `json:"similar_movies"`
	TotalScore          float64 `json:"total_score"`
}
