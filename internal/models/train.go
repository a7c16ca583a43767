package models

// ----- STATUS -----

// TrainStatus es el estado actual del motor para /admin/models/status.
type TrainStatus struct {
	RatingsCount    int64   `json:"ratingsCount"`
	MoviesCount     int64   `json:"moviesCount"`
	ReviewsCount    int64   `json:"reviewsCount"`
	CollabFitted    bool    `json:"collabFitted"`
	ContentFitted   bool    `json:"contentFitted"`
	EmbeddingsReady bool    `json:"embeddingsReady"`
	Factors         int     `json:"factors"`
	Alpha           float64 `json:"alpha"`
	Beta            float64 `json:"beta"`
	LastTrainedAt   string  `json:"lastTrainedAt,omitempty"`
}

// ----- REBUILD -----

// TrainResult resume un reentrenamiento completo.
type TrainResult struct {
	RatingsUsed     int    `json:"ratingsUsed"`
	MoviesUsed      int    `json:"moviesUsed"`
	Factors         int    `json:"factors"`
	VocabSize       int    `json:"vocabSize"`
	EmbeddingsReady bool   `json:"embeddingsReady"`
	Elapsed         string `json:"elapsed"`
}
