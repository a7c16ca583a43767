package models

import "time"

// ReviewDoc es una review de película con su score de calidad, que
// decide qué reviews entran al corpus del modelo de contenido. El
// score viene del pipeline externo de calidad (no se calcula aquí).
type ReviewDoc struct {
	MovieID      int       `json:"movieId" bson:"movieId"`
	Source       string    `json:"source" bson:"source"` // imdb|reddit|rt|user
	Author       string    `json:"author,omitempty" bson:"author,omitempty"`
	Text         string    `json:"text" bson:"text"`
	QualityScore float64   `json:"qualityScore" bson:"qualityScore"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Body para crear una review vía API.
type ReviewCreateRequest struct {
	Source       string  `json:"source"`
	Author       string  `json:"author"`
	Text         string  `json:"text"` // obligatorio
	QualityScore float64 `json:"qualityScore"`
}
