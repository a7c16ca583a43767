package repository

import (
	"context"

	"recmovies-pf/internal/db"
	"recmovies-pf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *models.ReviewDoc) error {
	_, err := r.col.InsertOne(ctx, rev)
	return err
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID, limit, offset int) ([]models.ReviewDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "qualityScore", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{"movieId": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rev models.ReviewDoc
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, cur.Err()
}

// TopReviewTexts devuelve los textos de las n mejores reviews por
// qualityScore. Implementa engine.TextProvider: es lo que alimenta el
// corpus del modelo de contenido.
func (r *ReviewRepository) TopReviewTexts(ctx context.Context, movieID, n int) ([]string, error) {
	reviews, err := r.ListByMovie(ctx, movieID, n, 0)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(reviews))
	for _, rev := range reviews {
		if rev.Text != "" {
			texts = append(texts, rev.Text)
		}
	}
	return texts, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
