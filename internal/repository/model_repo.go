package repository

import (
	"context"
	"time"

	"recmovies-pf/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ModelRepository guarda los modelos entrenados como blobs opacos
// (gob) para restaurarlos al arrancar sin reentrenar.
type ModelRepository struct {
	col *mongo.Collection
}

func NewModelRepository() *ModelRepository {
	return &ModelRepository{col: db.DB().Collection("models")}
}

type modelBlobDoc struct {
	Name      string           `bson:"name"`
	Data      primitive.Binary `bson:"data"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// SaveBlob guarda (o reemplaza) el blob de un modelo por nombre.
func (r *ModelRepository) SaveBlob(ctx context.Context, name string, data []byte) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{
			"data":      primitive.Binary{Data: data},
			"updatedAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// LoadBlob devuelve el blob y su fecha. (nil, zero, nil) si no existe.
func (r *ModelRepository) LoadBlob(ctx context.Context, name string) ([]byte, time.Time, error) {
	var doc modelBlobDoc
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	return doc.Data.Data, doc.UpdatedAt, nil
}
