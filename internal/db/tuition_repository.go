package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/tutormarket/internal/models"
)

type mongoTuitionRepository struct {
	store *Store
}

// NewMongoTuitionRepository creates a TuitionRepository over the tuitions collection.
func NewMongoTuitionRepository(store *Store) TuitionRepository {
	return &mongoTuitionRepository{store: store}
}

// ListAll returns every tuition document, unfiltered and unsorted.
func (r *mongoTuitionRepository) ListAll(ctx context.Context) ([]*models.Tuition, error) {
	coll, err := r.store.Collection(TuitionsCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tuitions: %w", err)
	}
	tuitions := make([]*models.Tuition, 0)
	if err := cursor.All(ctx, &tuitions); err != nil {
		return nil, fmt.Errorf("failed to decode tuitions: %w", err)
	}
	return tuitions, nil
}
