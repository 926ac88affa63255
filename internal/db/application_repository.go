package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/tutormarket/internal/models"
)

type mongoApplicationRepository struct {
	store *Store
}

// NewMongoApplicationRepository creates an ApplicationRepository over the applications collection.
func NewMongoApplicationRepository(store *Store) ApplicationRepository {
	return &mongoApplicationRepository{store: store}
}

func (r *mongoApplicationRepository) ListByTuition(ctx context.Context, tuitionPostID primitive.ObjectID) ([]*models.Application, error) {
	apps, err := r.list(ctx, bson.D{{Key: "tuitionPostId", Value: tuitionPostID}})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for tuition '%s': %w", tuitionPostID.Hex(), err)
	}
	return apps, nil
}

func (r *mongoApplicationRepository) ListByTutor(ctx context.Context, tutorID primitive.ObjectID) ([]*models.Application, error) {
	apps, err := r.list(ctx, bson.D{{Key: "tutorId", Value: tutorID}})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for tutor '%s': %w", tutorID.Hex(), err)
	}
	return apps, nil
}

func (r *mongoApplicationRepository) list(ctx context.Context, filter bson.D) ([]*models.Application, error) {
	coll, err := r.store.Collection(ApplicationsCollection)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	apps := make([]*models.Application, 0)
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
