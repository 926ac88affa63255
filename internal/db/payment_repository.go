package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/example/tutormarket/internal/models"
)

type mongoPaymentRepository struct {
	store *Store
}

// NewMongoPaymentRepository creates a PaymentRepository over the payments collection.
func NewMongoPaymentRepository(store *Store) PaymentRepository {
	return &mongoPaymentRepository{store: store}
}

func (r *mongoPaymentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	coll, err := r.store.Collection(PaymentsCollection)
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment with ID '%s' not found: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment with ID '%s': %w", id.Hex(), err)
	}
	return &payment, nil
}
