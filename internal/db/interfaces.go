package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/tutormarket/internal/models"
)

// Collection names.
const (
	UsersCollection        = "users"
	TuitionsCollection     = "tuitions"
	ApplicationsCollection = "applications"
	PaymentsCollection     = "payments"
)

// TutorRepository reads tutor profiles from the users collection.
// Returned users never carry password or firebaseUID.
type TutorRepository interface {
	// ListActive returns active tutors ordered by rating then review count, both descending.
	ListActive(ctx context.Context) ([]*models.User, error)
	// GetByID returns the tutor with the given id or ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// ListFeatured returns at most limit active tutors rated minRating or higher,
	// with display fields only.
	ListFeatured(ctx context.Context, minRating float64, limit int64) ([]*models.User, error)
}

// TuitionRepository reads tuition postings.
type TuitionRepository interface {
	ListAll(ctx context.Context) ([]*models.Tuition, error)
}

// ApplicationRepository reads tutor applications. No route serves it yet.
type ApplicationRepository interface {
	ListByTuition(ctx context.Context, tuitionPostID primitive.ObjectID) ([]*models.Application, error)
	ListByTutor(ctx context.Context, tutorID primitive.ObjectID) ([]*models.Application, error)
}

// PaymentRepository reads payment documents. No route serves it yet.
type PaymentRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
}
