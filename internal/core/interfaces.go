package core

import (
	"context"

	"github.com/example/tutormarket/internal/models"
)

// TutorService defines the tutor directory operations.
type TutorService interface {
	// ListTutors returns all active tutors, best rated first.
	ListTutors(ctx context.Context) ([]*models.User, error)
	// GetTutor returns one tutor by hex id. Malformed ids yield ErrInvalidID,
	// unknown ids ErrTutorNotFound.
	GetTutor(ctx context.Context, id string) (*models.User, error)
	// FeaturedTutors returns up to FeaturedLimit tutors rated FeaturedMinRating or higher.
	FeaturedTutors(ctx context.Context) ([]*models.User, error)
}

// TuitionService defines the tuition posting operations.
type TuitionService interface {
	ListTuitions(ctx context.Context) ([]*models.Tuition, error)
}

// HealthService checks the backing store.
type HealthService interface {
	Check(ctx context.Context) error
}
