package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/tutormarket/internal/db"
	"github.com/example/tutormarket/internal/models"
)

// Featured tutor selection.
const (
	FeaturedMinRating = 4.5
	FeaturedLimit     = 8
)

type tutorService struct {
	tutorRepo db.TutorRepository
}

// NewTutorService creates a new TutorService instance.
func NewTutorService(tutorRepo db.TutorRepository) TutorService {
	return &tutorService{tutorRepo: tutorRepo}
}

func (s *tutorService) ListTutors(ctx context.Context) ([]*models.User, error) {
	tutors, err := s.tutorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if tutors == nil {
		tutors = []*models.User{}
	}
	return tutors, nil
}

func (s *tutorService) GetTutor(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	tutor, err := s.tutorRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTutorNotFound, id)
		}
		return nil, err
	}
	if tutor == nil {
		return nil, fmt.Errorf("%w: %s", ErrTutorNotFound, id)
	}
	return tutor, nil
}

// FeaturedTutors also re-applies the rating floor and the cap to whatever the
// repository returned.
func (s *tutorService) FeaturedTutors(ctx context.Context) ([]*models.User, error) {
	tutors, err := s.tutorRepo.ListFeatured(ctx, FeaturedMinRating, FeaturedLimit)
	if err != nil {
		return nil, err
	}

	featured := make([]*models.User, 0, len(tutors))
	for _, t := range tutors {
		if t.Rating < FeaturedMinRating {
			continue
		}
		featured = append(featured, t)
		if len(featured) == FeaturedLimit {
			break
		}
	}
	return featured, nil
}
