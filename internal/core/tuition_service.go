package core

import (
	"context"

	"github.com/example/tutormarket/internal/db"
	"github.com/example/tutormarket/internal/models"
)

type tuitionService struct {
	tuitionRepo db.TuitionRepository
}

// NewTuitionService creates a new TuitionService instance.
func NewTuitionService(tuitionRepo db.TuitionRepository) TuitionService {
	return &tuitionService{tuitionRepo: tuitionRepo}
}

func (s *tuitionService) ListTuitions(ctx context.Context) ([]*models.Tuition, error) {
	tuitions, err := s.tuitionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if tuitions == nil {
		tuitions = []*models.Tuition{}
	}
	return tuitions, nil
}
