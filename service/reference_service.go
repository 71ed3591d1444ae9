package service

import (
	"context"
	"errors"
	"fmt"

	"batas-backend/models"
	"batas-backend/repository"
)

var ErrLawyerNotFound = errors.New("lawyer not found")

// ReferenceService exposes the statute list and lawyer directory read-only
type ReferenceService struct {
	store repository.ReferenceStore
}

// NewReferenceService creates a new reference service
func NewReferenceService(store repository.ReferenceStore) *ReferenceService {
	if store == nil {
		store = repository.NewStaticReferenceStore(nil, nil)
	}
	return &ReferenceService{store: store}
}

// ListLaws returns every reference statute
func (s *ReferenceService) ListLaws(ctx context.Context) ([]models.RelevantLaw, error) {
	laws, err := s.store.Laws(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceUnavailable, err)
	}
	return laws, nil
}

// ListLawyers returns the directory, optionally filtered to a case type.
// A non-empty caseType applies the same matching an analysis uses, with limit.
func (s *ReferenceService) ListLawyers(ctx context.Context, caseType string, limit int) ([]models.Lawyer, error) {
	lawyers, err := s.store.Lawyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceUnavailable, err)
	}
	if caseType == "" {
		return lawyers, nil
	}
	if limit <= 0 {
		limit = len(lawyers)
	}
	return MatchLawyers(canonicalCaseType(caseType), lawyers, limit), nil
}

// GetLawyer returns one directory entry by id
func (s *ReferenceService) GetLawyer(ctx context.Context, id string) (*models.Lawyer, error) {
	lawyers, err := s.store.Lawyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceUnavailable, err)
	}
	for i := range lawyers {
		if lawyers[i].ID == id {
			return &lawyers[i], nil
		}
	}
	return nil, ErrLawyerNotFound
}
