package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// classifyResultLimit caps the catalog matches returned alongside a prediction
const classifyResultLimit = 5

// SearchServiceImpl implements domain.SearchService
type SearchServiceImpl struct {
	medRepo    domain.MedicationRepository
	classifier domain.Classifier
}

// NewSearchService creates a new search service
func NewSearchService(medRepo domain.MedicationRepository, classifier domain.Classifier) domain.SearchService {
	return &SearchServiceImpl{
		medRepo:    medRepo,
		classifier: classifier,
	}
}

// FreeText implements domain.SearchService. A query matching nothing returns
// an empty slice, not an error.
func (s *SearchServiceImpl) FreeText(ctx context.Context, query string) ([]domain.Medication, error) {
	return s.medRepo.SearchFreeText(ctx, query)
}

// ByAttributes implements domain.SearchService
func (s *SearchServiceImpl) ByAttributes(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error) {
	return s.medRepo.SearchByAttributes(ctx, filters)
}

// ClassifyImage implements domain.SearchService. The classifier label's
// first whitespace token is the generic drug name; it seeds a free-text
// search whose results are truncated to the prediction cap.
func (s *SearchServiceImpl) ClassifyImage(ctx context.Context, image []byte) (*domain.Prediction, []domain.Medication, error) {
	prediction, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return nil, nil, fmt.Errorf("classification failed: %w", err)
	}

	fields := strings.Fields(prediction.Label)
	if len(fields) == 0 {
		return nil, nil, domain.ErrNoResults
	}

	results, err := s.medRepo.SearchFreeText(ctx, fields[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search predicted class: %w", err)
	}
	if len(results) == 0 {
		return nil, nil, domain.ErrNoResults
	}

	if len(results) > classifyResultLimit {
		results = results[:classifyResultLimit]
	}
	return prediction, results, nil
}
