package mocks

import (
	"context"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// MockMedicationRepository implements domain.MedicationRepository interface for testing
type MockMedicationRepository struct {
	CreateFunc             func(ctx context.Context, med *domain.Medication) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Medication, error)
	DeleteFunc             func(ctx context.Context, id uint) error
	SearchFreeTextFunc     func(ctx context.Context, query string) ([]domain.Medication, error)
	SearchByAttributesFunc func(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error)
	SaveFunc               func(ctx context.Context, userID, medID uint) error
	UnsaveFunc             func(ctx context.Context, userID, medID uint) error
	IsSavedFunc            func(ctx context.Context, userID, medID uint) (bool, error)
	ListSavedFunc          func(ctx context.Context, userID uint) ([]domain.Medication, error)
}

// NewMockMedicationRepository creates a new MockMedicationRepository with default behaviors
func NewMockMedicationRepository() *MockMedicationRepository {
	return &MockMedicationRepository{}
}

// Create inserts a catalog entry
func (m *MockMedicationRepository) Create(ctx context.Context, med *domain.Medication) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, med)
	}
	// Default behavior: success
	return nil
}

// FindByID looks up a catalog entry
func (m *MockMedicationRepository) FindByID(ctx context.Context, id uint) (*domain.Medication, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMedicationNotFound
}

// Delete removes a catalog entry
func (m *MockMedicationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// SearchFreeText runs the free-text search
func (m *MockMedicationRepository) SearchFreeText(ctx context.Context, query string) ([]domain.Medication, error) {
	if m.SearchFreeTextFunc != nil {
		return m.SearchFreeTextFunc(ctx, query)
	}
	// Default behavior: no matches
	return []domain.Medication{}, nil
}

// SearchByAttributes runs the structured search
func (m *MockMedicationRepository) SearchByAttributes(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error) {
	if m.SearchByAttributesFunc != nil {
		return m.SearchByAttributesFunc(ctx, filters)
	}
	// Default behavior: no matches
	return []domain.Medication{}, nil
}

// Save adds a saved-medication mapping
func (m *MockMedicationRepository) Save(ctx context.Context, userID, medID uint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, medID)
	}
	// Default behavior: success
	return nil
}

// Unsave removes a saved-medication mapping
func (m *MockMedicationRepository) Unsave(ctx context.Context, userID, medID uint) error {
	if m.UnsaveFunc != nil {
		return m.UnsaveFunc(ctx, userID, medID)
	}
	// Default behavior: success
	return nil
}

// IsSaved reports mapping existence
func (m *MockMedicationRepository) IsSaved(ctx context.Context, userID, medID uint) (bool, error) {
	if m.IsSavedFunc != nil {
		return m.IsSavedFunc(ctx, userID, medID)
	}
	// Default behavior: not saved
	return false, nil
}

// ListSaved returns the user's saved medications
func (m *MockMedicationRepository) ListSaved(ctx context.Context, userID uint) ([]domain.Medication, error) {
	if m.ListSavedFunc != nil {
		return m.ListSavedFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Medication{}, nil
}

// Compile-time interface compliance verification
var _ domain.MedicationRepository = (*MockMedicationRepository)(nil)
