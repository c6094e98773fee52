package mocks

import (
	"context"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	SignupFunc                func(ctx context.Context, email, password, firstName, lastName string) (uint, string, error)
	LoginFunc                 func(ctx context.Context, email, password string) (uint, string, error)
	LogoutFunc                func(ctx context.Context, token string) error
	ResetPasswordFunc         func(ctx context.Context, email string) error
	UpdatePasswordFunc        func(ctx context.Context, userID uint, oldPassword, newPassword string) error
	GetProfileFunc            func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc         func(ctx context.Context, userID uint, update domain.ProfileUpdate) error
	DeleteAccountFunc         func(ctx context.Context, userID uint, password string) error
	SaveMedicationFunc        func(ctx context.Context, userID, medID uint) error
	RemoveSavedMedicationFunc func(ctx context.Context, userID, medID uint) error
	IsMedicationSavedFunc     func(ctx context.Context, userID, medID uint) (bool, error)
	ListSavedMedicationsFunc  func(ctx context.Context, userID uint) ([]domain.Medication, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Signup registers an account
func (m *MockAccountService) Signup(ctx context.Context, email, password, firstName, lastName string) (uint, string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password, firstName, lastName)
	}
	// Default behavior: success
	return 1, "test-token", nil
}

// Login authenticates a user
func (m *MockAccountService) Login(ctx context.Context, email, password string) (uint, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success
	return 1, "test-token", nil
}

// Logout revokes a session
func (m *MockAccountService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

// ResetPassword opens a reset window
func (m *MockAccountService) ResetPassword(ctx context.Context, email string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email)
	}
	return nil
}

// UpdatePassword changes the primary credential pair
func (m *MockAccountService) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

// GetProfile returns the user's profile
func (m *MockAccountService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile update
func (m *MockAccountService) UpdateProfile(ctx context.Context, userID uint, update domain.ProfileUpdate) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, update)
	}
	return nil
}

// DeleteAccount removes the account
func (m *MockAccountService) DeleteAccount(ctx context.Context, userID uint, password string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID, password)
	}
	return nil
}

// SaveMedication adds a saved-medication mapping
func (m *MockAccountService) SaveMedication(ctx context.Context, userID, medID uint) error {
	if m.SaveMedicationFunc != nil {
		return m.SaveMedicationFunc(ctx, userID, medID)
	}
	return nil
}

// RemoveSavedMedication deletes a saved-medication mapping
func (m *MockAccountService) RemoveSavedMedication(ctx context.Context, userID, medID uint) error {
	if m.RemoveSavedMedicationFunc != nil {
		return m.RemoveSavedMedicationFunc(ctx, userID, medID)
	}
	return nil
}

// IsMedicationSaved reports mapping existence
func (m *MockAccountService) IsMedicationSaved(ctx context.Context, userID, medID uint) (bool, error) {
	if m.IsMedicationSavedFunc != nil {
		return m.IsMedicationSavedFunc(ctx, userID, medID)
	}
	// Default behavior: not saved
	return false, nil
}

// ListSavedMedications returns the user's saved medications
func (m *MockAccountService) ListSavedMedications(ctx context.Context, userID uint) ([]domain.Medication, error) {
	if m.ListSavedMedicationsFunc != nil {
		return m.ListSavedMedicationsFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Medication{}, nil
}

// MockSearchService implements domain.SearchService interface for testing
type MockSearchService struct {
	FreeTextFunc      func(ctx context.Context, query string) ([]domain.Medication, error)
	ByAttributesFunc  func(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error)
	ClassifyImageFunc func(ctx context.Context, image []byte) (*domain.Prediction, []domain.Medication, error)
}

// NewMockSearchService creates a new MockSearchService with default behaviors
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{}
}

// FreeText runs a free-text search
func (m *MockSearchService) FreeText(ctx context.Context, query string) ([]domain.Medication, error) {
	if m.FreeTextFunc != nil {
		return m.FreeTextFunc(ctx, query)
	}
	// Default behavior: no matches
	return []domain.Medication{}, nil
}

// ByAttributes runs a structured search
func (m *MockSearchService) ByAttributes(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error) {
	if m.ByAttributesFunc != nil {
		return m.ByAttributesFunc(ctx, filters)
	}
	// Default behavior: no matches
	return []domain.Medication{}, nil
}

// ClassifyImage labels an image and searches the catalog for the label
func (m *MockSearchService) ClassifyImage(ctx context.Context, image []byte) (*domain.Prediction, []domain.Medication, error) {
	if m.ClassifyImageFunc != nil {
		return m.ClassifyImageFunc(ctx, image)
	}
	// Default behavior: no matches for the predicted class
	return nil, nil, domain.ErrNoResults
}

// Compile-time interface compliance verification
var (
	_ domain.AccountService = (*MockAccountService)(nil)
	_ domain.SearchService  = (*MockSearchService)(nil)
)
