package mocks

import (
	"context"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *domain.User) error
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc             func(ctx context.Context, id uint, firstName, lastName, email string) error
	UpdatePasswordFunc     func(ctx context.Context, id uint, hash, salt []byte) error
	UpdateTempPasswordFunc func(ctx context.Context, id uint, hash, salt []byte) error
	DeleteFunc             func(ctx context.Context, id uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Update updates the mutable profile fields
func (m *MockUserRepository) Update(ctx context.Context, id uint, firstName, lastName, email string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, firstName, lastName, email)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword writes the primary credential pair
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, hash, salt []byte) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hash, salt)
	}
	// Default behavior: success
	return nil
}

// UpdateTempPassword writes or clears the temporary credential pair
func (m *MockUserRepository) UpdateTempPassword(ctx context.Context, id uint, hash, salt []byte) error {
	if m.UpdateTempPasswordFunc != nil {
		return m.UpdateTempPasswordFunc(ctx, id, hash, salt)
	}
	// Default behavior: success
	return nil
}

// Delete removes the user
func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
