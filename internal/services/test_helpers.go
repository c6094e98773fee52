package services

import (
	"context"
	"testing"
	"time"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/mocks"
)

// createAccountServiceForTest creates an AccountService with mock dependencies for testing
func createAccountServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	medRepo domain.MedicationRepository,
	sessionSvc domain.SessionService,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	audit domain.AuditLogger) domain.AccountService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if medRepo == nil {
		medRepo = mocks.NewMockMedicationRepository()
	}
	if sessionSvc == nil {
		sessionSvc = mocks.NewMockSessionService()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if mailer == nil {
		mailer = mocks.NewMockMailer()
	}
	if audit == nil {
		audit = mocks.NewMockAuditLogger()
	}

	return NewAccountService(userRepo, medRepo, sessionSvc, passwordSvc, mailer, audit, "noreply.snaprx@gmail.com")
}

// createValidUser creates a valid user entity for testing. The credential
// bytes follow the MockPasswordService derivation so Verify succeeds for
// "password123" without any extra mock setup.
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@example.com",
		PasswordHash: []byte("hashed:password123"),
		Salt:         []byte("salt"),
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createUserWithTempPassword creates a user with an open reset window
func createUserWithTempPassword(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.TempPasswordHash = []byte("hashed:temppass")
	user.TempSalt = []byte("salt")
	return user
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// createMedication creates a catalog entry for testing
func createMedication(t *testing.T, id uint, name string) domain.Medication {
	t.Helper()

	price := 9.99
	return domain.Medication{
		ID:           id,
		RxString:     "198440",
		MedName:      name,
		MedDetails:   name + " oral tablet",
		Shape:        "ROUND",
		Size:         "10",
		ImprintFront: "IP",
		ImprintBack:  "110",
		Color:        "WHITE",
		Price:        &price,
		PriceSource:  "GoodRx",
	}
}
