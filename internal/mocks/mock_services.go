package mocks

import (
	"bytes"
	"context"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing.
// The default derivation is the password bytes prefixed with "hashed:", which
// keeps assertions readable.
type MockPasswordService struct {
	HashFunc         func(password string) ([]byte, []byte, error)
	HashWithSaltFunc func(password string, salt []byte) []byte
	VerifyFunc       func(password string, hash, salt []byte) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash derives a credential pair
func (m *MockPasswordService) Hash(password string) ([]byte, []byte, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return []byte("hashed:" + password), []byte("salt"), nil
}

// HashWithSalt derives a hash for a fixed salt
func (m *MockPasswordService) HashWithSalt(password string, salt []byte) []byte {
	if m.HashWithSaltFunc != nil {
		return m.HashWithSaltFunc(password, salt)
	}
	return []byte("hashed:" + password)
}

// Verify checks a password against a stored pair
func (m *MockPasswordService) Verify(password string, hash, salt []byte) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash, salt)
	}
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}
	return bytes.Equal(hash, []byte("hashed:"+password))
}

// MockSessionService implements domain.SessionService interface for testing
type MockSessionService struct {
	IssueFunc     func(ctx context.Context, userID uint) (string, error)
	ValidateFunc  func(ctx context.Context, token string, userID uint) bool
	RevokeFunc    func(ctx context.Context, token string) error
	RevokeAllFunc func(ctx context.Context, userID uint) error
	SweepFunc     func(ctx context.Context) error
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Issue returns a session token
func (m *MockSessionService) Issue(ctx context.Context, userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return "test-token", nil
}

// Validate reports whether the token authorizes the user
func (m *MockSessionService) Validate(ctx context.Context, token string, userID uint) bool {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token, userID)
	}
	return true
}

// Revoke removes one session
func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

// RevokeAll removes every session a user holds
func (m *MockSessionService) RevokeAll(ctx context.Context, userID uint) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	return nil
}

// Sweep reclaims expired sessions
func (m *MockSessionService) Sweep(ctx context.Context) error {
	if m.SweepFunc != nil {
		return m.SweepFunc(ctx)
	}
	return nil
}

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendFunc func(from, to, subject, body string) error
	Sent     []MockMail
}

// MockMail records one delivered message
type MockMail struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records the message; delivery succeeds unless SendFunc says otherwise
func (m *MockMailer) Send(from, to, subject, body string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(from, to, subject, body); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, MockMail{From: from, To: to, Subject: subject, Body: body})
	return nil
}

// MockClassifier implements domain.Classifier interface for testing
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, image []byte) (*domain.Prediction, error)
}

// NewMockClassifier creates a new MockClassifier with default behaviors
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify labels an image
func (m *MockClassifier) Classify(ctx context.Context, image []byte) (*domain.Prediction, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, image)
	}
	return &domain.Prediction{Label: "Ibuprofen 200 MG", Confidence: 0.9}, nil
}

// MockAuditLogger implements domain.AuditLogger interface for testing
type MockAuditLogger struct {
	Events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records the event
func (m *MockAuditLogger) LogEvent(event *domain.AuditEvent) {
	m.Events = append(m.Events, event)
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService = (*MockPasswordService)(nil)
	_ domain.SessionService  = (*MockSessionService)(nil)
	_ domain.Mailer          = (*MockMailer)(nil)
	_ domain.Classifier      = (*MockClassifier)(nil)
	_ domain.AuditLogger     = (*MockAuditLogger)(nil)
)
