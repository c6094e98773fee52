package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

const tempPasswordLength = 15

const tempPasswordLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	medRepo     domain.MedicationRepository
	sessionSvc  domain.SessionService
	passwordSvc domain.PasswordService
	mailer      domain.Mailer
	audit       domain.AuditLogger
	mailFrom    string
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	medRepo domain.MedicationRepository,
	sessionSvc domain.SessionService,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	audit domain.AuditLogger,
	mailFrom string,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		medRepo:     medRepo,
		sessionSvc:  sessionSvc,
		passwordSvc: passwordSvc,
		mailer:      mailer,
		audit:       audit,
		mailFrom:    mailFrom,
	}
}

// Signup implements domain.AccountService. The email uniqueness check here
// has a race window against a concurrent signup; the unique index on the
// users table rejects the loser.
func (s *AccountServiceImpl) Signup(ctx context.Context, email, password, firstName, lastName string) (uint, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return 0, "", domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return 0, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, salt, err := s.passwordSvc.Hash(password)
	if err != nil {
		return 0, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.sessionSvc.Issue(ctx, user.ID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserSignupEvent, user.ID).WithEmail(email))
	return user.ID, token, nil
}

// Login implements domain.AccountService. The password verifies against the
// primary credentials or, during an open reset window, the temporary pair.
// Every failure is reported uniformly as invalid credentials.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (uint, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, "", domain.ErrInvalidCredentials
	}

	if !s.verifyEitherPassword(user, password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithEmail(email).WithError(domain.ErrInvalidCredentials))
		return 0, "", domain.ErrInvalidCredentials
	}

	token, err := s.sessionSvc.Issue(ctx, user.ID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithEmail(email))
	return user.ID, token, nil
}

// Logout implements domain.AccountService
func (s *AccountServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessionSvc.Revoke(ctx, token)
}

// ResetPassword implements domain.AccountService. The temporary password is
// emailed before it is persisted, so a stored temporary credential always
// corresponds to a mail the user actually received.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return fmt.Errorf("failed to generate temporary password: %w", err)
	}

	subject := "Your SnapRx temporary password"
	body := fmt.Sprintf("%s,\n\nA request has been made to reset your SnapRx account password. "+
		"Please use the provided temporary password to access your account.\n\nTemporary password: %s",
		user.FirstName, tempPassword)

	if err := s.mailer.Send(s.mailFrom, user.Email, subject, body); err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.PasswordResetFailureEvent, user.ID).
			WithEmail(email).WithError(err))
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	tempHash, tempSalt, err := s.passwordSvc.Hash(tempPassword)
	if err != nil {
		return fmt.Errorf("failed to hash temporary password: %w", err)
	}

	if err := s.userRepo.UpdateTempPassword(ctx, user.ID, tempHash, tempSalt); err != nil {
		return fmt.Errorf("failed to store temporary password: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.PasswordResetEvent, user.ID).WithEmail(email))
	return nil
}

// UpdatePassword implements domain.AccountService. Success closes the reset
// window by clearing both temporary fields.
func (s *AccountServiceImpl) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	if !s.verifyEitherPassword(user, oldPassword) {
		return domain.ErrInvalidCredentials
	}

	hash, salt, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash, salt); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.userRepo.UpdateTempPassword(ctx, userID, nil, nil); err != nil {
		return fmt.Errorf("failed to clear temporary password: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.PasswordChangedEvent, userID).WithEmail(user.Email))
	return nil
}

// GetProfile implements domain.AccountService
func (s *AccountServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AccountService. An email change re-checks
// uniqueness against the new value before anything is written.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, userID uint, update domain.ProfileUpdate) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	firstName := user.FirstName
	if update.FirstName != nil {
		firstName = *update.FirstName
	}
	lastName := user.LastName
	if update.LastName != nil {
		lastName = *update.LastName
	}
	email := user.Email
	if update.Email != nil {
		email = *update.Email
	}

	if email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}
	}

	if err := s.userRepo.Update(ctx, userID, firstName, lastName, email); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ProfileUpdatedEvent, userID).WithEmail(email))
	return nil
}

// DeleteAccount implements domain.AccountService. Only the primary password
// authorizes deletion; a temporary one does not.
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, userID uint, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(password, user.PasswordHash, user.Salt) {
		return domain.ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.sessionSvc.RevokeAll(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserDeletedEvent, userID).WithEmail(user.Email))
	return nil
}

// SaveMedication implements domain.AccountService; saving twice is a no-op
func (s *AccountServiceImpl) SaveMedication(ctx context.Context, userID, medID uint) error {
	return s.medRepo.Save(ctx, userID, medID)
}

// RemoveSavedMedication implements domain.AccountService
func (s *AccountServiceImpl) RemoveSavedMedication(ctx context.Context, userID, medID uint) error {
	return s.medRepo.Unsave(ctx, userID, medID)
}

// IsMedicationSaved implements domain.AccountService
func (s *AccountServiceImpl) IsMedicationSaved(ctx context.Context, userID, medID uint) (bool, error) {
	return s.medRepo.IsSaved(ctx, userID, medID)
}

// ListSavedMedications implements domain.AccountService
func (s *AccountServiceImpl) ListSavedMedications(ctx context.Context, userID uint) ([]domain.Medication, error) {
	return s.medRepo.ListSaved(ctx, userID)
}

func (s *AccountServiceImpl) verifyEitherPassword(user *domain.User, password string) bool {
	return s.passwordSvc.Verify(password, user.PasswordHash, user.Salt) ||
		s.passwordSvc.Verify(password, user.TempPasswordHash, user.TempSalt)
}

// generateTempPassword returns a random string of ASCII letters
func generateTempPassword() (string, error) {
	letters := make([]byte, tempPasswordLength)
	for i := 0; i < tempPasswordLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordLetters))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random letter: %w", err)
		}
		letters[i] = tempPasswordLetters[n.Int64()]
	}
	return string(letters), nil
}
