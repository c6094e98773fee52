package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, id uint, firstName, lastName, email string) error
	UpdatePassword(ctx context.Context, id uint, hash, salt []byte) error
	// UpdateTempPassword writes the temporary credential pair; nil values
	// clear both fields and close the reset window.
	UpdateTempPassword(ctx context.Context, id uint, hash, salt []byte) error
	Delete(ctx context.Context, id uint) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MedicationRepository defines catalog and saved-medication data access
type MedicationRepository interface {
	Create(ctx context.Context, med *Medication) error
	FindByID(ctx context.Context, id uint) (*Medication, error)
	Delete(ctx context.Context, id uint) error
	SearchFreeText(ctx context.Context, query string) ([]Medication, error)
	SearchByAttributes(ctx context.Context, filters SearchFilters) ([]Medication, error)
	Save(ctx context.Context, userID, medID uint) error
	Unsave(ctx context.Context, userID, medID uint) error
	IsSaved(ctx context.Context, userID, medID uint) (bool, error)
	ListSaved(ctx context.Context, userID uint) ([]Medication, error)
}

// AccountService defines account business logic
type AccountService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (uint, string, error)
	Login(ctx context.Context, email, password string) (uint, string, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error
	DeleteAccount(ctx context.Context, userID uint, password string) error
	SaveMedication(ctx context.Context, userID, medID uint) error
	RemoveSavedMedication(ctx context.Context, userID, medID uint) error
	IsMedicationSaved(ctx context.Context, userID, medID uint) (bool, error)
	ListSavedMedications(ctx context.Context, userID uint) ([]Medication, error)
}

// SessionService defines session issuance and validation
type SessionService interface {
	Issue(ctx context.Context, userID uint) (string, error)
	// Validate reports whether token authorizes actions as userID. Every
	// failure mode (unknown token, expired, storage error, owner mismatch)
	// collapses to false so callers cannot distinguish them.
	Validate(ctx context.Context, token string, userID uint) bool
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID uint) error
	Sweep(ctx context.Context) error
}

// SearchService defines medication search business logic
type SearchService interface {
	FreeText(ctx context.Context, query string) ([]Medication, error)
	ByAttributes(ctx context.Context, filters SearchFilters) ([]Medication, error)
	ClassifyImage(ctx context.Context, image []byte) (*Prediction, []Medication, error)
}

// PasswordService defines credential derivation operations
type PasswordService interface {
	Hash(password string) (hash, salt []byte, err error)
	HashWithSalt(password string, salt []byte) []byte
	Verify(password string, hash, salt []byte) bool
}

// Mailer defines outbound email delivery
type Mailer interface {
	Send(from, to, subject, body string) error
}

// Classifier defines the image classification capability
type Classifier interface {
	Classify(ctx context.Context, image []byte) (*Prediction, error)
}
