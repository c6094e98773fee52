package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("another user with that email address already exists")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrInvalidSession  = errors.New("invalid session")
)

// Medication errors
var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrNoResults          = errors.New("no medications matched")
)

// Collaborator errors
var (
	ErrMailDelivery = errors.New("mail delivery failed")
)
