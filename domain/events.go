package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account lifecycle events
	UserSignupEvent        AuditEventType = "USER_SIGNED_UP"
	UserLoginEvent         AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent  AuditEventType = "USER_LOGIN_FAILED"
	UserLogoutEvent        AuditEventType = "USER_LOGOUT"
	UserDeletedEvent       AuditEventType = "USER_DELETED"
	ProfileUpdatedEvent    AuditEventType = "PROFILE_UPDATED"

	// Credential events
	PasswordResetEvent        AuditEventType = "PASSWORD_RESET_REQUESTED"
	PasswordResetFailureEvent AuditEventType = "PASSWORD_RESET_FAILED"
	PasswordChangedEvent      AuditEventType = "PASSWORD_CHANGED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}
