package services

import (
	"log"
	"time"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// LogAuditLogger implements domain.AuditLogger on the process log
type LogAuditLogger struct{}

// NewAuditLogger creates a new log-based audit logger
func NewAuditLogger() domain.AuditLogger {
	return &LogAuditLogger{}
}

// LogEvent implements domain.AuditLogger
func (l *LogAuditLogger) LogEvent(event *domain.AuditEvent) {
	if event.Success {
		log.Printf("%s: user_id=%d email=%s timestamp=%s",
			event.EventType, event.UserID, event.Email, event.Timestamp.Format(time.RFC3339))
		return
	}
	log.Printf("%s: user_id=%d email=%s error=%q timestamp=%s",
		event.EventType, event.UserID, event.Email, event.ErrorMsg, event.Timestamp.Format(time.RFC3339))
}
