package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// OutboxEventType names a domain event staged for at-least-once delivery.
type OutboxEventType string

const (
	EventEmailNotification OutboxEventType = "EmailNotification"
)

// EmailNotificationPayload is the stable wire shape published to the
// broker for EventEmailNotification rows.
type EmailNotificationPayload struct {
	RecipientEmail string            `json:"recipientEmail"`
	Subject        string            `json:"subject"`
	TemplateCode   string            `json:"templateCode"`
	Variables      map[string]string `json:"variables"`
}

// JSONPayload is a serialized event document stored as jsonb.
type JSONPayload json.RawMessage

func (p *JSONPayload) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed for JSONPayload")
	}
	*p = append((*p)[:0], bytes...)
	return nil
}

func (p JSONPayload) Value() (driver.Value, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return []byte(p), nil
}

// OutboxMessage stages a domain event so it commits atomically with the
// business change that produced it; the dispatcher later claims and
// publishes it with bounded retries.
type OutboxMessage struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventType      OutboxEventType `gorm:"type:varchar(64);not null" json:"eventType"`
	Payload        JSONPayload     `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAtUtc   time.Time       `gorm:"not null" json:"createdAtUtc"`
	ProcessingAtUtc *time.Time     `json:"processingAtUtc,omitempty"`
	ProcessedAtUtc  *time.Time     `json:"processedAtUtc,omitempty"`
	RetryCount      int            `gorm:"not null;default:0" json:"retryCount"`
	ErrorMessage    *string        `gorm:"type:text" json:"errorMessage,omitempty"`
}

func (OutboxMessage) TableName() string {
	return "outbox_messages"
}

// IsPoisoned reports whether this row has exhausted its retry budget and
// was terminally marked processed without ever publishing successfully.
func (m *OutboxMessage) IsPoisoned(maxRetries int) bool {
	return m.ProcessedAtUtc != nil && m.RetryCount >= maxRetries
}
