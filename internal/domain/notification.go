package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a single notification addressed to one signer about one agreement.
type Notice struct {
	Kind           NotificationKind
	Recipient      User
	AgreementID    uuid.UUID
	AgreementTitle string
	Deadline       *time.Time
}

// InAppNotification is a row in the user's notification feed.
type InAppNotification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Message   string
	Link      *string
	Read      bool
	CreatedAt time.Time
}

// EmailLog records one outbound email and its delivery outcome.
type EmailLog struct {
	ID           uuid.UUID
	Type         string
	ToEmail      string
	Subject      string
	Status       EmailStatus
	ErrorMessage *string
	Metadata     map[string]any
	SentAt       *time.Time
	CreatedAt    time.Time
}

// EmailMessage is one outbound HTML email.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}
