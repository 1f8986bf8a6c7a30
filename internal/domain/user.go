package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Accounts are owned by the external auth system;
// this service only reads them to resolve signers.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

// DisplayName returns the user's name, falling back to the email address.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
