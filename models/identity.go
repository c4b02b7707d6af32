package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated user as read from the external identity
// provider's token. The service never manages credentials itself.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
