// Package visitors resolves anonymous visitor identities for analytics.
package visitors

import (
	"time"

	"github.com/google/uuid"
)

// IdentityTTL is how long a visitor identity stays valid. A returning browser
// within this window counts as the same visitor; after it expires the next
// page view mints a fresh identity and counts as a new visitor.
const IdentityTTL = 24 * time.Hour

// CookieName is the cookie that carries the visitor identity between requests.
const CookieName = "visitor_id"

// Identity is an anonymous visitor identity. It carries no fingerprint and no
// personal data, only a random ID with a bounded lifetime.
type Identity struct {
	ID       string
	IssuedAt time.Time
	New      bool
}

// Resolve returns the identity for a request. A non-empty existing ID (from
// the visitor cookie) is honored as-is; otherwise a fresh random identity is
// minted and marked New so the caller knows to set the cookie and count a
// unique visitor.
func Resolve(existingID string) Identity {
	if existingID != "" {
		return Identity{ID: existingID, IssuedAt: time.Now(), New: false}
	}

	return Identity{
		ID:       uuid.New().String(),
		IssuedAt: time.Now(),
		New:      true,
	}
}
