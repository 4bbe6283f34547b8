// Package inquiries handles contact form submissions.
package inquiries

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"log/slog"

	"github.com/karloscodes/cartridge/sqlite"
	"gorm.io/gorm"
)

// StatusNew marks an inquiry nobody has looked at yet.
const StatusNew = "new"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InvalidInquiryError represents a contact submission that fails validation
type InvalidInquiryError struct {
	Field string
}

func (e *InvalidInquiryError) Error() string {
	return fmt.Sprintf("invalid inquiry: %s", e.Field)
}

// NewInvalidInquiryError creates a new InvalidInquiryError
func NewInvalidInquiryError(field string) *InvalidInquiryError {
	return &InvalidInquiryError{Field: field}
}

// Inquiry is one contact form submission.
type Inquiry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"not null;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Create validates and stores a contact submission. Name, email, and message
// are all required; the email must at least look like an address.
func Create(db *gorm.DB, logger *slog.Logger, name, email, message string) (*Inquiry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, NewInvalidInquiryError("name")
	}
	if email == "" || !emailPattern.MatchString(email) {
		return nil, NewInvalidInquiryError("email")
	}
	if message == "" {
		return nil, NewInvalidInquiryError("message")
	}

	inquiry := &Inquiry{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    StatusNew,
		CreatedAt: time.Now().UTC(),
	}

	err := sqlite.PerformWrite(logger, db, func(tx *gorm.DB) error {
		return tx.Create(inquiry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	logger.Info("Stored inquiry", slog.String("email", inquiry.Email))
	return inquiry, nil
}

// ListRecent returns up to limit inquiries, newest first.
func ListRecent(db *gorm.DB, limit int) ([]Inquiry, error) {
	if limit < 1 {
		limit = 50
	}

	var all []Inquiry
	if err := db.Order("created_at DESC").Limit(limit).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	return all, nil
}
