// Package engagement tracks per-listing view, keep, and share counters.
package engagement

import (
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/karloscodes/cartridge/sqlite"
	"gorm.io/gorm"

	"ttig/internal/places"
)

// Kind is the engagement action being counted.
type Kind string

// Engagement kinds.
const (
	KindView  Kind = "view"
	KindKeep  Kind = "keep"
	KindShare Kind = "share"
)

// EngagementStat is the cumulative engagement counters for one listing.
type EngagementStat struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	PlaceID   string    `gorm:"uniqueIndex;not null" json:"place_id"`
	Slug      string    `gorm:"index" json:"slug"`
	Views     int       `gorm:"not null;default:0" json:"views"`
	Keeps     int       `gorm:"not null;default:0" json:"keeps"`
	Shares    int       `gorm:"not null;default:0" json:"shares"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// kindColumn maps a kind to its counter column. The return value is
// interpolated into SQL so it must never come from request data directly.
func kindColumn(kind Kind) (string, error) {
	switch kind {
	case KindView:
		return "views", nil
	case KindKeep:
		return "keeps", nil
	case KindShare:
		return "shares", nil
	}
	return "", fmt.Errorf("unknown engagement kind: %s", kind)
}

// Increment counts one engagement action for the listing identified by ID or
// slug. The counter row is created on first touch via a conflict-safe upsert.
// An unknown listing is logged and swallowed: the catalog lives in a file the
// admin edits by hand, and a stale frontend must not surface errors to
// visitors.
func Increment(db *gorm.DB, logger *slog.Logger, store *places.Store, idOrSlug string, kind Kind) error {
	column, err := kindColumn(kind)
	if err != nil {
		return err
	}

	place, err := store.Find(idOrSlug)
	if err != nil {
		if places.IsNotFound(err) {
			logger.Warn("Engagement for unknown place", slog.String("key", idOrSlug), slog.String("kind", string(kind)))
			return nil
		}
		return err
	}

	return sqlite.PerformWrite(logger, db, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		query := fmt.Sprintf(`
			INSERT INTO engagement_stats (place_id, slug, %s, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?)
			ON CONFLICT (place_id) DO UPDATE SET
				%s = engagement_stats.%s + 1,
				slug = ?,
				updated_at = ?
		`, column, column, column)
		if err := tx.Exec(query, place.ID, place.Slug, now, now, place.Slug, now).Error; err != nil {
			return fmt.Errorf("failed to upsert engagement stat for %s: %w", place.ID, err)
		}
		return nil
	})
}

// Get returns the counters for one listing; a listing nobody has touched
// returns zeroed counters rather than an error.
func Get(db *gorm.DB, placeID string) (*EngagementStat, error) {
	var stat EngagementStat
	err := db.Where("place_id = ?", placeID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &EngagementStat{PlaceID: placeID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement stat: %w", err)
	}
	return &stat, nil
}

// ListAll returns every counter row, most viewed first, for the admin
// dashboard.
func ListAll(db *gorm.DB) ([]EngagementStat, error) {
	var stats []EngagementStat
	if err := db.Order("views DESC").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to query engagement stats: %w", err)
	}
	return stats, nil
}
