package analytics

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/karloscodes/cartridge/sqlite"
	"gorm.io/gorm"
)

// DateFormat is the bucket key format for daily aggregates.
const DateFormat = "2006-01-02"

const writeTimeout = 5 * time.Second

// DailyStat is one day of aggregated page view counters. Rows are only ever
// inserted or incremented, never deleted. Visitors counts unique visitor
// identities; the four source counters only advance for new visitors, so
// organic + direct + referral + social never exceeds visitors.
type DailyStat struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Date      string    `gorm:"uniqueIndex;size:10;not null" json:"date"`
	Visitors  int       `gorm:"not null;default:0" json:"visitors"`
	PageViews int       `gorm:"not null;default:0" json:"pageViews"`
	Organic   int       `gorm:"not null;default:0" json:"-"`
	Direct    int       `gorm:"not null;default:0" json:"-"`
	Referral  int       `gorm:"not null;default:0" json:"-"`
	Social    int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TrafficSources returns the per-channel visitor counters as a map. All four
// channels are always present, zero-valued when nothing has been counted.
func (s *DailyStat) TrafficSources() map[TrafficSource]int {
	return map[TrafficSource]int{
		SourceOrganic:  s.Organic,
		SourceDirect:   s.Direct,
		SourceReferral: s.Referral,
		SourceSocial:   s.Social,
	}
}

// sourceColumn maps a traffic source to its counter column. Only known
// sources map to a column; the return value is interpolated into SQL so it
// must never come from request data directly.
func sourceColumn(source TrafficSource) (string, error) {
	switch source {
	case SourceOrganic:
		return "organic", nil
	case SourceDirect:
		return "direct", nil
	case SourceReferral:
		return "referral", nil
	case SourceSocial:
		return "social", nil
	}
	return "", fmt.Errorf("unknown traffic source: %s", source)
}

// RecordPageView counts one page view in the daily bucket for the given time.
// The visitor and source counters only advance when the visitor is new. The
// whole update is a single conflict-safe upsert so concurrent requests for
// the same day never lose increments. Returns the bucket after the update.
func RecordPageView(db *gorm.DB, logger *slog.Logger, at time.Time, isNewVisitor bool, source TrafficSource) (*DailyStat, error) {
	date := at.UTC().Format(DateFormat)

	column, err := sourceColumn(source)
	if err != nil {
		return nil, err
	}

	visitorInc := 0
	sourceInc := 0
	if isNewVisitor {
		visitorInc = 1
		sourceInc = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err = sqlite.PerformWrite(logger, db.WithContext(ctx), func(tx *gorm.DB) error {
		now := time.Now().UTC()
		query := fmt.Sprintf(`
			INSERT INTO daily_stats (date, visitors, page_views, %s, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET
				page_views = daily_stats.page_views + 1,
				visitors = daily_stats.visitors + ?,
				%s = daily_stats.%s + ?,
				updated_at = ?
		`, column, column, column)
		if err := tx.Exec(query, date, visitorInc, sourceInc, now, now, visitorInc, sourceInc, now).Error; err != nil {
			return fmt.Errorf("failed to upsert daily stat for %s: %w", date, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var stat DailyStat
	if err := db.Where("date = ?", date).First(&stat).Error; err != nil {
		return nil, fmt.Errorf("failed to reload daily stat for %s: %w", date, err)
	}
	return &stat, nil
}

// StatsSince returns the daily buckets for the last N days (today included),
// ordered ascending by date. Days with no traffic have no row.
func StatsSince(db *gorm.DB, days int) ([]DailyStat, error) {
	if days < 1 {
		days = 1
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -(days - 1)).Format(DateFormat)

	var stats []DailyStat
	if err := db.Where("date >= ?", cutoff).Order("date ASC").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	return stats, nil
}
