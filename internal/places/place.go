// Package places is the catalog of curated spaces, backed by a flat JSON file.
package places

import (
	"fmt"
	"strings"
)

// PlaceNotFoundError represents an error when a listing is not found
type PlaceNotFoundError struct {
	Key string
}

func (e *PlaceNotFoundError) Error() string {
	return fmt.Sprintf("place not found: %s", e.Key)
}

// NewPlaceNotFoundError creates a new PlaceNotFoundError
func NewPlaceNotFoundError(key string) *PlaceNotFoundError {
	return &PlaceNotFoundError{Key: key}
}

// Categories a listing can belong to.
var Categories = []string{"CAFE", "DINING", "CASUAL DINING", "STAY", "COMPLEX"}

// Districts the catalog covers.
var Districts = []string{"SEONGSU", "HANNAM", "GANGNAM", "JAMSIL", "NEARBY"}

// Amenity is a single amenity line on a listing.
type Amenity struct {
	Label string `json:"label"`
}

// Properties are the practical details shown on a listing page.
type Properties struct {
	District string `json:"district"`
	Address  string `json:"address"`
	Hours    string `json:"hours"`
	Parking  string `json:"parking"`
}

// Place is one curated space in the catalog.
type Place struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	District    string     `json:"district"`
	Status      string     `json:"status"`
	BookingURL  string     `json:"bookingUrl"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Amenities   []Amenity  `json:"amenities"`
	Properties  Properties `json:"properties"`
}

// BuildSlug derives the canonical URL slug for a listing:
// lowercased "district-category-title" with spaces turned into dashes.
func BuildSlug(district, category, title string) string {
	slug := strings.ToLower(fmt.Sprintf("%s-%s-%s", district, category, title))
	return strings.ReplaceAll(slug, " ", "-")
}
