package places

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a file-backed catalog of listings. The whole collection lives in a
// single JSON array on disk; every write rewrites the file through a temp
// file rename so a crash can never leave a truncated catalog behind. A mutex
// serializes read-modify-write cycles across handlers.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the JSON file at path. The file does not
// have to exist yet; a missing catalog reads as empty.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// All returns every listing in catalog order (newest first). A missing or
// corrupt file returns an empty list: the public site must render even when
// the catalog is broken.
func (s *Store) All() []Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// FindBySlug returns the listing with the given slug.
func (s *Store) FindBySlug(slug string) (*Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, place := range s.read() {
		if place.Slug == slug {
			return &place, nil
		}
	}
	return nil, NewPlaceNotFoundError(slug)
}

// FindByID returns the listing with the given ID.
func (s *Store) FindByID(id string) (*Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, place := range s.read() {
		if place.ID == id {
			return &place, nil
		}
	}
	return nil, NewPlaceNotFoundError(id)
}

// Find resolves a listing by ID first, then by slug. Engagement endpoints
// accept either key.
func (s *Store) Find(idOrSlug string) (*Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.read()
	for _, place := range all {
		if place.ID == idOrSlug {
			return &place, nil
		}
	}
	for _, place := range all {
		if place.Slug == idOrSlug {
			return &place, nil
		}
	}
	return nil, NewPlaceNotFoundError(idOrSlug)
}

// ByCategory returns the listings in the given category, catalog order.
func (s *Store) ByCategory(category string) []Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Place
	for _, place := range s.read() {
		if place.Category == category {
			matched = append(matched, place)
		}
	}
	return matched
}

// Add prepends a listing so the newest entry leads the catalog.
func (s *Store) Add(place Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := append([]Place{place}, s.read()...)
	return s.write(all)
}

// Update replaces the listing with the same ID.
func (s *Store) Update(place Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.read()
	for i := range all {
		if all[i].ID == place.ID {
			all[i] = place
			return s.write(all)
		}
	}
	return NewPlaceNotFoundError(place.ID)
}

// Remove deletes the listing with the given ID. Removing an unknown ID is a
// no-op write.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.read()
	kept := all[:0]
	for _, place := range all {
		if place.ID != id {
			kept = append(kept, place)
		}
	}
	return s.write(kept)
}

// read loads the catalog from disk. Callers must hold s.mu.
func (s *Store) read() []Place {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Place{}
	}

	var all []Place
	if err := json.Unmarshal(data, &all); err != nil {
		return []Place{}
	}
	return all
}

// write persists the whole catalog atomically. Callers must hold s.mu.
func (s *Store) write(all []Place) error {
	if all == nil {
		all = []Place{}
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize places: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create places directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".places-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp places file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write places file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close places file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace places file: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a listing lookup miss.
func IsNotFound(err error) bool {
	var notFound *PlaceNotFoundError
	return errors.As(err, &notFound)
}
