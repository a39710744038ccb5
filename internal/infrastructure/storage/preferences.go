// Package storage persists player preferences between sessions.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// PreferencesItem is the gdata item key
const PreferencesItem = "preferences"

// Preferences is the data stored on disk
type Preferences struct {
	ShowStatistics bool `json:"showStatistics"`
	LastSelection  int  `json:"lastSelection"`
}

// Store loads and saves preferences. Load returns ok=false when nothing has
// been saved yet.
type Store interface {
	Load() (prefs Preferences, ok bool, err error)
	Save(prefs Preferences) error
}

// GDataStore keeps preferences in the per-user application data directory
type GDataStore struct {
	m *gdata.Manager
}

// Open opens the gdata storage for appName
func Open(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// Load reads the stored preferences
func (s *GDataStore) Load() (Preferences, bool, error) {
	data, err := s.m.LoadItem(PreferencesItem)
	if err != nil {
		return Preferences{}, false, fmt.Errorf("failed to load preferences: %w", err)
	}
	return decode(data)
}

// Save writes prefs
func (s *GDataStore) Save(prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.m.SaveItem(PreferencesItem, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences for the lifetime of the process. It backs
// sessions where the on-disk store could not be opened.
type MemoryStore struct {
	data []byte
}

// Load returns what was last saved
func (s *MemoryStore) Load() (Preferences, bool, error) {
	return decode(s.data)
}

// Save remembers prefs
func (s *MemoryStore) Save(prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func decode(data []byte) (Preferences, bool, error) {
	if len(data) == 0 {
		return Preferences{}, false, nil
	}
	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, false, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return prefs, true, nil
}
