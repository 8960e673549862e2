// Package store reads and writes the persisted state document and the daily
// history log. Load never fails past its boundary: missing or unreadable
// state falls back to defaults so the process always starts.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
	"github.com/julianstephens/dailydash/internal/models"
)

// Store persists the state aggregate as one JSON document.
type Store struct {
	path string

	// Recovered is set when Load fell back to defaults because the previous
	// state file was corrupt; the caller surfaces this to the user once.
	Recovered bool
}

// New returns a store rooted at the given config directory.
func New(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, constants.StateFileName)}
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Load reads, migrates and decodes the state file. A missing file yields
// defaults (after a one-time copy-forward of a legacy config.json in the
// working directory); a malformed file is logged and also yields defaults.
func (s *Store) Load() *models.Aggregate {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if legacy, lerr := os.ReadFile(constants.LegacyStateFile); lerr == nil {
			logger.Info("found legacy state file, copying forward", "from", constants.LegacyStateFile, "to", s.path)
			data = legacy
		} else {
			return models.DefaultAggregate()
		}
	} else if err != nil {
		logger.Warn("state file unreadable, starting from defaults", "path", s.path, "error", err)
		s.Recovered = true
		return models.DefaultAggregate()
	}

	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("state file corrupt, starting from defaults", "path", s.path, "error", err)
		s.quarantine()
		return models.DefaultAggregate()
	}

	Migrate(doc)

	// Decode the migrated document on top of defaults so fields added in
	// later schema versions keep their default values.
	agg := models.DefaultAggregate()
	migrated, err := json.Marshal(doc)
	if err == nil {
		err = json.Unmarshal(migrated, agg)
	}
	if err != nil {
		logger.Warn("state file failed to decode after migration, starting from defaults", "path", s.path, "error", err)
		s.quarantine()
		return models.DefaultAggregate()
	}

	agg.Normalize()
	return agg
}

// quarantine moves a corrupt state file aside so the next Save does not
// destroy the evidence, and flags the recovery for the caller.
func (s *Store) quarantine() {
	s.Recovered = true
	if err := os.Rename(s.path, s.path+".corrupt"); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not preserve corrupt state file", "path", s.path, "error", err)
	}
}

// Save serializes the entire aggregate to a temp file and renames it into
// place, so a crash mid-write never leaves a truncated document behind.
func (s *Store) Save(agg *models.Aggregate) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, constants.StateFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set state file mode: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
