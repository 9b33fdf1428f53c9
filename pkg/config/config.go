// Package config loads and saves the profile catalog. The on-disk format is
// a single JSON document holding the pull-profile map; map keys serialize in
// sorted order so edits produce minimal diffs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hubsync/hubsync/pkg/profile"
)

// filePerm is the mode used when creating the catalog file.
const filePerm = 0o644

// Load reads the catalog at path. A missing file is not an error; it yields
// an empty store so first runs work without any setup.
func Load(path string) (*profile.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profile.NewStore(), nil
		}

		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	store := profile.NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return store, nil
}

// Save writes the catalog to path as indented JSON.
func Save(path string, store *profile.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
