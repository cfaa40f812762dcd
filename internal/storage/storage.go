package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists rendered artifacts under a single output directory
type Store struct {
	outDir string
}

// New creates a new Store instance rooted at outDir
func New(outDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Store{
		outDir: outDir,
	}, nil
}

// Dir returns the resolved output directory
func (s *Store) Dir() string {
	return s.outDir
}

// Path returns the path an artifact of the given name is written to
func (s *Store) Path(name string) string {
	return filepath.Join(s.outDir, name)
}

// WriteFile writes a fully rendered artifact to the output directory
func (s *Store) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", name, err)
	}
	return nil
}

// WriteJSON writes v to the output directory as indented JSON
func (s *Store) WriteJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding artifact %s: %w", name, err)
	}
	return s.WriteFile(name, data)
}
