// Package preferences keeps user-facing settings such as the banner theme
// behind an explicit accessor/mutator pair with a defined persistence step.
package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const DefaultTheme = "midnight"

type Store interface {
	Theme() string
	SetTheme(theme string) error
}

type document struct {
	Theme string `yaml:"theme"`
}

// FileStore loads the YAML file once and rewrites it on every change.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	theme string
	valid func(string) bool
}

// Open reads path if it exists. valid, when not nil, rejects unknown themes.
func Open(path string, valid func(string) bool) (*FileStore, error) {
	fs := &FileStore{path: path, theme: DefaultTheme, valid: valid}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if doc.Theme != "" {
		fs.theme = doc.Theme
	}
	return fs, nil
}

func (fs *FileStore) Theme() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.theme
}

func (fs *FileStore) SetTheme(theme string) error {
	if fs.valid != nil && !fs.valid(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fs.save(document{Theme: theme}); err != nil {
		return err
	}
	fs.theme = theme
	return nil
}

func (fs *FileStore) save(doc document) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
