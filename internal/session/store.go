// Package session keeps the logged-in user's credentials between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thomas-vilte/tickety/internal/models"
)

const FileName = "credentials.json"

type envCredentials struct {
	User  string `env:"TICKETY_USER"`
	Token string `env:"TICKETY_TOKEN"`
}

// Store persists a single Credentials value under one file.
type Store struct {
	path string
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Path returns the credentials file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored credentials, or nil when nobody is logged in.
// TICKETY_USER and TICKETY_TOKEN, when both set, take precedence over the file.
func (s *Store) Load() (*models.Credentials, error) {
	var fromEnv envCredentials
	if err := env.Parse(&fromEnv); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	if fromEnv.User != "" && fromEnv.Token != "" {
		return &models.Credentials{Name: fromEnv.User, Token: fromEnv.Token}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading credentials: %w", err)
	}

	var creds models.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("error decoding credentials: %w", err)
	}
	return &creds, nil
}

// Save stores creds verbatim. A nil value removes the stored credentials.
func (s *Store) Save(creds *models.Credentials) error {
	if creds == nil {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error removing credentials: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("error creating credentials directory: %w", err)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("error encoding credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("error saving credentials: %w", err)
	}
	return nil
}
