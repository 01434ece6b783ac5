// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reloguito/legisbot-tui/internal/util"
)

// =============================================================================
// CREDENTIAL STORE
// =============================================================================

// CredentialStore persists the single bearer token between runs. Absence of
// a stored token means unauthenticated.
type CredentialStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	// Save stores the token, replacing any previous one.
	Save(token string) error
	// Delete removes the stored token. Deleting an absent token is not an
	// error.
	Delete() error
}

// =============================================================================
// FILE-BASED CREDENTIAL STORE
// =============================================================================

// FileCredentialStore keeps the token in a single file with restricted
// permissions (0600), the durable client-local storage of this client.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore creates a credential store at the given path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

// DefaultCredentialPath returns the default token location.
func DefaultCredentialPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".legisbot", "token")
	}
	return filepath.Join(home, ".legisbot", "token")
}

// Load reads the stored token. A missing file is not an error.
func (f *FileCredentialStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save stores the token.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func (f *FileCredentialStore) Save(token string) error {
	if err := util.AtomicWriteFile(f.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Delete removes the token file.
func (f *FileCredentialStore) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}
