// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the standard path for a collection's run record.
// Returns: ~/.zotnotify/state/<group>-<collection>.json
func DefaultPath(group, collection string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory is not accessible
		homeDir = "."
	}

	return filepath.Join(homeDir, ".zotnotify", "state", group+"-"+collection+".json")
}

// Load reads the run record from disk. A missing file returns (nil, nil):
// that is the normal cold-start case, not an error. A file that cannot be
// parsed returns a non-nil error so the caller can log it, but the caller
// is expected to proceed with cold-start behavior rather than abort — a
// corrupt cursor must never block the run.
func Load(path string) (*RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var rec RunRecord
	if unmarshalErr := json.Unmarshal(data, &rec); unmarshalErr != nil {
		return nil, fmt.Errorf("state file %s is corrupted (invalid JSON): %w", path, unmarshalErr)
	}

	return &rec, nil
}

// Save atomically writes the run record to disk.
// It uses a write-to-temp-and-rename pattern to ensure atomicity: either
// the whole record is replaced or the previous one remains authoritative.
func Save(rec *RunRecord, path string) error {
	// Ensure the directory exists
	stateDir := filepath.Dir(path)
	if mkdirErr := os.MkdirAll(stateDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create state directory: %w", mkdirErr)
	}

	// Marshal record to compact JSON
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write to a temporary file with restricted permissions
	tempFile := path + ".tmp"
	if writeErr := os.WriteFile(tempFile, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write temporary state file: %w", writeErr)
	}

	// Sync to ensure data is flushed to disk
	file, err := os.Open(tempFile)
	if err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
