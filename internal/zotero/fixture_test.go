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

package zotero

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
)

func TestFixtureClient(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "items.json")

	fixture := `[
		{"key": "K1", "version": 10, "data": {"key": "K1", "title": "First", "dateAdded": "2024-01-01T00:00:00Z"}},
		{"key": "K2", "version": 11, "data": {"key": "K2", "title": "Second", "dateAdded": "2024-01-02T00:00:00Z"}}
	]`
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}

	client := NewFixtureClient(path)
	items, err := client.FetchItems(context.Background(), "ignored", "ignored", FetchOptions{Limit: 1, Since: 999})
	if err != nil {
		t.Fatalf("FetchItems failed: %v", err)
	}

	// The fixture is returned as-is, ignoring limit and since.
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Key != "K1" || items[1].Key != "K2" {
		t.Errorf("items = %v, want K1, K2", []string{items[0].Key, items[1].Key})
	}
}

func TestFixtureClient_Errors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		client := NewFixtureClient(filepath.Join(tempDir, "nope.json"))
		_, err := client.FetchItems(context.Background(), "g", "c", FetchOptions{})
		if !errors.Is(err, relaierrors.ErrSourceUnavailable) {
			t.Errorf("error = %v, want ErrSourceUnavailable", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad.json")
		if err := os.WriteFile(path, []byte("{oops"), 0o600); err != nil {
			t.Fatal(err)
		}
		client := NewFixtureClient(path)
		_, err := client.FetchItems(context.Background(), "g", "c", FetchOptions{})
		if !errors.Is(err, relaierrors.ErrSourceUnavailable) {
			t.Errorf("error = %v, want ErrSourceUnavailable", err)
		}
	})
}
