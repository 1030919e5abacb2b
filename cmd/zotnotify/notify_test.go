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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
	"github.com/sirseerhq/zotero-notify/internal/state"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "invalid api key", err: fmt.Errorf("auth: %w", relaierrors.ErrInvalidAPIKey), want: 2},
		{name: "collection not found", err: fmt.Errorf("missing: %w", relaierrors.ErrCollectionNotFound), want: 2},
		{name: "partial delivery", err: fmt.Errorf("2 skipped: %w", relaierrors.ErrPartialDelivery), want: 2},
		{name: "source unavailable", err: fmt.Errorf("fetch: %w", relaierrors.ErrSourceUnavailable), want: 3},
		{name: "state write", err: fmt.Errorf("save: %w", relaierrors.ErrStateWrite), want: 1},
		{name: "generic error", err: errors.New("something else"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "items.json")
	fixture := `[
		{"key": "K1", "version": 10, "data": {"key": "K1", "title": "First", "dateAdded": "2024-01-01T00:00:00Z"}}
	]`
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunNotify_FixtureModeNeverTouchesState(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tempDir := t.TempDir()
	stateFile := filepath.Join(tempDir, "run.json")
	opts := &notifyOptions{
		input:     writeFixture(t, tempDir),
		stateFile: stateFile,
	}

	// Repeated fixture runs must be idempotent and side-effect free.
	for i := 0; i < 3; i++ {
		if err := runNotify(context.Background(), opts); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if _, err := os.Stat(stateFile); !os.IsNotExist(err) {
			t.Fatalf("run %d wrote the state file", i)
		}
	}
}

func TestRunNotify_DryRunPreservesExistingState(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tempDir := t.TempDir()
	stateFile := filepath.Join(tempDir, "run.json")
	prior := &state.RunRecord{Version: 77}
	if err := state.Save(prior, stateFile); err != nil {
		t.Fatal(err)
	}

	opts := &notifyOptions{
		input:     writeFixture(t, tempDir),
		stateFile: stateFile,
		dryRun:    true,
	}
	if err := runNotify(context.Background(), opts); err != nil {
		t.Fatalf("runNotify failed: %v", err)
	}

	loaded, err := state.Load(stateFile)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Version != 77 {
		t.Errorf("state version = %d, want untouched 77", loaded.Version)
	}
}

func TestRunNotify_EndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Fake Zotero API serving one item, regardless of window.
	zoteroSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"key": "K1", "version": 101, "data": {"key": "K1", "title": "First", "dateAdded": "2024-01-02T00:00:00Z"}}
		]`))
	}))
	defer zoteroSrv.Close()
	t.Setenv("ZOTERO_API_ENDPOINT", zoteroSrv.URL)

	// Fake Slack webhook counting deliveries.
	deliveries := 0
	slackSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deliveries++
	}))
	defer slackSrv.Close()

	tempDir := t.TempDir()
	stateFile := filepath.Join(tempDir, "run.json")
	opts := &notifyOptions{
		group:      "12345",
		collection: "ABCDEF12",
		apiKey:     "test-key",
		webhook:    slackSrv.URL,
		stateFile:  stateFile,
	}

	// First run: cold start, the item is announced and the cursor written.
	if err := runNotify(context.Background(), opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if deliveries != 1 {
		t.Fatalf("deliveries after first run = %d, want 1", deliveries)
	}

	rec, err := state.Load(stateFile)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if rec == nil {
		t.Fatal("state file not written after successful run")
	}
	if rec.Version != 101 {
		t.Errorf("state version = %d, want 101", rec.Version)
	}
	if rec.ArticleCount != 1 {
		t.Errorf("state articles_cnt = %d, want 1", rec.ArticleCount)
	}

	// Second run: the same item comes back (version window includes edits)
	// but its dateAdded predates the stored run time, so nothing is sent.
	if err := runNotify(context.Background(), opts); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if deliveries != 1 {
		t.Errorf("deliveries after second run = %d, want still 1", deliveries)
	}

	rec, err = state.Load(stateFile)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if rec.Version != 101 {
		t.Errorf("state version after second run = %d, want 101", rec.Version)
	}
}

func TestRunNotify_PartialDeliveryStillAdvancesCursor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	zoteroSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"key": "K1", "version": 101, "data": {"key": "K1", "title": "First", "dateAdded": "2024-01-02T00:00:00Z"}}
		]`))
	}))
	defer zoteroSrv.Close()
	t.Setenv("ZOTERO_API_ENDPOINT", zoteroSrv.URL)

	slackSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel_is_archived", http.StatusGone)
	}))
	defer slackSrv.Close()

	tempDir := t.TempDir()
	stateFile := filepath.Join(tempDir, "run.json")
	opts := &notifyOptions{
		group:      "12345",
		collection: "ABCDEF12",
		apiKey:     "test-key",
		webhook:    slackSrv.URL,
		stateFile:  stateFile,
	}

	err := runNotify(context.Background(), opts)
	if !errors.Is(err, relaierrors.ErrPartialDelivery) {
		t.Fatalf("runNotify error = %v, want ErrPartialDelivery", err)
	}
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}

	// The skipped notification is lost, not retried: the cursor advances.
	rec, loadErr := state.Load(stateFile)
	if loadErr != nil || rec == nil {
		t.Fatalf("state not written: %v", loadErr)
	}
	if rec.Version != 101 {
		t.Errorf("state version = %d, want 101", rec.Version)
	}
	if rec.Skipped != 1 {
		t.Errorf("state skipped = %d, want 1", rec.Skipped)
	}
}

func TestRunNotify_MissingCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ZOTERO_API_KEY", "")
	t.Setenv("SLACK_WEBHOOK_URL", "")

	tests := []struct {
		name string
		opts notifyOptions
	}{
		{
			name: "missing group and collection",
			opts: notifyOptions{apiKey: "k", webhook: "https://example.com"},
		},
		{
			name: "missing api key",
			opts: notifyOptions{group: "1", collection: "C", webhook: "https://example.com"},
		},
		{
			name: "missing webhook",
			opts: notifyOptions{group: "1", collection: "C", apiKey: "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runNotify(context.Background(), &tt.opts); err == nil {
				t.Error("runNotify should fail on missing settings")
			}
		})
	}
}
