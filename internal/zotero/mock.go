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
	"fmt"
	"time"

	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Items to return
	Items []Item

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	CallCount      int
	LastGroup      string
	LastCollection string
	LastOpts       FetchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Items: generateTestItems(),
	}
}

// FetchItems implements the Client interface
func (m *MockClient) FetchItems(ctx context.Context, group, collection string, opts FetchOptions) ([]Item, error) {
	// Track the call
	m.CallCount++
	m.LastGroup = group
	m.LastCollection = collection
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Simulate various error conditions
	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", relaierrors.ErrInvalidAPIKey)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", relaierrors.ErrSourceUnavailable)
	}

	// Return configured error if set
	if m.Error != nil {
		return nil, m.Error
	}

	// Respect the requested limit, as the real server would
	items := m.Items
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}

	return items, nil
}

// generateTestItems creates sample item data for testing, newest first.
func generateTestItems() []Item {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	return []Item{
		{
			Key:     "KEY3",
			Version: 103,
			Data: ItemData{
				Key:              "KEY3",
				ItemType:         "journalArticle",
				Title:            "Attention mechanisms in sequence labeling",
				PublicationTitle: "Journal of Machine Learning",
				DOI:              "10.1000/jml.2024.003",
				DateAdded:        now.Format(time.RFC3339),
			},
			Meta: ItemMeta{CreatorSummary: "Chen et al."},
		},
		{
			Key:     "KEY2",
			Version: 102,
			Data: ItemData{
				Key:        "KEY2",
				ItemType:   "thesis",
				Title:      "Graph embeddings at scale",
				University: "Example University",
				DateAdded:  yesterday.Format(time.RFC3339),
			},
			Meta: ItemMeta{CreatorSummary: "Okafor"},
		},
		{
			Key:     "KEY1",
			Version: 101,
			Data: ItemData{
				Key:              "KEY1",
				ItemType:         "journalArticle",
				Title:            "A survey of citation networks",
				PublicationTitle: "Scientometrics",
				DateAdded:        lastWeek.Format(time.RFC3339),
			},
			Meta: ItemMeta{CreatorSummary: "Alvarez and Burke"},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithItems sets specific items to return
func WithItems(items []Item) MockClientOption {
	return func(m *MockClient) {
		m.Items = items
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
