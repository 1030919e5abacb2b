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
	"encoding/json"
	"fmt"
	"os"

	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
)

// FixtureClient implements the Client interface by reading items from a
// local JSON file instead of the live API. Used by the --input flag to
// exercise the whole pipeline against a known payload; runs driven by a
// fixture never touch the persisted cursor.
type FixtureClient struct {
	path string
}

// NewFixtureClient creates a client that serves items from the given file.
// The file must contain a JSON array of items in the API's wire format.
func NewFixtureClient(path string) *FixtureClient {
	return &FixtureClient{path: path}
}

// FetchItems implements the Client interface. The group, collection and
// version cursor are ignored; the fixture is returned as-is so tests can
// control exactly what the engine sees.
func (c *FixtureClient) FetchItems(ctx context.Context, group, collection string, opts FetchOptions) ([]Item, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %v: %w", c.path, err, relaierrors.ErrSourceUnavailable)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding fixture %s: %v: %w", c.path, err, relaierrors.ErrSourceUnavailable)
	}

	return items, nil
}
