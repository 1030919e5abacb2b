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

import "context"

// Client defines the interface for fetching items from a Zotero group feed.
// This interface allows for easy mocking in tests and for substituting the
// live API with a fixture file.
type Client interface {
	// FetchItems retrieves top-level items of the given group collection.
	// Items are returned in server order (most recently modified first);
	// callers must not assume chronological order. The opts.Since version
	// cursor restricts the result to items modified after that version.
	FetchItems(ctx context.Context, group, collection string, opts FetchOptions) ([]Item, error)
}
