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

// Package zotero fetches top-level items from a Zotero group collection.
//
// The package exposes a small Client interface with three implementations:
// HTTPClient talks to the live v3 web API, MockClient serves canned data in
// tests, and FixtureClient replays a JSON file for offline dry runs. One
// call fetches one page; pagination, retry, and backoff are deliberately
// out of scope — the caller treats any fetch failure as fatal to the run.
package zotero
