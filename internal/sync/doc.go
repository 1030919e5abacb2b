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

// Package sync implements the incremental-sync core of zotnotify.
//
// A run reconciles two different signals from the Zotero API: the
// collection-wide version cursor, which moves on every create and edit, and
// each item's immutable dateAdded, which moves only on create. The version
// drives the fetch window; dateAdded decides what actually gets announced.
// Without that split, every edit to an old item would re-trigger its
// notification.
//
// The engine is strictly sequential and single-shot: one fetch, one
// classification pass, one chronological delivery loop, one outcome. All
// failure containment happens per item; only a fetch failure aborts a run.
package sync
