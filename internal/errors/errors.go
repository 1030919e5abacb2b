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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidAPIKey indicates Zotero authentication failed.
	// Maps to exit code 2.
	ErrInvalidAPIKey = errors.New("invalid zotero api key")

	// ErrCollectionNotFound indicates the group or collection does not exist
	// or is not accessible with the given key.
	// Maps to exit code 2.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrSourceUnavailable indicates the Zotero feed could not be fetched
	// (transport failure or unexpected HTTP status). The run is aborted and
	// the persisted cursor is left untouched.
	// Maps to exit code 3.
	ErrSourceUnavailable = errors.New("zotero feed unavailable")

	// ErrPartialDelivery indicates the run completed but one or more
	// notifications were skipped (malformed item or webhook failure).
	// The cursor still advances; the scheduler sees exit code 2.
	ErrPartialDelivery = errors.New("one or more notifications skipped")

	// ErrStateWrite indicates the run record could not be persisted.
	// Notifications may already have been delivered, so the next run will
	// re-announce them; surfaced loudly rather than swallowed.
	// Maps to exit code 1.
	ErrStateWrite = errors.New("failed to write run state")
)
