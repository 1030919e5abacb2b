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
	"time"
)

// RunRecord is the persisted cursor for one notify run. It is written as a
// whole at the end of a successful run and read back at the start of the
// next one; there is no partial update.
type RunRecord struct {
	// Time is the UTC instant at which the previous run started. Items whose
	// dateAdded is strictly after this instant are treated as new.
	Time time.Time `json:"time"`

	// Version is the highest Zotero item version observed as of the previous
	// run. Used as the `since` parameter of the next fetch. Non-decreasing
	// across runs.
	Version int `json:"version"`

	// ArticleCount is the number of new items announced by the previous run.
	// Informational only.
	ArticleCount int `json:"articles_cnt"`

	// Skipped is the number of items the previous run failed to announce
	// (malformed records or webhook failures). Informational only.
	Skipped int `json:"skipped"`
}
