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

// Package state persists the run cursor between zotnotify invocations.
//
// The cursor is a small JSON record holding the previous run's start time
// and the highest Zotero item version seen so far. Every write is atomic,
// using a write-to-temp-and-rename pattern so a crash mid-write leaves the
// previous record authoritative. A missing or corrupt record is never
// fatal: the caller falls back to cold-start behavior.
//
// Example usage:
//
//	rec := &state.RunRecord{
//	    Time:    runStart,
//	    Version: 4711,
//	}
//	err := state.Save(rec, state.DefaultPath("12345", "ABCDEF12"))
package state
