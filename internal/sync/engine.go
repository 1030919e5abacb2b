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

package sync

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirseerhq/zotero-notify/internal/state"
	"github.com/sirseerhq/zotero-notify/internal/zotero"
)

// Notifier delivers one classified-new item to its destination.
// Implementations must be safe to call sequentially; a returned error marks
// that single item as skipped and never aborts the run.
type Notifier interface {
	Notify(ctx context.Context, item zotero.Item) error
}

// Engine runs one synchronization pass: it decides the fetch window,
// separates genuinely new items from edited ones, delivers the new items in
// chronological order, and computes the cursor for the next run.
type Engine struct {
	// Source provides the collection feed. Injected so tests and fixture
	// mode can substitute deterministic stand-ins.
	Source zotero.Client

	// Notifier receives each new item, oldest first.
	Notifier Notifier

	// Verbose enables per-item progress lines.
	Verbose bool

	// Log receives human-readable progress output. Defaults to stderr.
	Log io.Writer
}

// NewEngine creates an engine over the given source and notifier.
func NewEngine(source zotero.Client, notifier Notifier) *Engine {
	return &Engine{
		Source:   source,
		Notifier: notifier,
		Log:      os.Stderr,
	}
}

// Request describes one run of the engine.
type Request struct {
	// Group and Collection identify the Zotero feed.
	Group      string
	Collection string

	// Since is an explicit starting-version override. Zero means "resume
	// from the persisted cursor" (or cold-start when there is none).
	Since int

	// Limit is the page size for warm runs. A cold start ignores it and
	// fetches a single item (see Run).
	Limit int

	// Start is the run-start instant, captured once by the caller so that
	// classification and the persisted cursor agree on a single timestamp.
	Start time.Time

	// LastRun is the cursor persisted by the previous run, nil on cold
	// start.
	LastRun *state.RunRecord
}

// Outcome summarizes one completed run.
type Outcome struct {
	// NewItems is the number of items classified as new and handed to the
	// notifier (whether or not delivery succeeded).
	NewItems int

	// Skipped counts malformed items and failed deliveries.
	Skipped int

	// NextVersion is the version cursor for the next run. Never less than
	// the version the run started from.
	NextVersion int

	// Start echoes the run-start instant for persistence.
	Start time.Time
}

// Record converts the outcome into the run record to persist.
func (o *Outcome) Record() *state.RunRecord {
	return &state.RunRecord{
		Time:         o.Start,
		Version:      o.NextVersion,
		ArticleCount: o.NewItems,
		Skipped:      o.Skipped,
	}
}

// classified pairs an item with its parsed creation time.
type classified struct {
	item  zotero.Item
	added time.Time
}

// Run executes one synchronization pass.
//
// The fetch window is version-based: items modified after the effective
// starting version. On a cold start (no cursor and no override) the limit
// is forced to 1 so the first run announces only the most recent item
// instead of flooding the channel with the collection's history. That is a
// deliberate first-run policy, not an off-by-one.
//
// Classification is time-based: an item is new iff its dateAdded is
// strictly after the previous run's start time. Edits bump an item's
// version but never its dateAdded, so edited items fall out here while
// still advancing the version cursor.
//
// A fetch failure aborts the run with the cursor untouched. A malformed
// item or a failed delivery is counted as skipped and the run continues.
func (e *Engine) Run(ctx context.Context, req Request) (*Outcome, error) {
	since := req.Since
	if since == 0 && req.LastRun != nil {
		since = req.LastRun.Version
	}

	var lastTime time.Time
	if req.LastRun != nil {
		lastTime = req.LastRun.Time
	}

	// Cold-start flood guard: with no version to resume from, ask for the
	// single most recent item only.
	limit := req.Limit
	if since == 0 {
		limit = 1
	}

	fmt.Fprintf(e.Log, "Retrieving up to %d items since version %d\n", limit, since)

	items, err := e.Source.FetchItems(ctx, req.Group, req.Collection, zotero.FetchOptions{
		Limit: limit,
		Since: since,
	})
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		NextVersion: since,
		Start:       req.Start,
	}

	// The version cursor advances over everything fetched, edits included.
	// It must be monotonic even when the feed returns nothing.
	for _, item := range items {
		if item.Version > outcome.NextVersion {
			outcome.NextVersion = item.Version
		}
	}

	fresh, edited := e.classify(items, lastTime, outcome)

	fmt.Fprintf(e.Log, "Found %d new items (filtered out %d edits)\n", len(fresh), edited)

	// Deliver oldest first so the channel reads chronologically. The feed
	// order is server-defined, so sort by creation time instead of trusting
	// it; the stable sort keeps feed order for equal timestamps.
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].added.Before(fresh[j].added)
	})

	for _, c := range fresh {
		outcome.NewItems++
		if err := e.Notifier.Notify(ctx, c.item); err != nil {
			outcome.Skipped++
			fmt.Fprintf(e.Log, "Error sending %s: %v\n", c.item.Key, err)
			continue
		}
		if e.Verbose {
			fmt.Fprintf(e.Log, "%d – %s\n", c.item.Version, c.item.Data.Title)
		}
	}

	return outcome, nil
}

// classify splits fetched items into new ones (dateAdded strictly after
// lastTime) and counts the edited-only rest. An item whose dateAdded is
// missing or unparseable cannot be classified; it is counted as skipped on
// the outcome rather than aborting the batch, and its version has already
// fed the cursor.
func (e *Engine) classify(items []zotero.Item, lastTime time.Time, outcome *Outcome) (fresh []classified, edited int) {
	for _, item := range items {
		added, err := time.Parse(time.RFC3339, item.Data.DateAdded)
		if err != nil {
			outcome.Skipped++
			fmt.Fprintf(e.Log, "Skipping %s: bad dateAdded %q: %v\n", item.Key, item.Data.DateAdded, err)
			continue
		}

		if !added.After(lastTime) {
			edited++
			continue
		}

		fresh = append(fresh, classified{item: item, added: added})
	}

	return fresh, edited
}
