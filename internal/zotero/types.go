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

// Package zotero provides types and interfaces for interacting with the Zotero group API.
package zotero

// Item represents one bibliographic record from a Zotero group feed.
// Version is bumped by the server on every create or update of the item;
// Data.DateAdded is set once at creation and never changes. The sync engine
// relies on exactly this asymmetry to tell new items from edited ones.
type Item struct {
	Key     string   `json:"key"`
	Version int      `json:"version"`
	Data    ItemData `json:"data"`
	Meta    ItemMeta `json:"meta"`
}

// ItemData holds the bibliographic fields of an item. All of it is opaque
// display data to the sync engine except DateAdded, which drives the
// new-vs-edited classification.
type ItemData struct {
	Key              string `json:"key"`
	ItemType         string `json:"itemType"`
	Title            string `json:"title"`
	AbstractNote     string `json:"abstractNote"`
	PublicationTitle string `json:"publicationTitle"`
	University       string `json:"university"`
	Date             string `json:"date"`
	DOI              string `json:"DOI"`
	URL              string `json:"url"`
	DateAdded        string `json:"dateAdded"`
	Tags             []Tag  `json:"tags"`
}

// Tag is a single item tag.
type Tag struct {
	Tag string `json:"tag"`
}

// ItemMeta holds server-computed metadata about an item.
type ItemMeta struct {
	CreatorSummary string        `json:"creatorSummary"`
	CreatedByUser  CreatedByUser `json:"createdByUser"`
	NumChildren    int           `json:"numChildren"`
}

// CreatedByUser identifies the group member who added the item.
type CreatedByUser struct {
	Username string `json:"username"`
}

// FetchOptions configures how items are fetched from the feed.
type FetchOptions struct {
	// Limit controls how many items to fetch. Defaults to 25 if not
	// specified. Maximum is 100 per Zotero's API limits.
	Limit int

	// Since restricts the result to items whose version is greater than
	// this value. Zero means no restriction: the server returns the most
	// recent page of the collection.
	Since int
}

// Default values for fetch operations
const (
	defaultLimit = 25
)
