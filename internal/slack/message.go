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

package slack

import (
	"fmt"
	"strings"

	"github.com/sirseerhq/zotero-notify/internal/zotero"
)

// abstractWordLimit caps the abstract excerpt included in a message.
const abstractWordLimit = 100

// FormatItem renders one Zotero item into Slack message markup. Rendering
// never fails: every line is emitted only when its source field is
// non-empty, so a sparse item simply produces a shorter message.
func FormatItem(item zotero.Item) string {
	data := item.Data
	meta := item.Meta

	title := strings.TrimSpace(data.Title)
	link := itemLink(data)

	var b strings.Builder
	if link != "" {
		fmt.Fprintf(&b, "<%s|*%s*>\n", link, title)
	} else {
		fmt.Fprintf(&b, "*%s*\n", title)
	}

	if citation := formatCitation(data, meta); citation != "" {
		fmt.Fprintf(&b, "*Citation:* %s\n", citation)
	}

	if len(data.Tags) > 0 {
		tags := make([]string, 0, len(data.Tags))
		for _, t := range data.Tags {
			tags = append(tags, t.Tag)
		}
		fmt.Fprintf(&b, "*Tags:* %s\n", strings.Join(tags, ", "))
	}

	if submitter := meta.CreatedByUser.Username; submitter != "" {
		fmt.Fprintf(&b, "*Added By:* %s\n", submitter)
	}

	if abstract := excerpt(data.AbstractNote); abstract != "" {
		fmt.Fprintf(&b, "\n*Abstract:*\n```%s```", abstract)
	}

	return b.String()
}

// itemLink derives the title link: a DOI resolver URL when a DOI is
// present, the raw URL otherwise, empty when neither exists.
func itemLink(data zotero.ItemData) string {
	if data.DOI != "" {
		return "https://doi.org/" + data.DOI
	}
	return strings.TrimSpace(data.URL)
}

// formatCitation synthesizes the citation line from the author summary,
// the italicized venue, and the publication date. Empty components are
// omitted along with their separators; an entirely empty citation yields
// an empty string so the caller can drop the line.
func formatCitation(data zotero.ItemData, meta zotero.ItemMeta) string {
	// Theses carry their institution instead of a journal title.
	venue := data.PublicationTitle
	if data.ItemType == "thesis" {
		venue = data.University
	}

	authors := strings.TrimRight(meta.CreatorSummary, ".")

	var b strings.Builder
	if authors != "" {
		fmt.Fprintf(&b, "%s. ", authors)
	}
	if venue != "" {
		fmt.Fprintf(&b, "_%s_ ", venue)
	}
	b.WriteString(data.Date)

	return strings.TrimSpace(b.String())
}

// excerpt returns the first abstractWordLimit words of the abstract, with
// a truncation marker when words were dropped.
func excerpt(abstract string) string {
	abstract = strings.TrimSpace(abstract)
	if abstract == "" {
		return ""
	}

	words := strings.Fields(abstract)
	if len(words) <= abstractWordLimit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:abstractWordLimit], " ") + " ..."
}
