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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirseerhq/zotero-notify/internal/zotero"
)

// EchoNotifier renders items to a writer instead of delivering them.
// Used by dry-run and fixture-input modes, where repeated invocations must
// be free of external side effects.
type EchoNotifier struct {
	w io.Writer
}

// NewEchoNotifier creates a notifier that writes rendered messages to w.
func NewEchoNotifier(w io.Writer) *EchoNotifier {
	return &EchoNotifier{w: w}
}

// Notify writes the rendered item followed by a separator line.
func (n *EchoNotifier) Notify(ctx context.Context, item zotero.Item) error {
	if _, err := fmt.Fprintf(n.w, "%s\n%s\n", FormatItem(item), strings.Repeat("-", 40)); err != nil {
		return fmt.Errorf("writing rendered message: %w", err)
	}
	return nil
}
