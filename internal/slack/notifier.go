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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirseerhq/zotero-notify/internal/zotero"
)

// ErrDeliveryFailed indicates a webhook POST did not succeed. The sync
// engine catches it per item: a failed notification is counted as skipped
// and never aborts the run or blocks cursor advancement.
var ErrDeliveryFailed = errors.New("slack delivery failed")

// RouteOptions override the webhook's default destination and identity.
// Zero-valued fields are omitted from the payload entirely.
type RouteOptions struct {
	Channel   string
	Username  string
	IconEmoji string
}

// payload is the incoming-webhook wire format.
type payload struct {
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// WebhookNotifier delivers rendered items to a Slack incoming webhook.
// Delivery is best-effort, at-most-once: there is no retry, and the caller
// decides whether a failure matters.
type WebhookNotifier struct {
	url    string
	route  RouteOptions
	client *http.Client
}

// NewWebhookNotifier creates a notifier posting to the given webhook URL
// with the given routing overrides applied to every message.
func NewWebhookNotifier(url string, route RouteOptions) *WebhookNotifier {
	return &WebhookNotifier{
		url:   url,
		route: route,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Notify renders the item and posts it to the webhook. Any transport error
// or non-2xx response is wrapped in ErrDeliveryFailed.
func (n *WebhookNotifier) Notify(ctx context.Context, item zotero.Item) error {
	body, err := json.Marshal(payload{
		Text:      FormatItem(item),
		Channel:   n.route.Channel,
		Username:  n.route.Username,
		IconEmoji: n.route.IconEmoji,
	})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %v: %w", err, ErrDeliveryFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Slack puts a short diagnostic in the body, worth surfacing.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s: %w", resp.StatusCode, bytes.TrimSpace(msg), ErrDeliveryFailed)
	}

	return nil
}
