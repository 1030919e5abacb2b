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

package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
)

// maxResponseSize limits response bodies to prevent memory issues from a
// misbehaving endpoint. 10MB is far beyond any legitimate single page.
const maxResponseSize = 10 * 1024 * 1024

// HTTPClient implements the Client interface against the Zotero v3 web API.
// It fetches a single page of top-level collection items per call; there is
// no pagination loop, retry, or backoff — a failed fetch fails the run and
// the caller's cursor stays put.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a Zotero API client with the provided key and
// endpoint (e.g. https://api.zotero.org). The client is configured with:
//   - Authentication and API-version headers on every request
//   - A User-Agent header for API compliance
//   - A request timeout so a hung feed cannot stall the run forever
func NewHTTPClient(key, endpoint string) *HTTPClient {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &authTransport{
			key:  key,
			base: http.DefaultTransport,
		},
	}

	return &HTTPClient{
		endpoint: endpoint,
		client:   httpClient,
	}
}

// FetchItems retrieves one page of top-level items from the given group
// collection. opts.Since restricts the result to items whose version is
// greater than that value; zero omits the parameter entirely, which asks
// the server for the most recent page of the whole collection.
func (c *HTTPClient) FetchItems(ctx context.Context, group, collection string, opts FetchOptions) ([]Item, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	reqURL := c.itemsURL(group, collection, limit, opts.Since)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching zotero feed: %v: %w", err, relaierrors.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading zotero feed response: %v: %w", err, relaierrors.ErrSourceUnavailable)
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decoding zotero feed response: %v: %w", err, relaierrors.ErrSourceUnavailable)
	}

	return items, nil
}

// itemsURL builds the top-level items request for a group collection.
func (c *HTTPClient) itemsURL(group, collection string, limit, since int) string {
	q := url.Values{}
	q.Set("start", "0")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("format", "json")
	q.Set("include", "data")
	if since > 0 {
		q.Set("since", strconv.Itoa(since))
	}

	return fmt.Sprintf("%s/groups/%s/collections/%s/items/top?%s",
		c.endpoint, url.PathEscape(group), url.PathEscape(collection), q.Encode())
}

// checkStatus maps an unexpected HTTP status to the error taxonomy.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("zotero returned %d: %w", resp.StatusCode, relaierrors.ErrInvalidAPIKey)
	case http.StatusNotFound:
		return fmt.Errorf("zotero returned %d: %w", resp.StatusCode, relaierrors.ErrCollectionNotFound)
	default:
		return fmt.Errorf("zotero returned %d: %w", resp.StatusCode, relaierrors.ErrSourceUnavailable)
	}
}
