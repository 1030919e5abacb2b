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
	"fmt"
	"net/http"

	"github.com/sirseerhq/zotero-notify/pkg/version"
)

// apiVersion is the Zotero API schema version requested on every call.
const apiVersion = "3"

// authTransport injects the API key and standard headers into every request.
type authTransport struct {
	key  string
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Zotero-API-Version", apiVersion)
	req.Header.Set("User-Agent", fmt.Sprintf("zotnotify/%s", version.Version))
	if t.key != "" {
		req.Header.Set("Zotero-API-Key", t.key)
	}

	return t.base.RoundTrip(req)
}
