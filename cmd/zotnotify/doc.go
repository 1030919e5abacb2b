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

// Package main implements the zotnotify command-line interface.
// This tool polls a Zotero group collection for newly added items and
// posts one Slack message per new item via an incoming webhook.
//
// The CLI supports:
//   - Incremental runs resuming from a persisted version cursor
//   - A cold-start flood guard (first run announces only the newest item)
//   - Dry runs that print rendered messages instead of posting
//   - Fixture-file input for offline testing of the whole pipeline
//   - Zotero and Slack credentials via flags or environment variables
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	zotnotify notify --group <id> --collection <id> [flags]
//
// Example:
//
//	export ZOTERO_API_KEY=your_key
//	export SLACK_WEBHOOK_URL=https://hooks.slack.com/services/...
//	zotnotify notify --group 12345 --collection ABCDEF12 --channel '#papers'
//
// Exit codes:
//   - 0: Success (including runs that found nothing new)
//   - 1: General error (including a failed cursor write)
//   - 2: Authorization error, or one or more notifications skipped
//   - 3: Zotero feed unavailable
package main
