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

// Package slack renders Zotero items into Slack message markup and
// delivers them through an incoming webhook. Rendering is pure and never
// fails; delivery is best-effort with no retry. An EchoNotifier stands in
// for the webhook when the run must stay side-effect free.
package slack
