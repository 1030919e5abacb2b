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

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirseerhq/zotero-notify/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	// Pick up ZOTERO_API_KEY / SLACK_WEBHOOK_URL from a local .env if present
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "zotnotify",
		Short: "Announce new Zotero collection items on Slack",
		Long: `zotnotify polls a Zotero group collection for newly added items and posts
one formatted message per new item to a Slack incoming webhook. It is a
single-shot batch job meant to run under cron or a similar scheduler,
tracking its progress in a small cursor file between runs.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newNotifyCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}
