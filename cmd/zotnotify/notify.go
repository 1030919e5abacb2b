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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirseerhq/zotero-notify/internal/config"
	relaierrors "github.com/sirseerhq/zotero-notify/internal/errors"
	"github.com/sirseerhq/zotero-notify/internal/slack"
	"github.com/sirseerhq/zotero-notify/internal/state"
	syncengine "github.com/sirseerhq/zotero-notify/internal/sync"
	"github.com/sirseerhq/zotero-notify/internal/zotero"
	"github.com/spf13/cobra"
)

// notifyOptions collects every flag of the notify command.
type notifyOptions struct {
	group      string
	collection string
	apiKey     string
	webhook    string
	since      int
	limit      int
	channel    string
	username   string
	iconEmoji  string
	stateFile  string
	input      string
	dryRun     bool
	configPath string
	verbose    bool
}

// newNotifyCommand builds the notify subcommand.
func newNotifyCommand() *cobra.Command {
	var opts notifyOptions

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Fetch new collection items and post them to Slack",
		Long: `Fetch items added to a Zotero group collection since the last run and post
one Slack message per genuinely new item, oldest first.

The run cursor (last run time and last seen item version) is stored in a
small JSON file and advanced atomically at the end of each successful run.
Edits to previously announced items bump their version but are never
re-announced.

Credentials can be provided via flags or environment:
  - Zotero API key:   --api-key or ZOTERO_API_KEY
  - Slack webhook:    --webhook or SLACK_WEBHOOK_URL

With --dry-run, messages are printed to stdout instead of posted and the
cursor file is left untouched. With --input, the live API is bypassed in
favor of a JSON fixture file, which implies --dry-run semantics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			return runNotify(ctx, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.group, "group", "", "Zotero group ID")
	cmd.Flags().StringVar(&opts.collection, "collection", "", "Zotero collection ID")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Zotero API key (overrides ZOTERO_API_KEY env var)")
	cmd.Flags().StringVar(&opts.webhook, "webhook", "", "Slack incoming webhook URL (overrides SLACK_WEBHOOK_URL env var)")
	cmd.Flags().IntVar(&opts.since, "since", 0, "Item version to start from (overrides the stored cursor)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Max items to fetch per run (default from config)")
	cmd.Flags().StringVar(&opts.channel, "channel", "", "Slack channel override")
	cmd.Flags().StringVar(&opts.username, "username", "", "Slack bot username override")
	cmd.Flags().StringVar(&opts.iconEmoji, "icon-emoji", "", "Slack bot icon emoji override")
	cmd.Flags().StringVar(&opts.stateFile, "state-file", "", "Path to the run cursor file (default derived from state dir)")
	cmd.Flags().StringVar(&opts.input, "input", "", "Read items from a JSON fixture file instead of the live API")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print messages to stdout instead of posting, and don't touch the cursor")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose progress output")

	return cmd
}

// runNotify executes one notify run end to end: load config and cursor,
// run the sync engine, persist the new cursor, map the outcome to an exit
// status via the returned error.
func runNotify(ctx context.Context, opts *notifyOptions) error {
	// One consistent run-start instant for classification and the cursor.
	runStart := time.Now().UTC().Truncate(time.Second)

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// A fixture run must never hit the network or the cursor file.
	dryRun := opts.dryRun || opts.input != ""

	source, err := buildSource(opts, cfg)
	if err != nil {
		return err
	}

	notifier, err := buildNotifier(opts, cfg, dryRun)
	if err != nil {
		return err
	}

	statePath := opts.stateFile
	if statePath == "" {
		statePath = filepath.Join(cfg.Defaults.StateDir, fmt.Sprintf("%s-%s.json", opts.group, opts.collection))
	}

	lastRun, err := state.Load(statePath)
	if err != nil {
		// A corrupt cursor falls back to cold-start behavior; losing the
		// cursor must not block the run.
		fmt.Fprintf(os.Stderr, "Warning: ignoring unreadable state: %v\n", err)
	}

	limit := opts.limit
	if limit <= 0 {
		limit = cfg.GetPageLimit(opts.group + "/" + opts.collection)
	}

	engine := syncengine.NewEngine(source, notifier)
	engine.Verbose = opts.verbose

	outcome, err := engine.Run(ctx, syncengine.Request{
		Group:      opts.group,
		Collection: opts.collection,
		Since:      opts.since,
		Limit:      limit,
		Start:      runStart,
		LastRun:    lastRun,
	})
	if err != nil {
		return err
	}

	if !dryRun {
		if err := state.Save(outcome.Record(), statePath); err != nil {
			return fmt.Errorf("%v: %w", err, relaierrors.ErrStateWrite)
		}
		if opts.verbose {
			fmt.Fprintf(os.Stderr, "Wrote run state to %s\n", statePath)
		}
	}

	if outcome.Skipped > 0 {
		return fmt.Errorf("%d of %d notifications skipped: %w",
			outcome.Skipped, outcome.NewItems, relaierrors.ErrPartialDelivery)
	}

	return nil
}

// buildSource picks the item source: the JSON fixture when --input is
// given, the live API otherwise.
func buildSource(opts *notifyOptions, cfg *config.Config) (zotero.Client, error) {
	if opts.input != "" {
		return zotero.NewFixtureClient(opts.input), nil
	}

	if opts.group == "" || opts.collection == "" {
		return nil, fmt.Errorf("--group and --collection are required")
	}

	apiKey := opts.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("ZOTERO_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("zotero API key not found. Set ZOTERO_API_KEY or use --api-key flag")
	}

	return zotero.NewHTTPClient(apiKey, cfg.Zotero.APIEndpoint), nil
}

// buildNotifier picks the delivery side: stdout in dry-run mode, the
// webhook otherwise. Routing overrides resolve flag > config.
func buildNotifier(opts *notifyOptions, cfg *config.Config, dryRun bool) (syncengine.Notifier, error) {
	if dryRun {
		return slack.NewEchoNotifier(os.Stdout), nil
	}

	webhook := opts.webhook
	if webhook == "" {
		webhook = os.Getenv("SLACK_WEBHOOK_URL")
	}
	if webhook == "" {
		return nil, fmt.Errorf("slack webhook not found. Set SLACK_WEBHOOK_URL or use --webhook flag")
	}

	route := slack.RouteOptions{
		Channel:   opts.channel,
		Username:  opts.username,
		IconEmoji: opts.iconEmoji,
	}
	if route.Channel == "" {
		route.Channel = cfg.Slack.Channel
	}
	if route.Username == "" {
		route.Username = cfg.Slack.Username
	}
	if route.IconEmoji == "" {
		route.IconEmoji = cfg.Slack.IconEmoji
	}

	return slack.NewWebhookNotifier(webhook, route), nil
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, relaierrors.ErrInvalidAPIKey) ||
		errors.Is(err, relaierrors.ErrCollectionNotFound) ||
		errors.Is(err, relaierrors.ErrPartialDelivery) {
		return 2 // Authorization errors and partial delivery
	}

	if errors.Is(err, relaierrors.ErrSourceUnavailable) {
		return 3 // Feed unavailable
	}

	return 1 // General error
}
