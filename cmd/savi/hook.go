// Package main provides the entry point for the savi CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/savi-dev/savi/internal/notify"
)

// newHookCmd creates the hook parent command.
//
// Hook subcommands run inside developer-tooling hooks. Past argument
// parsing they always exit 0: a missing webhook, a network failure, or an
// unreadable start file must never block the host operation.
func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Slack notifications for tooling hooks",
		Long: `Send Slack notifications from developer-tooling hooks.

Configuration comes from the environment (or an .env file):
  SLACK_WEBHOOK_URL   Slack incoming-webhook endpoint
  SLACK_MEMBER_ID     member to mention in notifications

Every subcommand swallows configuration, network, and filesystem errors
after its arguments parse. Hooks must never fail their host.`,
	}

	cmd.AddCommand(newHookNotificationCmd())
	cmd.AddCommand(newHookStopCmd())
	cmd.AddCommand(newHookLongOperationCmd())
	cmd.AddCommand(newHookCreateStartFileCmd())
	return cmd
}

// newHookNotificationCmd creates the notification subcommand.
func newHookNotificationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notification",
		Short: "Notify that the host tool is waiting for input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notify.Waiting(cmd.Context())
			return nil
		},
	}
}

// newHookStopCmd creates the stop subcommand.
func newHookStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Notify that the host tool stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notify.Stopped(cmd.Context())
			return nil
		},
	}
}
