// Package main provides the entry point for the savi CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/savi-dev/savi/internal/notify"
	"github.com/savi-dev/savi/internal/output"
	"github.com/savi-dev/savi/internal/timing"
)

// newHookLongOperationCmd creates the long-operation subcommand.
func newHookLongOperationCmd() *cobra.Command {
	var (
		duration      int64
		startFile     string
		threshold     int64
		operationType string
	)

	cmd := &cobra.Command{
		Use:   "long-operation",
		Short: "Notify when an operation ran longer than a threshold",
		Long: `Notify about a long-running operation.

The duration comes from exactly one of two sources: --duration gives it
directly; --start-file names a file holding the operation's start
timestamp, which is read, measured against now, and deleted. A missing or
unreadable start file means no timing information and no notification.

A notification fires only when the duration strictly exceeds the
threshold.

Examples:
  savi hook long-operation --duration 45
  savi hook long-operation --start-file ~/.config/savi/bash_start --threshold 30 --operation-type Bash`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookLongOperation(cmd, duration, startFile, threshold, operationType)
		},
	}

	cmd.Flags().Int64Var(&duration, "duration", 0, "Duration in seconds")
	cmd.Flags().StringVar(&startFile, "start-file", "", "File containing the start timestamp")
	cmd.Flags().Int64Var(&threshold, "threshold", timing.DefaultThreshold, "Minimum duration in seconds to trigger a notification")
	cmd.Flags().StringVar(&operationType, "operation-type", timing.DefaultOperationType, "Type of operation (e.g. Bash, Task)")
	cmd.MarkFlagsMutuallyExclusive("duration", "start-file")
	return cmd
}

// runHookLongOperation executes the long-operation subcommand.
// The one-of-duration-or-start-file rule is the CLI contract; everything
// past it is silent.
func runHookLongOperation(cmd *cobra.Command, duration int64, startFile string, threshold int64, operationType string) error {
	hasDuration := cmd.Flags().Changed("duration")
	if !hasDuration && startFile == "" {
		err := output.NewUserError("either --duration or --start-file must be specified")
		output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
			WithStderr(cmd.ErrOrStderr()).
			Error(err)
		return err
	}

	source := timing.Explicit(duration)
	if startFile != "" {
		source = timing.FromFile(startFile)
	}

	elapsed, ok := source.Elapsed(time.Now())
	if !ok {
		return nil
	}

	if timing.Exceeds(elapsed, threshold) {
		notify.LongOperation(cmd.Context(), elapsed, operationType)
	}
	return nil
}

// newHookCreateStartFileCmd creates the create-start-file subcommand.
func newHookCreateStartFileCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create-start-file",
		Short: "Record an operation's start timestamp",
		Long: `Write the current Unix timestamp to a file, creating parent
directories as needed. A later long-operation invocation reads the file
back to measure how long the operation ran.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Write failures are swallowed: this runs on a hook path.
			_ = timing.WriteStartFile(file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path of the start timestamp file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
