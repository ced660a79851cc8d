// Package main provides the entry point for the savi CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/savi-dev/savi/internal/config"
	"github.com/savi-dev/savi/internal/output"
	"github.com/savi-dev/savi/internal/setup"
)

// newSetupCmd creates the setup parent command with subcommands.
func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure tool integrations",
		Long: `Configure savi integrations with development tools.

Subcommands:
  claude    Install Claude Code hook integration

Examples:
  savi setup claude           # Install hooks globally
  savi setup claude --project # Install for current project only
  savi setup claude --check   # Check installation status
  savi setup claude --remove  # Remove integration`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSetupClaudeCmd())
	return cmd
}

// newSetupClaudeCmd creates the claude subcommand for setup.
func newSetupClaudeCmd() *cobra.Command {
	var (
		projectFlag   bool
		checkFlag     bool
		removeFlag    bool
		dryRunFlag    bool
		startFileFlag string
	)

	cmd := &cobra.Command{
		Use:   "claude",
		Short: "Install Claude Code hook integration",
		Long: `Install savi hooks into Claude Code settings.

Registers the savi hook commands for the Notification, Stop, SubagentStop,
PreToolUse and PostToolUse events, so you get Slack notifications when the
agent is waiting for input, finishes a session, or runs a long Bash command.

By default, installs globally to ~/.claude/settings.json. Use --project to
install into ./.claude/settings.json for the current repository only.

Existing hooks owned by other tools are preserved; re-running the install
replaces only savi's own entries.

Examples:
  savi setup claude           # Install globally
  savi setup claude --project # Install for this project
  savi setup claude --check   # Check if installed
  savi setup claude --remove  # Uninstall
  savi setup claude --dry-run # Show what would be done`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetupClaude(cmd, setupClaudeOptions{
				project:   projectFlag,
				check:     checkFlag,
				remove:    removeFlag,
				dryRun:    dryRunFlag,
				startFile: startFileFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&projectFlag, "project", false, "Install for this project only")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check installation status without changes")
	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the integration")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be done without doing it")
	cmd.Flags().StringVar(&startFileFlag, "start-file", "",
		"Timing state file for long-operation hooks (default: <config dir>/bash_start)")

	return cmd
}

// setupClaudeOptions holds the resolved flags for setup claude.
type setupClaudeOptions struct {
	project   bool
	check     bool
	remove    bool
	dryRun    bool
	startFile string
}

// runSetupClaude executes the setup claude command.
func runSetupClaude(cmd *cobra.Command, opts setupClaudeOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	settingsPath, scope, err := setup.SettingsPath(opts.project)
	if err != nil {
		printer.Error(err)
		return err
	}

	if opts.startFile == "" {
		opts.startFile = filepath.Join(config.Dir(), "bash_start")
	}

	settings, err := setup.LoadSettings(settingsPath)
	if err != nil {
		printer.Error(err)
		return err
	}
	installed := setup.IsInstalled(settings)

	if opts.check {
		return runSetupClaudeCheck(printer, settingsPath, scope, installed)
	}
	if opts.remove {
		return runSetupClaudeRemove(printer, settings, settingsPath, scope, installed, opts.dryRun)
	}
	return runSetupClaudeInstall(printer, settings, settingsPath, scope, installed, opts)
}

// runSetupClaudeCheck reports the installation status.
func runSetupClaudeCheck(printer *output.Printer, settingsPath, scope string, installed bool) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"integration": "claude",
			"installed":   installed,
			"location":    settingsPath,
			"scope":       scope,
		})
	}

	printer.KeyValue("Scope", scope)
	printer.KeyValue("Location", settingsPath)
	if installed {
		printer.KeyValue("Status", "installed")
	} else {
		printer.KeyValue("Status", "not installed")
	}
	return nil
}

// runSetupClaudeRemove removes the savi hooks from settings.
func runSetupClaudeRemove(printer *output.Printer, settings map[string]any, settingsPath, scope string, installed, dryRun bool) error {
	if !installed {
		return printer.Success(map[string]any{
			"status":      "not_installed",
			"integration": "claude",
			"scope":       scope,
			"message":     "Claude integration is not installed",
		})
	}

	if dryRun {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":      "dry_run",
				"integration": "claude",
				"action":      "would remove",
				"location":    settingsPath,
				"scope":       scope,
			})
		}
		printer.KeyValue("Action", "would remove savi hooks")
		printer.KeyValue("Location", settingsPath)
		return nil
	}

	setup.Remove(settings)
	if err := setup.SaveSettings(settingsPath, settings); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":      "removed",
			"integration": "claude",
			"location":    settingsPath,
			"scope":       scope,
		})
	}
	return printer.Success(map[string]any{
		"message": "Removed Claude integration from " + settingsPath,
	})
}

// runSetupClaudeInstall installs or updates the savi hooks in settings.
func runSetupClaudeInstall(printer *output.Printer, settings map[string]any, settingsPath, scope string, installed bool, opts setupClaudeOptions) error {
	if opts.dryRun {
		action := "would install"
		if installed {
			action = "would update (already installed)"
		}

		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":            "dry_run",
				"integration":       "claude",
				"action":            action,
				"location":          settingsPath,
				"scope":             scope,
				"already_installed": installed,
			})
		}
		printer.KeyValue("Action", action)
		printer.KeyValue("Location", settingsPath)
		return nil
	}

	setup.Install(settings, opts.startFile)
	if err := setup.SaveSettings(settingsPath, settings); err != nil {
		printer.Error(err)
		return err
	}

	msg := "Installed"
	if installed {
		msg = "Updated"
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":      "installed",
			"integration": "claude",
			"location":    settingsPath,
			"scope":       scope,
			"start_file":  opts.startFile,
		})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("%s Claude integration at %s", msg, settingsPath),
	})
}
