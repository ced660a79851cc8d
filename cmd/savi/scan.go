// Package main provides the entry point for the savi CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/savi-dev/savi/internal/git"
	"github.com/savi-dev/savi/internal/output"
	"github.com/savi-dev/savi/internal/scan"
)

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var defaultBranch string
	var showAll bool

	cmd := &cobra.Command{
		Use:   "scan [ROOT]",
		Short: "Report git repositories with drift",
		Long: `Walk a directory tree and report git working directories that are off
their default branch or carry uncommitted changes. Clean repositories on
the default branch stay silent. Detected repositories are not descended
into, so submodules are not reported separately.

Configuration is read from scan.yaml in the savi config directory:
  default_branch: main
  exclude: [node_modules, vendor]

Examples:
  savi scan              # scan the current directory
  savi scan ~/src        # scan a workspace
  savi scan --all        # include clean repositories
  savi scan --json ~/src`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, defaultBranch, showAll)
		},
	}

	cmd.Flags().StringVar(&defaultBranch, "default-branch", "", "Baseline branch name (default from config, then main)")
	cmd.Flags().BoolVar(&showAll, "all", false, "Report clean repositories too")
	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, args []string, defaultBranch string, showAll bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		badRoot := output.NewBadRootError("not a directory: " + root)
		printer.Error(badRoot)
		return badRoot
	}

	cfg, err := scan.LoadDefaultConfig()
	if err != nil {
		userErr := output.NewUserErrorWithCause("loading scan config", err)
		printer.Error(userErr)
		return userErr
	}
	if defaultBranch != "" {
		cfg.DefaultBranch = defaultBranch
	}

	report, err := scan.New(root, cfg).Scan(cmd.Context())
	if err != nil {
		if errors.Is(err, git.ErrNotInstalled) {
			sysErr := output.NewSystemError(err.Error())
			printer.Error(sysErr)
			return sysErr
		}
		sysErr := output.NewSystemErrorWithCause("scan failed", err)
		printer.Error(sysErr)
		return sysErr
	}

	reported := make([]scan.Repo, 0, len(report.Repos))
	for _, repo := range report.Repos {
		if showAll || repo.Interesting() {
			reported = append(reported, repo)
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"repos":   reported,
			"scanned": report.Scanned,
		})
	}

	printReposHuman(printer, reported)
	return nil
}

// printReposHuman prints one block per repository, separated by blank lines.
func printReposHuman(printer *output.Printer, repos []scan.Repo) {
	styles := printer.Styles()
	for _, repo := range repos {
		printer.Println(styles.Path.Render(repo.Path))

		if !repo.OnDefault {
			branchStyle := styles.Branch
			if repo.Detached {
				branchStyle = styles.Detached
			}
			printer.Print("  branch: %s\n", branchStyle.Render(repo.DisplayBranch()))
		}

		if repo.Diff != "" {
			printer.Print("  diff:   %s\n", styles.Diff.Render(repo.Diff))
		}

		printer.Println()
	}
}
