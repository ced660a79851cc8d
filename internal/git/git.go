// Package git provides git queries via exec for the savi CLI.
//
// All queries take an explicit working directory because the repository
// scanner inspects many repositories in one run. Command failures are
// reported as errors; only a missing git binary maps to ErrNotInstalled,
// which callers treat as fatal.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled indicates the git binary is not on PATH.
var ErrNotInstalled = errors.New("git not found: ensure git is installed and in PATH")

// RunDir executes a git command in dir and returns trimmed stdout.
func RunDir(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", ErrNotInstalled
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", errors.New("git command failed: " + errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepoDir reports whether dir is a git working directory.
// Fast path: a .git entry (directory, or file for worktrees and submodules).
// Fallback: ask git itself, which also covers unusual layouts.
func IsRepoDir(ctx context.Context, dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return info.IsDir() || info.Mode().IsRegular()
	}

	out, err := RunDir(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// AbbrevRef returns the abbreviated symbolic name of HEAD.
// A detached HEAD resolves to the literal string "HEAD".
func AbbrevRef(ctx context.Context, dir string) (string, error) {
	return RunDir(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}

// ShortHead returns the short hash of the current HEAD commit.
func ShortHead(ctx context.Context, dir string) (string, error) {
	return RunDir(ctx, dir, "rev-parse", "--short", "HEAD")
}

// DiffShortstat returns a one-line summary of staged and unstaged changes
// against HEAD. Empty output means the working tree is clean.
func DiffShortstat(ctx context.Context, dir string) (string, error) {
	return RunDir(ctx, dir, "diff", "--shortstat", "HEAD")
}

// Installed reports whether the git binary can be found on PATH.
func Installed() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
