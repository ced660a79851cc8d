package scan

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// makeRepo initializes a git repo with one commit on the given branch.
func makeRepo(t *testing.T, dir, branch string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	mustGit(t, dir, "init", "-b", branch)
	mustGit(t, dir, "config", "user.email", "test@test.com")
	mustGit(t, dir, "config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	mustGit(t, dir, "add", "file.txt")
	mustGit(t, dir, "commit", "-m", "initial")
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

// dirty modifies the tracked file so the working tree has a diff.
func dirty(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("changed\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestScan_ReportsOnlyInterestingRepos(t *testing.T) {
	root := t.TempDir()
	makeRepo(t, filepath.Join(root, "clean"), "main")
	makeRepo(t, filepath.Join(root, "feature"), "feature/x")
	dirty(t, filepath.Join(root, "feature"))

	report, err := New(root, Config{}).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 2 {
		t.Fatalf("detected %d repos, want 2", len(report.Repos))
	}

	var interesting []Repo
	for _, repo := range report.Repos {
		if repo.Interesting() {
			interesting = append(interesting, repo)
		}
	}

	if len(interesting) != 1 {
		t.Fatalf("interesting repos = %d, want 1 (clean main repo must be silent)", len(interesting))
	}
	repo := interesting[0]
	if repo.Path != "feature" {
		t.Errorf("path = %q, want %q", repo.Path, "feature")
	}
	if repo.Branch != "feature/x" {
		t.Errorf("branch = %q, want %q", repo.Branch, "feature/x")
	}
	if !strings.Contains(repo.Diff, "1 file changed") {
		t.Errorf("diff = %q, want a shortstat summary", repo.Diff)
	}
}

func TestScan_RootItselfIsARepo(t *testing.T) {
	root := t.TempDir()
	makeRepo(t, root, "topic")

	report, err := New(root, Config{}).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 1 {
		t.Fatalf("detected %d repos, want 1", len(report.Repos))
	}
	if repo := report.Repos[0]; repo.Branch != "topic" || !repo.Interesting() {
		t.Errorf("repo = %+v, want branch topic and interesting", repo)
	}
}

func TestScan_DoesNotDescendIntoRepos(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "outer")
	makeRepo(t, outer, "work")
	// A nested repository inside a detected repo must not be reported.
	makeRepo(t, filepath.Join(outer, "vendor-checkout"), "other")

	report, err := New(root, Config{}).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 1 {
		t.Fatalf("detected %d repos, want 1 (no descent into repos)", len(report.Repos))
	}
	if report.Repos[0].Path != "outer" {
		t.Errorf("path = %q, want %q", report.Repos[0].Path, "outer")
	}
}

func TestScan_DetachedHead(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "pinned")
	makeRepo(t, repoDir, "main")
	mustGit(t, repoDir, "checkout", "--detach", "HEAD")

	report, err := New(root, Config{}).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 1 {
		t.Fatalf("detected %d repos, want 1", len(report.Repos))
	}
	repo := report.Repos[0]
	if !repo.Detached {
		t.Fatal("expected a detached repo")
	}
	if repo.ShortHash == "" {
		t.Error("detached repo is missing its short hash")
	}
	if !strings.HasPrefix(repo.DisplayBranch(), "DETACHED@") {
		t.Errorf("DisplayBranch() = %q, want DETACHED@ prefix", repo.DisplayBranch())
	}
	if !repo.Interesting() {
		t.Error("a detached repo must be reported")
	}
}

func TestScan_CustomDefaultBranch(t *testing.T) {
	root := t.TempDir()
	makeRepo(t, filepath.Join(root, "trunkrepo"), "trunk")

	report, err := New(root, Config{DefaultBranch: "trunk"}).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 1 {
		t.Fatalf("detected %d repos, want 1", len(report.Repos))
	}
	if repo := report.Repos[0]; !repo.OnDefault || repo.Interesting() {
		t.Errorf("repo = %+v, want on-default and silent", repo)
	}
}

func TestScan_Exclusions(t *testing.T) {
	root := t.TempDir()
	makeRepo(t, filepath.Join(root, "node_modules", "some-pkg"), "feature/y")

	cfg := Config{Exclude: []string{"node_modules"}}
	report, err := New(root, cfg).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Repos) != 0 {
		t.Errorf("detected %d repos inside an excluded directory, want 0", len(report.Repos))
	}
}

func TestDisplayBranch_DetachedWithoutHash(t *testing.T) {
	repo := Repo{Detached: true}
	if got := repo.DisplayBranch(); got != "DETACHED@?" {
		t.Errorf("DisplayBranch() = %q, want %q", got, "DETACHED@?")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "scan.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v for a missing file", err)
		}
		if cfg.DefaultBranch != "" || len(cfg.Exclude) != 0 {
			t.Errorf("cfg = %+v, want zero value", cfg)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.yaml")
		content := "default_branch: trunk\nexclude:\n  - node_modules\n  - vendor\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.DefaultBranch != "trunk" {
			t.Errorf("DefaultBranch = %q, want trunk", cfg.DefaultBranch)
		}
		if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "node_modules" {
			t.Errorf("Exclude = %v, want [node_modules vendor]", cfg.Exclude)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.yaml")
		if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}
