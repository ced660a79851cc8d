// Package scan walks a directory tree and reports git working directories
// that are off their default branch or carry uncommitted changes.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/savi-dev/savi/internal/git"
)

// Branch placeholders used when git cannot answer.
const (
	unknownBranch  = "UNKNOWN"
	detachedPrefix = "DETACHED@"
)

// Repo is one detected repository.
type Repo struct {
	Path      string `json:"path"`                 // relative to the scan root
	Branch    string `json:"branch"`               // branch name, or UNKNOWN
	ShortHash string `json:"short_hash,omitempty"` // set for detached HEADs
	Detached  bool   `json:"detached"`
	OnDefault bool   `json:"on_default"`
	Diff      string `json:"diff,omitempty"` // shortstat summary, empty when clean
}

// DisplayBranch renders the branch for output, marking detached HEADs.
func (r Repo) DisplayBranch() string {
	if r.Detached {
		hash := r.ShortHash
		if hash == "" {
			hash = "?"
		}
		return detachedPrefix + hash
	}
	return r.Branch
}

// Interesting reports whether the repo should appear in output: anything
// off its default branch or with a non-empty diff. Clean repositories on
// the default branch stay silent.
func (r Repo) Interesting() bool {
	return !r.OnDefault || r.Diff != ""
}

// Report is the outcome of one scan.
type Report struct {
	Repos    []Repo        `json:"repos"`
	Scanned  int           `json:"scanned"` // directories visited
	Duration time.Duration `json:"-"`
}

// Scanner walks a tree looking for git working directories.
type Scanner struct {
	Root          string
	DefaultBranch string
	Exclusions    map[string]bool
}

// New creates a Scanner for root, applying cfg.
// Directories named .git are always excluded from descent.
func New(root string, cfg Config) *Scanner {
	exclusions := map[string]bool{".git": true}
	for _, name := range cfg.Exclude {
		exclusions[name] = true
	}

	branch := cfg.DefaultBranch
	if branch == "" {
		branch = DefaultBranchName
	}

	return &Scanner{
		Root:          root,
		DefaultBranch: branch,
		Exclusions:    exclusions,
	}
}

// Scan performs the walk. Detecting a repository stops descent into it,
// so nested submodules are not reported separately. Per-repository git
// failures degrade to unknown values; only a missing git binary is fatal.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	start := time.Now()
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var fatal error

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // permission problems are skipped, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && s.Exclusions[d.Name()] {
			return filepath.SkipDir
		}

		report.Scanned++

		if !git.IsRepoDir(ctx, path) {
			return nil
		}

		repo, err := s.inspect(ctx, root, path)
		if err != nil {
			fatal = err
			return filepath.SkipAll
		}
		report.Repos = append(report.Repos, repo)

		return filepath.SkipDir
	})
	if fatal != nil {
		return nil, fatal
	}
	if walkErr != nil {
		return nil, walkErr
	}

	report.Duration = time.Since(start)
	return report, nil
}

// inspect gathers branch and diff state for one repository.
// The only error it returns is git.ErrNotInstalled; everything else is
// recorded as unknown or empty.
func (s *Scanner) inspect(ctx context.Context, root, path string) (Repo, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}

	repo := Repo{Path: rel}

	name, err := git.AbbrevRef(ctx, path)
	switch {
	case errors.Is(err, git.ErrNotInstalled):
		return repo, err
	case err != nil:
		repo.Branch = unknownBranch
	case name == "HEAD":
		repo.Detached = true
		if hash, hashErr := git.ShortHead(ctx, path); hashErr == nil {
			repo.ShortHash = hash
		}
	default:
		repo.Branch = name
		repo.OnDefault = name == s.DefaultBranch
	}

	if diff, diffErr := git.DiffShortstat(ctx, path); diffErr == nil {
		repo.Diff = diff
	}

	return repo, nil
}
