// Package repo locates the repository root and the artifacts wfcheck
// inspects. Discovery uses go-git so that wfcheck behaves the same from any
// subdirectory of a working tree.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Repo implements domain.ArtifactFinder.
var _ domain.ArtifactFinder = (*Repo)(nil)

// Repo is a discovered git working tree.
type Repo struct {
	root   string // Absolute path of the working tree root
	gitDir string // Absolute path of the .git directory
}

// Discover opens the repository containing dir.
func Discover(dir string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve working tree: %w", err)
	}
	root := wt.Filesystem.Root()

	gitDir := filepath.Join(root, git.GitDirName)
	if st, ok := r.Storer.(*filesystem.Storage); ok {
		gitDir = st.Filesystem().Root()
	}

	return &Repo{root: root, gitDir: gitDir}, nil
}

// NewAt creates a Repo rooted at the given directory without git discovery.
// This is useful for testing.
func NewAt(root string) *Repo {
	return &Repo{root: root, gitDir: filepath.Join(root, git.GitDirName)}
}

// Root returns the working tree root.
func (r *Repo) Root() string {
	return r.root
}

// GitDir returns the .git directory path.
func (r *Repo) GitDir() string {
	return r.gitDir
}

// Guides returns the guide documents matching the configured globs,
// deduplicated and sorted.
func (r *Repo) Guides(globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, glob := range globs {
		matches, err := filepath.Glob(filepath.Join(r.root, glob))
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", glob, err)
		}
		for _, m := range matches {
			rel, err := filepath.Rel(r.root, m)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			if seen[rel] || !strings.HasSuffix(rel, ".md") {
				continue
			}
			if info, err := os.Stat(m); err != nil || info.IsDir() {
				continue
			}
			seen[rel] = true
			paths = append(paths, rel)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Workflows returns the workflow files under the configured directory.
func (r *Repo) Workflows(dir string) ([]string, error) {
	return r.listDir(dir, []string{".yml", ".yaml"})
}

// Scripts returns the companion scripts under the configured directory.
func (r *Repo) Scripts(dir string) ([]string, error) {
	return r.listDir(dir, []string{".sh", ".bash", ".js", ".mjs", ".cjs"})
}

// listDir returns the files in dir with one of the given extensions, sorted.
// A missing directory yields an empty list, not an error.
func (r *Repo) listDir(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		for _, want := range exts {
			if ext == want {
				paths = append(paths, filepath.ToSlash(filepath.Join(dir, entry.Name())))
				break
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Exists reports whether a path exists in the repository.
func (r *Repo) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(r.root, filepath.FromSlash(path)))
	return err == nil
}

// Read returns the content of a repository file.
func (r *Repo) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
