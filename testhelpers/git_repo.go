// Package testhelpers provides Git repository fixtures for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize new repository with optimized config
	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.configureUser(); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewBareGitRepo initializes a new bare repository, usable as a remote.
func NewBareGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", "--bare", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init bare repo: %w", err)
	}
	return &GitRepo{Dir: dir}, nil
}

// CloneGitRepo clones an existing repository (usually a bare fixture remote).
func CloneGitRepo(dir string, sourcePath string) (*GitRepo, error) {
	cmd := exec.Command("git", "clone", sourcePath, dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// configureUser configures the Git user (required for commits)
func (r *GitRepo) configureUser() error {
	if err := r.runGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.runGitCommand("config", "user.email", "test@example.com")
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config for faster operations.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// runGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes content to the test file, stages it and commits.
func (r *GitRepo) CreateChangeAndCommit(content string, message string) error {
	filePath := filepath.Join(r.Dir, textFileName)
	if err := os.WriteFile(filePath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := r.runGitCommand("add", textFileName); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateFileAndCommit writes content to a named file, stages it and commits.
func (r *GitRepo) CreateFileAndCommit(fileName, content, message string) error {
	filePath := filepath.Join(r.Dir, fileName)
	if err := os.WriteFile(filePath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := r.runGitCommand("add", fileName); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CurrentBranchName returns the currently checked out branch name.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// RevParse returns the commit SHA for a revision.
func (r *GitRepo) RevParse(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", rev)
}

// BranchExists reports whether a local branch exists.
func (r *GitRepo) BranchExists(name string) bool {
	return r.runGitCommand("rev-parse", "--verify", "--quiet", "refs/heads/"+name) == nil
}

// RemoteBranchExists reports whether the named remote has a branch.
func (r *GitRepo) RemoteBranchExists(remote, name string) bool {
	output, err := r.runGitCommandAndGetOutput("ls-remote", "--heads", remote, name)
	return err == nil && output != ""
}

// PushTo pushes a refspec to a repository path without needing a configured remote.
func (r *GitRepo) PushTo(path string, refspec string) error {
	return r.runGitCommand("push", path, refspec)
}

// AddRemote adds a named remote pointing at a repository path.
func (r *GitRepo) AddRemote(name, path string) error {
	return r.runGitCommand("remote", "add", name, path)
}

// Fetch fetches a named remote.
func (r *GitRepo) Fetch(remote string) error {
	return r.runGitCommand("fetch", remote)
}

// Checkout checks out a branch or revision.
func (r *GitRepo) Checkout(rev string) error {
	return r.runGitCommand("checkout", rev)
}
