package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a test fixture modelling the fork topology git-feature operates
// on: a bare upstream repository (the official project), a bare origin
// repository (the user's fork) and a local working clone with both remotes
// configured.
type Scene struct {
	Dir         string
	Repo        *GitRepo
	UpstreamDir string
	OriginDir   string

	// seed is kept around so tests can advance the upstream or origin tip
	// independently of the working clone
	seed *GitRepo
}

// NewScene builds the fork topology inside t.TempDir(). The upstream mainline
// starts with a single commit, and origin is an up-to-date fork of it.
func NewScene(t *testing.T) *Scene {
	t.Helper()
	tmpDir := t.TempDir()

	// Seed repository providing the initial mainline commit
	seedDir := filepath.Join(tmpDir, "seed")
	seed, err := NewGitRepo(seedDir)
	if err != nil {
		t.Fatalf("Failed to create seed repo: %v", err)
	}
	if err := seed.CreateChangeAndCommit("initial", "initial commit"); err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	// Bare upstream (official project) and origin (fork)
	upstreamDir := filepath.Join(tmpDir, "upstream.git")
	if _, err := NewBareGitRepo(upstreamDir); err != nil {
		t.Fatalf("Failed to create upstream repo: %v", err)
	}
	originDir := filepath.Join(tmpDir, "origin.git")
	if _, err := NewBareGitRepo(originDir); err != nil {
		t.Fatalf("Failed to create origin repo: %v", err)
	}
	if err := seed.PushTo(upstreamDir, "main:main"); err != nil {
		t.Fatalf("Failed to seed upstream: %v", err)
	}
	if err := seed.PushTo(originDir, "main:main"); err != nil {
		t.Fatalf("Failed to seed origin: %v", err)
	}

	// Working clone with both remotes configured
	workDir := filepath.Join(tmpDir, "work")
	repo, err := CloneGitRepo(workDir, originDir)
	if err != nil {
		t.Fatalf("Failed to clone working repo: %v", err)
	}
	if err := repo.AddRemote("upstream", upstreamDir); err != nil {
		t.Fatalf("Failed to add upstream remote: %v", err)
	}
	if err := repo.Fetch("upstream"); err != nil {
		t.Fatalf("Failed to fetch upstream: %v", err)
	}

	return &Scene{
		Dir:         workDir,
		Repo:        repo,
		UpstreamDir: upstreamDir,
		OriginDir:   originDir,
		seed:        seed,
	}
}

// AdvanceUpstreamMainline adds a commit to the upstream mainline without
// going through the working clone.
func (s *Scene) AdvanceUpstreamMainline(content, message string) error {
	if err := s.seed.CreateChangeAndCommit(content, message); err != nil {
		return err
	}
	return s.seed.PushTo(s.UpstreamDir, "main:main")
}

// AdvanceOriginBranch adds a commit to a branch on origin through a second
// clone, the way a collaborator would, to make the remote branch diverge
// from the working clone.
func (s *Scene) AdvanceOriginBranch(branch, content, message string) error {
	tmpDir, err := os.MkdirTemp("", "git-feature-collab-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	collab, err := CloneGitRepo(filepath.Join(tmpDir, "collab"), s.OriginDir)
	if err != nil {
		return err
	}
	if err := collab.Checkout(branch); err != nil {
		return err
	}
	if err := collab.CreateFileAndCommit("collab.txt", content, message); err != nil {
		return err
	}
	return collab.RunGitCommand("push", "origin", branch)
}
