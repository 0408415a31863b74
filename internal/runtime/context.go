// Package runtime provides a context type that holds the git service, the
// repository configuration and the logger for use throughout the application.
package runtime

import (
	"github.com/smessmer/git-feature/internal/config"
	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/output"
)

// Context provides access to the git service, configuration and output for commands
type Context struct {
	Git      git.Service
	Config   *config.Config
	Splog    *output.Splog
	RepoRoot string

	// Project is the official upstream project the repository's remotes were
	// matched against during the setup check
	Project *config.Project

	// OriginOwner is the GitHub account owning the origin fork
	OriginOwner string
}

// NewContext builds a Context for the repository containing the current
// directory: it discovers the repository root, loads the configuration and
// validates the remote setup.
func NewContext() (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	repo, err := git.OpenRepository(repoRoot)
	if err != nil {
		return nil, err
	}

	project, err := git.ValidateRemotes(repo, cfg)
	if err != nil {
		return nil, err
	}

	originOwner := ""
	if urls, err := repo.GetRemoteURLs(cfg.OriginRemote); err == nil && len(urls) > 0 {
		originOwner, _, _ = git.ParseGitHubURL(urls[0])
	}

	return &Context{
		Git:         git.NewCLIService(repoRoot),
		Config:      cfg,
		Splog:       output.NewSplog(),
		RepoRoot:    repoRoot,
		Project:     project,
		OriginOwner: originOwner,
	}, nil
}
