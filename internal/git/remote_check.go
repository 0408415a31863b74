package git

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smessmer/git-feature/internal/config"
	gferrors "github.com/smessmer/git-feature/internal/errors"
)

// githubURLPattern matches an https or ssh GitHub remote URL and captures
// the owner and repository name.
var githubURLPattern = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:)([A-Za-z0-9\-_.]+)/([A-Za-z0-9\-_.]+?)(?:\.git)?/?$`)

// ParseGitHubURL extracts the owner and repository name from a GitHub remote
// URL. Returns ok=false for URLs that do not point at github.com.
func ParseGitHubURL(url string) (owner, repo string, ok bool) {
	m := githubURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// matchesProject reports whether the URL points exactly at the official project
func matchesProject(url string, project config.Project) bool {
	owner, repo, ok := ParseGitHubURL(url)
	return ok && owner == project.Owner && repo == project.Repo
}

// matchesFork reports whether the URL points at any fork of the project
// (same repository name, arbitrary owner)
func matchesFork(url string, project config.Project) bool {
	_, repo, ok := ParseGitHubURL(url)
	return ok && repo == project.Repo
}

// ValidateRemotes checks that the upstream remote points at one of the
// official projects and that the origin remote points at a fork of that same
// project. It returns the matched project on success.
func ValidateRemotes(repo *Repository, cfg *config.Config) (*config.Project, error) {
	upstreamURLs, err := repo.GetRemoteURLs(cfg.UpstreamRemote)
	if err != nil {
		return nil, err
	}
	if len(upstreamURLs) == 0 {
		return nil, gferrors.NewRemoteMisconfiguredError(cfg.UpstreamRemote,
			fmt.Sprintf("remote does not exist, add it with: git remote add %s <url>", cfg.UpstreamRemote))
	}

	var project *config.Project
	for i := range cfg.Projects {
		if matchesProject(upstreamURLs[0], cfg.Projects[i]) {
			project = &cfg.Projects[i]
			break
		}
	}
	if project == nil {
		return nil, gferrors.NewRemoteMisconfiguredError(cfg.UpstreamRemote,
			fmt.Sprintf("%s does not point at an official upstream project (%s)",
				upstreamURLs[0], projectList(cfg.Projects)))
	}

	originURLs, err := repo.GetRemoteURLs(cfg.OriginRemote)
	if err != nil {
		return nil, err
	}
	if len(originURLs) == 0 {
		return nil, gferrors.NewRemoteMisconfiguredError(cfg.OriginRemote,
			fmt.Sprintf("remote does not exist, add your fork with: git remote add %s <url>", cfg.OriginRemote))
	}
	if !matchesFork(originURLs[0], *project) {
		return nil, gferrors.NewRemoteMisconfiguredError(cfg.OriginRemote,
			fmt.Sprintf("%s does not point at a fork of %s/%s", originURLs[0], project.Owner, project.Repo))
	}

	return project, nil
}

func projectList(projects []config.Project) string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Owner + "/" + p.Repo
	}
	return strings.Join(names, ", ")
}
