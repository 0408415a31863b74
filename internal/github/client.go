// Package github provides the GitHub API client used to open pull requests
// for pushed feature branches.
package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// PullRequestInfo contains information about a pull request.
// This is a simplified struct to avoid coupling callers to go-github.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
}

// CreatePROptions holds the fields for a new pull request
type CreatePROptions struct {
	Title string
	Body  string
	// Head is the source in "owner:branch" form
	Head string
	// Base is the target branch on the upstream repository
	Base  string
	Draft bool
}

// Client is an interface for the GitHub API interactions git-feature needs
type Client interface {
	// CreatePullRequest creates a new pull request on owner/repo
	CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error)
}

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a RealClient authenticated with the token from the
// GITHUB_TOKEN or GH_TOKEN environment variable.
func NewRealClient(ctx context.Context) (*RealClient, error) {
	token, err := getToken()
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &RealClient{client: github.NewClient(tc)}, nil
}

var _ Client = (*RealClient)(nil)

// CreatePullRequest creates a new pull request
func (c *RealClient) CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	createdPR, _, err := c.client.PullRequests.Create(ctx, owner, repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	info := &PullRequestInfo{}
	if createdPR.Number != nil {
		info.Number = *createdPR.Number
	}
	if createdPR.HTMLURL != nil {
		info.HTMLURL = *createdPR.HTMLURL
	}
	return info, nil
}

func getToken() (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no GitHub token found, set GITHUB_TOKEN or GH_TOKEN")
}
