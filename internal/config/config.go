// Package config provides repository configuration management for git-feature,
// including reading the optional per-repository configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the optional per-repository config file,
// stored inside the .git directory so it never ends up in a commit.
const ConfigFileName = ".git_feature_config"

// Project identifies an official upstream project on GitHub
type Project struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// RepoConfig represents the raw repository configuration file
type RepoConfig struct {
	UpstreamRemote *string   `json:"upstreamRemote,omitempty"`
	OriginRemote   *string   `json:"originRemote,omitempty"`
	Mainline       *string   `json:"mainline,omitempty"`
	Projects       []Project `json:"projects,omitempty"`
}

// Config is the resolved configuration with defaults applied
type Config struct {
	// UpstreamRemote is the remote pointing at the canonical repository
	UpstreamRemote string
	// OriginRemote is the remote pointing at the user's fork
	OriginRemote string
	// Mainline is the branch on the upstream remote that features are based on
	Mainline string
	// Projects are the official upstream projects this tool is willing to
	// operate against
	Projects []Project
}

// defaultProjects are the upstream projects supported out of the box
var defaultProjects = []Project{
	{Owner: "onnx", Repo: "onnx"},
	{Owner: "caffe2", Repo: "caffe2"},
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		UpstreamRemote: "upstream",
		OriginRemote:   "origin",
		Mainline:       "main",
		Projects:       defaultProjects,
	}
}

// Load reads the repository configuration, applying defaults for anything
// the file does not set. A missing file yields the default configuration.
func Load(repoRoot string) (*Config, error) {
	configPath := filepath.Join(repoRoot, ".git", ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return Default(), nil
	}

	var raw RepoConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	config := Default()
	if raw.UpstreamRemote != nil && *raw.UpstreamRemote != "" {
		config.UpstreamRemote = *raw.UpstreamRemote
	}
	if raw.OriginRemote != nil && *raw.OriginRemote != "" {
		config.OriginRemote = *raw.OriginRemote
	}
	if raw.Mainline != nil && *raw.Mainline != "" {
		config.Mainline = *raw.Mainline
	}
	if len(raw.Projects) > 0 {
		config.Projects = raw.Projects
	}

	return config, nil
}

// MainlineRef returns the fully qualified upstream mainline reference,
// e.g. "upstream/main"
func (c *Config) MainlineRef() string {
	return c.UpstreamRemote + "/" + c.Mainline
}
