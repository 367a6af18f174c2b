package github

import (
	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/vcs"
)

// GitHubClientFactory implements vcs.ClientFactory for github.com and GitHub Enterprise
type GitHubClientFactory struct {
	endpoints Endpoints
}

func NewGitHubClientFactory(cfg *config.Config) *GitHubClientFactory {
	return &GitHubClientFactory{
		endpoints: Endpoints{
			APIURL:     cfg.APIURL,
			GraphQLURL: cfg.GraphQLURL,
			Timeout:    cfg.Timeout(),
		},
	}
}

// CreateClient creates a GitHub client authenticated with token
func (f *GitHubClientFactory) CreateClient(token string) (vcs.GistClient, error) {
	return NewGitHubClient(token, f.endpoints)
}
