package vcs

import (
	"context"

	"github.com/thomas-vilte/tickety/internal/models"
)

// GistClient defines the calls Tickety makes against the provider's gist APIs.
type GistClient interface {
	// GetAuthenticatedIdentity returns the login and granted scopes of the client's token.
	GetAuthenticatedIdentity(ctx context.Context) (models.Identity, error)
	// ListGists lists every gist of the authenticated user, most recent first.
	ListGists(ctx context.Context) ([]models.GistSummary, error)
	// GetGistNodes fetches description and first file of each gist node id in one query.
	GetGistNodes(ctx context.Context, nodeIDs []string) ([]models.GistNode, error)
	// CreateGist creates a private gist and returns its REST id.
	CreateGist(ctx context.Context, description string, files map[string]string) (string, error)
	// DeleteGist deletes the gist with the given REST id.
	DeleteGist(ctx context.Context, id string) error
}

// ClientFactory builds a GistClient authenticated with token.
type ClientFactory interface {
	CreateClient(token string) (GistClient, error)
}
