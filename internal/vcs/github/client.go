package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/shurcooL/githubv4"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/vcs"
	"github.com/thomas-vilte/tickety/internal/version"
	"golang.org/x/oauth2"
)

var _ vcs.GistClient = (*GitHubClient)(nil)

const (
	scopesHeader = "X-OAuth-Scopes"
	listPageSize = 100
)

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

type GistsService interface {
	List(ctx context.Context, user string, opts *github.GistListOptions) ([]*github.Gist, *github.Response, error)
	Create(ctx context.Context, gist *github.Gist) (*github.Gist, *github.Response, error)
	Delete(ctx context.Context, id string) (*github.Response, error)
}

// GraphQLQuerier is satisfied by *githubv4.Client.
type GraphQLQuerier interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
}

type GitHubClient struct {
	usersService UsersService
	gistsService GistsService
	graphql      GraphQLQuerier
}

// Endpoints locates the REST and GraphQL APIs. Empty fields fall back to github.com.
type Endpoints struct {
	APIURL     string
	GraphQLURL string
	Timeout    time.Duration
}

func NewGitHubClient(token string, endpoints Endpoints) (*GitHubClient, error) {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = endpoints.Timeout

	client := github.NewClient(httpClient)
	client.UserAgent = version.UserAgent()
	if endpoints.APIURL != "" {
		baseURL, err := url.Parse(endpoints.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", endpoints.APIURL, err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	var querier *githubv4.Client
	if endpoints.GraphQLURL != "" {
		querier = githubv4.NewEnterpriseClient(endpoints.GraphQLURL, httpClient)
	} else {
		querier = githubv4.NewClient(httpClient)
	}

	return &GitHubClient{
		usersService: client.Users,
		gistsService: client.Gists,
		graphql:      querier,
	}, nil
}

func NewGitHubClientWithServices(users UsersService, gists GistsService, graphql GraphQLQuerier) *GitHubClient {
	return &GitHubClient{
		usersService: users,
		gistsService: gists,
		graphql:      graphql,
	}
}

// GetAuthenticatedIdentity calls GET /user and reads the granted scopes from the response header.
func (ghc *GitHubClient) GetAuthenticatedIdentity(ctx context.Context) (models.Identity, error) {
	user, resp, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		return models.Identity{}, wrapRemoteError(resp, err)
	}

	identity := models.Identity{Login: user.GetLogin()}
	if resp != nil && resp.Response != nil {
		identity.Scopes = parseScopes(resp.Header.Get(scopesHeader))
	}

	logger.Debug(ctx, "authenticated identity fetched",
		"user", identity.Login,
		"scopes", strings.Join(identity.Scopes, ","))

	return identity, nil
}

// ListGists follows every page of GET /gists.
func (ghc *GitHubClient) ListGists(ctx context.Context) ([]models.GistSummary, error) {
	opts := &github.GistListOptions{ListOptions: github.ListOptions{PerPage: listPageSize}}

	var summaries []models.GistSummary
	for {
		gists, resp, err := ghc.gistsService.List(ctx, "", opts)
		if err != nil {
			return nil, wrapRemoteError(resp, err)
		}

		for _, gist := range gists {
			files := make([]string, 0, len(gist.Files))
			for name := range gist.Files {
				files = append(files, string(name))
			}
			sort.Strings(files)

			summaries = append(summaries, models.GistSummary{
				ID:     gist.GetID(),
				NodeID: gist.GetNodeID(),
				Files:  files,
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debug(ctx, "gists listed", "count", len(summaries))
	return summaries, nil
}

type gistNodesQuery struct {
	Nodes []struct {
		Gist struct {
			ID          githubv4.ID
			Description *githubv4.String
			Files       []struct {
				Name githubv4.String
				Text *githubv4.String
			} `graphql:"files(limit: 1)"`
		} `graphql:"... on Gist"`
	} `graphql:"nodes(ids: $ids)"`
}

// GetGistNodes resolves node ids with a single GraphQL nodes query.
// Nodes that are not gists come back with an empty NodeID.
func (ghc *GitHubClient) GetGistNodes(ctx context.Context, nodeIDs []string) ([]models.GistNode, error) {
	if len(nodeIDs) == 0 {
		return nil, nil
	}

	ids := make([]githubv4.ID, len(nodeIDs))
	for i, id := range nodeIDs {
		ids[i] = githubv4.ID(id)
	}

	var q gistNodesQuery
	if err := ghc.graphql.Query(ctx, &q, map[string]interface{}{"ids": ids}); err != nil {
		return nil, fmt.Errorf("error querying gist nodes: %w", err)
	}

	nodes := make([]models.GistNode, 0, len(q.Nodes))
	for _, n := range q.Nodes {
		node := models.GistNode{}
		if id, ok := n.Gist.ID.(string); ok {
			node.NodeID = id
		}
		if n.Gist.Description != nil {
			node.Description = string(*n.Gist.Description)
		}
		for _, f := range n.Gist.Files {
			file := models.GistNodeFile{Name: string(f.Name)}
			if f.Text != nil {
				text := string(*f.Text)
				file.Text = &text
			}
			node.Files = append(node.Files, file)
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// CreateGist creates a private gist with the given files.
func (ghc *GitHubClient) CreateGist(ctx context.Context, description string, files map[string]string) (string, error) {
	gist := &github.Gist{
		Description: github.Ptr(description),
		Public:      github.Ptr(false),
		Files:       make(map[github.GistFilename]github.GistFile, len(files)),
	}
	for name, content := range files {
		gist.Files[github.GistFilename(name)] = github.GistFile{Content: github.Ptr(content)}
	}

	created, resp, err := ghc.gistsService.Create(ctx, gist)
	if err != nil {
		return "", wrapRemoteError(resp, err)
	}

	if created.GetID() == "" {
		return "", errors.New("created gist has no id")
	}

	return created.GetID(), nil
}

func (ghc *GitHubClient) DeleteGist(ctx context.Context, id string) error {
	resp, err := ghc.gistsService.Delete(ctx, id)
	if err != nil {
		return wrapRemoteError(resp, err)
	}
	return nil
}

// wrapRemoteError keeps the status and server message when the provider
// answered, and reports a transport failure otherwise.
func wrapRemoteError(resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return domainErrors.ErrServerUnreachable.WithError(err)
	}

	remote := &domainErrors.RemoteError{
		StatusCode: resp.StatusCode,
		Err:        err,
	}

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	switch {
	case errors.As(err, &errResp):
		remote.Message = errResp.Message
	case errors.As(err, &rateErr):
		remote.Message = rateErr.Message
	}

	return remote
}

func parseScopes(header string) []string {
	var scopes []string
	for _, s := range strings.Split(header, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
