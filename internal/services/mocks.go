package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/vcs"
)

type (
	MockGistClient struct {
		mock.Mock
	}

	MockClientFactory struct {
		mock.Mock
	}
)

func (m *MockGistClient) GetAuthenticatedIdentity(ctx context.Context) (models.Identity, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Identity), args.Error(1)
}

func (m *MockGistClient) ListGists(ctx context.Context) ([]models.GistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GistSummary), args.Error(1)
}

func (m *MockGistClient) GetGistNodes(ctx context.Context, nodeIDs []string) ([]models.GistNode, error) {
	args := m.Called(ctx, nodeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GistNode), args.Error(1)
}

func (m *MockGistClient) CreateGist(ctx context.Context, description string, files map[string]string) (string, error) {
	args := m.Called(ctx, description, files)
	return args.String(0), args.Error(1)
}

func (m *MockGistClient) DeleteGist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientFactory) CreateClient(token string) (vcs.GistClient, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vcs.GistClient), args.Error(1)
}
