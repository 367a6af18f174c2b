package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/models"
)

func body(s string) *string { return &s }

func ticketNode(nodeID, title, text string) models.GistNode {
	return models.GistNode{
		NodeID:      nodeID,
		Description: title,
		Files:       []models.GistNodeFile{{Name: "ticket.json", Text: body(text)}},
	}
}

func TestTicketService_FetchTickets(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep only valid tickets in listing order", func(t *testing.T) {
		// Arrange
		client := new(MockGistClient)
		client.On("ListGists", mock.Anything).Return([]models.GistSummary{
			{ID: "g3", NodeID: "G_3", Files: []string{"ticket.json"}},
			{ID: "g9", NodeID: "G_9", Files: []string{"notes.md"}},
			{ID: "g2", NodeID: "G_2", Files: []string{"ticket.json", "extra.txt"}},
			{ID: "g1", NodeID: "G_1", Files: []string{"ticket.json"}},
			{ID: "g0", NodeID: "G_0", Files: []string{"ticket.json"}},
		}, nil)
		client.On("GetGistNodes", mock.Anything, []string{"G_3", "G_1", "G_0"}).Return([]models.GistNode{
			ticketNode("G_1", "First", `{"number":1,"content":"one"}`),
			ticketNode("G_0", "Broken", `{"number":"1","content":"zero"}`),
			ticketNode("G_3", "Third", `{"number":3,"content":"three"}`),
		}, nil)
		service := NewTicketService(client)

		// Act
		result, err := service.FetchTickets(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []models.Ticket{
			{ID: "g3", Title: "Third", Number: 3, Content: "three"},
			{ID: "g1", Title: "First", Number: 1, Content: "one"},
		}, result)
		client.AssertExpectations(t)
	})

	t.Run("should skip the detail query without candidates", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("ListGists", mock.Anything).Return([]models.GistSummary{
			{ID: "g9", NodeID: "G_9", Files: []string{"notes.md"}},
		}, nil)
		service := NewTicketService(client)

		result, err := service.FetchTickets(ctx)

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
		client.AssertNotCalled(t, "GetGistNodes", mock.Anything, mock.Anything)
	})

	t.Run("should wrap listing failures", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("ListGists", mock.Anything).Return(nil, &domainErrors.RemoteError{StatusCode: 500})
		service := NewTicketService(client)

		_, err := service.FetchTickets(ctx)

		assert.ErrorIs(t, err, domainErrors.ErrFetchTickets)
	})

	t.Run("should wrap detail failures", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("ListGists", mock.Anything).Return([]models.GistSummary{
			{ID: "g1", NodeID: "G_1", Files: []string{"ticket.json"}},
		}, nil)
		client.On("GetGistNodes", mock.Anything, []string{"G_1"}).Return(nil, errors.New("graphql down"))
		service := NewTicketService(client)

		_, err := service.FetchTickets(ctx)

		assert.ErrorIs(t, err, domainErrors.ErrFetchTickets)
	})
}

func TestTicketService_CreateTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a gist and return the ticket", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("CreateGist", mock.Anything, "Bug", map[string]string{
			"ticket.json": `{"number":3,"content":"desc"}`,
		}).Return("g1", nil)
		service := NewTicketService(client)

		ticket, err := service.CreateTicket(ctx, models.TicketCandidate{Title: "Bug", Number: 3, Content: "desc"})

		require.NoError(t, err)
		assert.Equal(t, models.Ticket{ID: "g1", Title: "Bug", Number: 3, Content: "desc"}, ticket)
		client.AssertExpectations(t)
	})

	t.Run("should wrap create failures", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("CreateGist", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom"))
		service := NewTicketService(client)

		_, err := service.CreateTicket(ctx, models.TicketCandidate{Title: "Bug", Number: 3, Content: "desc"})

		assert.ErrorIs(t, err, domainErrors.ErrCreateTicket)
	})
}

func TestTicketService_DeleteTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete by id", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("DeleteGist", mock.Anything, "g1").Return(nil)
		service := NewTicketService(client)

		err := service.DeleteTicket(ctx, "g1")

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("should wrap delete failures", func(t *testing.T) {
		client := new(MockGistClient)
		client.On("DeleteGist", mock.Anything, "g1").Return(&domainErrors.RemoteError{StatusCode: 404})
		service := NewTicketService(client)

		err := service.DeleteTicket(ctx, "g1")

		assert.ErrorIs(t, err, domainErrors.ErrDeleteTicket)
		assert.Equal(t, 404, domainErrors.StatusCode(err))
	})
}
