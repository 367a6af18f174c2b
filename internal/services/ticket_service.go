package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/tickets"
	"github.com/thomas-vilte/tickety/internal/vcs"
)

type TicketService struct {
	client vcs.GistClient
}

func NewTicketService(client vcs.GistClient) *TicketService {
	return &TicketService{client: client}
}

// FetchTickets lists the user's gists, keeps those shaped like tickets and
// resolves their details with one batch query. Records that fail validation
// are left out. The result follows the listing order.
func (s *TicketService) FetchTickets(ctx context.Context) ([]models.Ticket, error) {
	gists, err := s.client.ListGists(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list gists", err)
		return nil, domainErrors.ErrFetchTickets.WithError(err)
	}

	restIDs := make(map[string]string)
	var nodeIDs []string
	for _, gist := range gists {
		if !tickets.IsCandidate(gist) {
			continue
		}
		restIDs[gist.NodeID] = gist.ID
		nodeIDs = append(nodeIDs, gist.NodeID)
	}

	result := make([]models.Ticket, 0, len(nodeIDs))
	if len(nodeIDs) == 0 {
		logger.Debug(ctx, "no ticket candidates", "total", len(gists))
		return result, nil
	}

	nodes, err := s.client.GetGistNodes(ctx, nodeIDs)
	if err != nil {
		logger.Error(ctx, "failed to fetch gist details", err, "count", len(nodeIDs))
		return nil, domainErrors.ErrFetchTickets.WithError(err)
	}

	byNodeID := make(map[string]models.GistNode, len(nodes))
	for _, node := range nodes {
		if node.NodeID != "" {
			byNodeID[node.NodeID] = node
		}
	}

	for _, nodeID := range nodeIDs {
		node, ok := byNodeID[nodeID]
		if !ok {
			logger.Debug(ctx, "gist node missing from batch", "gist_id", restIDs[nodeID])
			continue
		}

		ticket, err := tickets.FromNode(node, restIDs[nodeID])
		if err != nil {
			logger.Debug(ctx, "skipping malformed ticket", "gist_id", restIDs[nodeID], "error", err)
			continue
		}
		result = append(result, ticket)
	}

	logger.Debug(ctx, "tickets fetched",
		"total", len(gists),
		"kept", len(result),
		"dropped", len(nodeIDs)-len(result))

	return result, nil
}

// CreateTicket stores candidate as a new private gist.
func (s *TicketService) CreateTicket(ctx context.Context, candidate models.TicketCandidate) (models.Ticket, error) {
	files, err := tickets.Files(candidate)
	if err != nil {
		return models.Ticket{}, domainErrors.ErrCreateTicket.WithError(err)
	}

	id, err := s.client.CreateGist(ctx, candidate.Title, files)
	if err != nil {
		logger.Error(ctx, "failed to create ticket", err)
		return models.Ticket{}, domainErrors.ErrCreateTicket.WithError(err)
	}

	logger.Info(ctx, "ticket created", "ticket_id", id)
	return candidate.WithID(id), nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	if err := s.client.DeleteGist(ctx, id); err != nil {
		logger.Error(ctx, "failed to delete ticket", err, "ticket_id", id)
		return domainErrors.ErrDeleteTicket.WithError(err)
	}

	logger.Info(ctx, "ticket deleted", "ticket_id", id)
	return nil
}
