package shell

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/tickety/internal/models"
)

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) FetchTickets(ctx context.Context) ([]models.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockTicketService) CreateTicket(ctx context.Context, candidate models.TicketCandidate) (models.Ticket, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *MockTicketService) DeleteTicket(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
