package shell

import (
	"context"
	"sync"

	"github.com/thomas-vilte/tickety/internal/models"
)

// TicketService is the remote side of the shell.
type TicketService interface {
	FetchTickets(ctx context.Context) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, candidate models.TicketCandidate) (models.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice messages are translation keys.
const (
	MessageTicketAdded   = "notice.ticket_added"
	MessageTicketDeleted = "notice.ticket_deleted"
	MessageError         = "notice.error"
)

// Notice is the last outcome to show to the user.
type Notice struct {
	Kind      NoticeKind
	MessageID string
}

// Shell owns the in-memory ticket collection of an authenticated user.
// Add and Remove patch the collection after the remote call succeeds; a
// failed call leaves it untouched.
type Shell struct {
	service TicketService
	user    string

	mu      sync.RWMutex
	tickets []models.Ticket
	notice  *Notice
}

func New(service TicketService, user string) *Shell {
	return &Shell{
		service: service,
		user:    user,
		tickets: []models.Ticket{},
	}
}

func (s *Shell) User() string {
	return s.user
}

// Refresh replaces the collection with the remote one.
func (s *Shell) Refresh(ctx context.Context) error {
	fetched, err := s.service.FetchTickets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.notice = &Notice{Kind: NoticeError, MessageID: MessageError}
		return err
	}
	s.tickets = fetched
	return nil
}

// Add stores candidate remotely and puts the new ticket first.
func (s *Shell) Add(ctx context.Context, candidate models.TicketCandidate) (models.Ticket, error) {
	ticket, err := s.service.CreateTicket(ctx, candidate)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.notice = &Notice{Kind: NoticeError, MessageID: MessageError}
		return models.Ticket{}, err
	}

	tickets := make([]models.Ticket, 0, len(s.tickets)+1)
	tickets = append(tickets, ticket)
	s.tickets = append(tickets, s.tickets...)
	s.notice = &Notice{Kind: NoticeSuccess, MessageID: MessageTicketAdded}
	return ticket, nil
}

// Remove deletes the ticket remotely and drops every entry with that id.
func (s *Shell) Remove(ctx context.Context, id string) error {
	err := s.service.DeleteTicket(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.notice = &Notice{Kind: NoticeError, MessageID: MessageError}
		return err
	}

	kept := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tickets = kept
	s.notice = &Notice{Kind: NoticeInfo, MessageID: MessageTicketDeleted}
	return nil
}

// Tickets returns a copy of the collection.
func (s *Shell) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Notice returns the last notice, or nil.
func (s *Shell) Notice() *Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil {
		return nil
	}
	n := *s.notice
	return &n
}

func (s *Shell) DismissNotice() {
	s.mu.Lock()
	s.notice = nil
	s.mu.Unlock()
}
