package models

// MaxTicketNumber is the largest ticket number a JSON body carries exactly.
const MaxTicketNumber = 1<<53 - 1

// Ticket is a ticket record backed by a single private gist.
// ID is the gist REST identifier, not its GraphQL node id.
type Ticket struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Number  int    `json:"number" yaml:"number"`
	Content string `json:"content" yaml:"content"`
}

// TicketCandidate is a ticket that passed form validation and has not been stored yet.
type TicketCandidate struct {
	Title   string `json:"title"`
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// WithID turns the candidate into a Ticket stored under the given gist id.
func (c TicketCandidate) WithID(id string) Ticket {
	return Ticket{
		ID:      id,
		Title:   c.Title,
		Number:  c.Number,
		Content: c.Content,
	}
}
