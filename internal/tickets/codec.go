package tickets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/tidwall/gjson"
)

// FileName is the only file a ticket gist carries.
const FileName = "ticket.json"

var (
	ErrFileCount     = errors.New("gist must contain exactly one file")
	ErrFileName      = errors.New("unexpected file name")
	ErrMissingText   = errors.New("file has no text content")
	ErrNotJSONObject = errors.New("body is not a JSON object")
	ErrInvalidNumber = errors.New("number must be a positive integer")
	ErrInvalidText   = errors.New("content must be a string")
)

type body struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// EncodeBody renders the ticket.json payload for a number and content.
func EncodeBody(number int, content string) (string, error) {
	if number < 1 || number > models.MaxTicketNumber {
		return "", ErrInvalidNumber
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body{Number: number, Content: content}); err != nil {
		return "", fmt.Errorf("error encoding ticket body: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Files builds the gist file set for a new ticket.
func Files(candidate models.TicketCandidate) (map[string]string, error) {
	encoded, err := EncodeBody(candidate.Number, candidate.Content)
	if err != nil {
		return nil, err
	}
	return map[string]string{FileName: encoded}, nil
}

// DecodeBody extracts number and content from a ticket.json payload.
func DecodeBody(text string) (int, string, error) {
	if !gjson.Valid(text) {
		return 0, "", ErrNotJSONObject
	}
	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return 0, "", ErrNotJSONObject
	}

	number := parsed.Get("number")
	if number.Type != gjson.Number || number.Num != math.Trunc(number.Num) ||
		number.Num < 1 || number.Num > models.MaxTicketNumber {
		return 0, "", ErrInvalidNumber
	}

	content := parsed.Get("content")
	if content.Type != gjson.String {
		return 0, "", ErrInvalidText
	}

	return int(number.Num), content.Str, nil
}

// IsCandidate reports whether a listed gist looks like a ticket by its file set.
func IsCandidate(gist models.GistSummary) bool {
	return len(gist.Files) == 1 && gist.Files[0] == FileName
}

// FromNode validates a gist node and builds the ticket stored under restID.
func FromNode(node models.GistNode, restID string) (models.Ticket, error) {
	if len(node.Files) != 1 {
		return models.Ticket{}, ErrFileCount
	}
	file := node.Files[0]
	if file.Name != FileName {
		return models.Ticket{}, fmt.Errorf("%w: %s", ErrFileName, file.Name)
	}
	if file.Text == nil {
		return models.Ticket{}, ErrMissingText
	}

	number, content, err := DecodeBody(*file.Text)
	if err != nil {
		return models.Ticket{}, err
	}

	return models.Ticket{
		ID:      restID,
		Title:   node.Description,
		Number:  number,
		Content: content,
	}, nil
}
