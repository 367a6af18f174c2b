package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/tickety/internal/models"
)

func text(s string) *string { return &s }

func TestEncodeBody(t *testing.T) {
	t.Run("should round trip number and multi-line content", func(t *testing.T) {
		// Arrange
		encoded, err := EncodeBody(42, "line1\nline2")
		require.NoError(t, err)

		// Act
		number, content, err := DecodeBody(encoded)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 42, number)
		assert.Equal(t, "line1\nline2", content)
	})

	t.Run("should produce the stored shape", func(t *testing.T) {
		encoded, err := EncodeBody(3, "a <b> & c")

		require.NoError(t, err)
		assert.JSONEq(t, `{"number":3,"content":"a <b> & c"}`, encoded)
		assert.Equal(t, `{"number":3,"content":"a <b> & c"}`, encoded)
	})

	t.Run("should round trip the largest number", func(t *testing.T) {
		encoded, err := EncodeBody(models.MaxTicketNumber, "x")
		require.NoError(t, err)

		number, _, err := DecodeBody(encoded)

		require.NoError(t, err)
		assert.Equal(t, models.MaxTicketNumber, number)
	})

	t.Run("should refuse numbers it could not read back", func(t *testing.T) {
		for _, n := range []int{0, -1, models.MaxTicketNumber + 2} {
			_, err := EncodeBody(n, "x")

			assert.ErrorIs(t, err, ErrInvalidNumber, n)
		}
	})
}

func TestFiles(t *testing.T) {
	files, err := Files(models.TicketCandidate{Title: "Bug", Number: 3, Content: "desc"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ticket.json": `{"number":3,"content":"desc"}`}, files)
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{"single ticket file", []string{"ticket.json"}, true},
		{"no files", nil, false},
		{"other file name", []string{"notes.md"}, false},
		{"extra file", []string{"ticket.json", "notes.md"}, false},
		{"different case", []string{"Ticket.json"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCandidate(models.GistSummary{ID: "g1", Files: tt.files}))
		})
	}
}

func TestFromNode(t *testing.T) {
	t.Run("should build a ticket with the REST id", func(t *testing.T) {
		node := models.GistNode{
			NodeID:      "G_1",
			Description: "Bug",
			Files:       []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":3,"content":"desc"}`)}},
		}

		ticket, err := FromNode(node, "g1")

		require.NoError(t, err)
		assert.Equal(t, models.Ticket{ID: "g1", Title: "Bug", Number: 3, Content: "desc"}, ticket)
	})

	malformed := []struct {
		name  string
		files []models.GistNodeFile
		want  error
	}{
		{"no files", nil, ErrFileCount},
		{"two files", []models.GistNodeFile{{Name: "ticket.json", Text: text("{}")}, {Name: "b", Text: text("")}}, ErrFileCount},
		{"wrong name", []models.GistNodeFile{{Name: "other.json", Text: text(`{"number":1,"content":"x"}`)}}, ErrFileName},
		{"binary file", []models.GistNodeFile{{Name: "ticket.json"}}, ErrMissingText},
		{"not JSON", []models.GistNodeFile{{Name: "ticket.json", Text: text("number=1")}}, ErrNotJSONObject},
		{"JSON array", []models.GistNodeFile{{Name: "ticket.json", Text: text(`[1,"x"]`)}}, ErrNotJSONObject},
		{"string number", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":"1","content":"x"}`)}}, ErrInvalidNumber},
		{"missing number", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"content":"x"}`)}}, ErrInvalidNumber},
		{"fractional number", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":1.5,"content":"x"}`)}}, ErrInvalidNumber},
		{"zero number", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":0,"content":"x"}`)}}, ErrInvalidNumber},
		{"numeric content", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":1,"content":5}`)}}, ErrInvalidText},
		{"missing content", []models.GistNodeFile{{Name: "ticket.json", Text: text(`{"number":1}`)}}, ErrInvalidText},
	}

	for _, tt := range malformed {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := FromNode(models.GistNode{NodeID: "G_1", Files: tt.files}, "g1")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
