package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const previewWidth = 48

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTickets writes tickets to w in the requested format.
func RenderTickets(w io.Writer, tickets []models.Ticket, format Format, t *i18n.Translations) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if tickets == nil {
			tickets = []models.Ticket{}
		}
		return enc.Encode(tickets)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(tickets)
	default:
		return renderTable(w, tickets, t)
	}
}

func renderTable(w io.Writer, tickets []models.Ticket, t *i18n.Translations) error {
	if len(tickets) == 0 {
		PrintInfo(w, t.GetMessage("list.empty", 0, nil))
		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(
			t.GetMessage("ticket.field_number", 0, nil),
			t.GetMessage("ticket.field_title", 0, nil),
			t.GetMessage("ticket.field_content", 0, nil),
			t.GetMessage("ticket.field_id", 0, nil),
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, ticket := range tickets {
		tbl.Row(strconv.Itoa(ticket.Number), ticket.Title, Preview(ticket.Content, previewWidth), ticket.ID)
	}

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Dim.Sprint(t.GetMessage("list.count", len(tickets), map[string]interface{}{
		"Count": len(tickets),
	})))
	return err
}

// Preview returns the first line of content cut to width runes.
func Preview(content string, width int) string {
	line, _, multiline := strings.Cut(content, "\n")
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	if multiline {
		return line + " …"
	}
	return line
}
