package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/shell"
	"github.com/thomas-vilte/tickety/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

const contentPreviewWidth = 40

// ticketsLoadedMsg, ticketAddedMsg and ticketDeletedMsg report the end of a
// remote call. The shell already holds the outcome; err is kept for the status line.
type (
	ticketsLoadedMsg struct{ err error }
	ticketAddedMsg   struct{ err error }
	ticketDeletedMsg struct{ err error }
)

// BrowseModel is the authenticated shell: the ticket list with add, delete
// and refresh. Remote calls run as commands and are applied on the event loop.
type BrowseModel struct {
	ctx   context.Context
	shell *shell.Shell
	trans *i18n.Translations
	theme Theme
	keys  KeyMap

	mode    mode
	form    FormModel
	saving  bool
	cursor  int
	pending int
	lastErr error
	width   int
}

func NewBrowseModel(ctx context.Context, sh *shell.Shell, trans *i18n.Translations) BrowseModel {
	return BrowseModel{
		ctx:     ctx,
		shell:   sh,
		trans:   trans,
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
		pending: 1,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m BrowseModel) refreshCmd() tea.Cmd {
	sh, ctx := m.shell, m.ctx
	return func() tea.Msg {
		return ticketsLoadedMsg{err: sh.Refresh(ctx)}
	}
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.mode != modeForm {
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case ticketsLoadedMsg:
		return m.finish(msg.err), nil

	case ticketAddedMsg:
		m = m.finish(msg.err)
		m.saving = false
		if msg.err == nil {
			m.mode = modeList
			m.cursor = 0
		}
		return m, nil

	case ticketDeletedMsg:
		return m.finish(msg.err), nil

	case SubmitMsg:
		// The form stays open until the ticket is stored.
		m.shell.DismissNotice()
		m.saving = true
		m.pending++
		candidate := msg.Candidate
		sh, ctx := m.shell, m.ctx
		return m, func() tea.Msg {
			_, err := sh.Add(ctx, candidate)
			return ticketAddedMsg{err: err}
		}

	case CancelMsg:
		m.mode = modeList
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeForm {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			if m.saving {
				return m, nil
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m.handleListKeys(msg)
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tickets := m.shell.Tickets()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tickets)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.shell.DismissNotice()
		m.pending++
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Add):
		m.shell.DismissNotice()
		m.mode = modeForm
		m.form = NewFormModel(m.trans)
		if m.width > 0 {
			m.form, _ = m.form.Update(tea.WindowSizeMsg{Width: m.width})
		}
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		// A finished remote call may have shrunk the collection before its message clamps the cursor.
		if m.cursor >= len(tickets) {
			return m, nil
		}
		m.shell.DismissNotice()
		id := tickets[m.cursor].ID
		m.pending++
		sh, ctx := m.shell, m.ctx
		return m, func() tea.Msg {
			return ticketDeletedMsg{err: sh.Remove(ctx, id)}
		}
	}

	return m, nil
}

func (m BrowseModel) finish(err error) BrowseModel {
	if m.pending > 0 {
		m.pending--
	}
	m.lastErr = err
	if count := len(m.shell.Tickets()); m.cursor >= count {
		m.cursor = max(count-1, 0)
	}
	return m
}

func (m BrowseModel) View() string {
	if m.mode == modeForm {
		view := m.form.View() + "\n"
		if status := m.formStatus(); status != "" {
			view += status + "\n"
		}
		return view
	}

	var b strings.Builder
	b.WriteString(m.theme.header().Render(fmt.Sprintf("%s %s", ui.TicketEmoji,
		m.trans.GetMessage("browse.title", 0, map[string]interface{}{"User": m.shell.User()}))))
	b.WriteString("\n\n")

	tickets := m.shell.Tickets()
	switch {
	case len(tickets) == 0 && m.pending > 0:
		b.WriteString(m.theme.faint().Render(m.trans.GetMessage("browse.loading", 0, nil)))
		b.WriteString("\n")
	case len(tickets) == 0:
		b.WriteString(m.theme.faint().Render(m.trans.GetMessage("list.empty", 0, nil)))
		b.WriteString("\n")
	default:
		for i, ticket := range tickets {
			row := fmt.Sprintf("#%-5d %-28s %s", ticket.Number, ticket.Title,
				m.theme.faint().Render(ui.Preview(ticket.Content, contentPreviewWidth)))
			if i == m.cursor {
				row = m.theme.selected().Render("› " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if status := m.status(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.faint().Render(m.trans.GetMessage("browse.help", 0, nil)))
	b.WriteString("\n")
	return b.String()
}

func (m BrowseModel) formStatus() string {
	if m.saving {
		return m.theme.faint().Render(m.trans.GetMessage("browse.working", 0, nil))
	}
	if notice := m.shell.Notice(); notice != nil && notice.Kind == shell.NoticeError {
		return m.theme.errorText().Render(m.noticeText(notice))
	}
	return ""
}

func (m BrowseModel) noticeText(notice *shell.Notice) string {
	if notice.Kind == shell.NoticeError && m.lastErr != nil {
		return ui.ErrorMessage(m.lastErr, m.trans)
	}
	return m.trans.GetMessage(notice.MessageID, 0, nil)
}

func (m BrowseModel) status() string {
	if m.pending > 0 && len(m.shell.Tickets()) > 0 {
		return m.theme.faint().Render(m.trans.GetMessage("browse.working", 0, nil))
	}

	notice := m.shell.Notice()
	if notice == nil {
		return ""
	}

	text := m.noticeText(notice)

	style := lipgloss.NewStyle().Foreground(m.theme.InfoText)
	switch notice.Kind {
	case shell.NoticeSuccess:
		style = lipgloss.NewStyle().Foreground(m.theme.SuccessText)
	case shell.NoticeError:
		style = m.theme.errorText()
	}
	return style.Render(text)
}
