package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomas-vilte/tickety/internal/form"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/models"
)

// SubmitMsg carries a candidate that passed form validation.
type SubmitMsg struct {
	Candidate models.TicketCandidate
}

// CancelMsg is sent when the user leaves the form without saving.
type CancelMsg struct{}

// FormModel renders the add-ticket form as three collapsible groups on top
// of form.Form. Only the expanded group has an input with focus.
type FormModel struct {
	form    *form.Form
	title   textinput.Model
	number  textinput.Model
	content textarea.Model
	trans   *i18n.Translations
	theme   Theme
	keys    KeyMap
}

func NewFormModel(trans *i18n.Translations) FormModel {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = 256

	number := textinput.New()
	number.Prompt = ""
	number.CharLimit = 18

	content := textarea.New()
	content.ShowLineNumbers = false
	content.SetHeight(5)

	model := FormModel{
		form:    form.New(),
		title:   title,
		number:  number,
		content: content,
		trans:   trans,
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
	}
	model.focusActive()
	return model
}

// Prefill seeds the inputs, e.g. from command flags.
func (m *FormModel) Prefill(title, number, content string) {
	m.title.SetValue(title)
	m.number.SetValue(number)
	m.content.SetValue(content)
	m.sync()
}

func (m FormModel) Form() *form.Form {
	return m.form
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.content.SetWidth(msg.Width - 8)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }

		case key.Matches(msg, m.keys.Submit):
			m.sync()
			candidate, ok := m.form.Submit()
			m.focusActive()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return SubmitMsg{Candidate: candidate} }

		case key.Matches(msg, m.keys.NextGroup):
			m.expand(m.form.Active() + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGroup):
			m.expand(m.form.Active() - 1)
			return m, nil

		case msg.Type == tea.KeyEnter && m.form.Active() != form.StepContent:
			m.expand(m.form.Active() + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.Active() {
	case form.StepTitle:
		m.title, cmd = m.title.Update(msg)
	case form.StepNumber:
		m.number, cmd = m.number.Update(msg)
	case form.StepContent:
		m.content, cmd = m.content.Update(msg)
	}
	m.sync()
	return m, cmd
}

// expand opens step, wrapping around the group list.
func (m *FormModel) expand(step form.Step) {
	count := form.Step(len(form.Steps))
	m.form.Expand((step%count + count) % count)
	m.focusActive()
}

func (m *FormModel) focusActive() {
	m.title.Blur()
	m.number.Blur()
	m.content.Blur()
	switch m.form.Active() {
	case form.StepTitle:
		m.title.Focus()
	case form.StepNumber:
		m.number.Focus()
	case form.StepContent:
		m.content.Focus()
	}
}

func (m *FormModel) sync() {
	m.form.SetTitle(m.title.Value())
	m.form.SetNumberText(m.number.Value())
	m.form.SetContent(m.content.Value())
}

func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.header().Render(m.trans.GetMessage("add.form_title", 0, nil)))
	b.WriteString("\n\n")

	for _, step := range form.Steps {
		expanded := step == m.form.Active()
		marker := "▸"
		if expanded {
			marker = "▾"
		}

		label := marker + " " + m.trans.GetMessage(FieldLabel(step), 0, nil)
		if m.form.Validated() && m.form.Invalid(step) {
			label = m.theme.errorText().Render(label + "  " + m.trans.GetMessage(stepError(step), 0, nil))
		} else if expanded {
			label = m.theme.header().Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		if expanded {
			switch step {
			case form.StepTitle:
				b.WriteString(m.theme.panel().Render(m.title.View()))
			case form.StepNumber:
				b.WriteString(m.theme.panel().Render(m.number.View()))
			case form.StepContent:
				b.WriteString(m.theme.panel().Render(m.content.View()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.faint().Render(m.trans.GetMessage("add.form_help", 0, nil)))
	return b.String()
}

// FieldLabel returns the translation key of a form group label.
func FieldLabel(step form.Step) string {
	switch step {
	case form.StepNumber:
		return "ticket.field_number"
	case form.StepContent:
		return "ticket.field_content"
	default:
		return "ticket.field_title"
	}
}

func stepError(step form.Step) string {
	switch step {
	case form.StepNumber:
		return "add.error_number"
	case form.StepContent:
		return "add.error_content"
	default:
		return "add.error_title"
	}
}

// AddModel runs the form as a standalone program and remembers the outcome.
type AddModel struct {
	Form      FormModel
	Candidate *models.TicketCandidate
}

func NewAddModel(trans *i18n.Translations) AddModel {
	return AddModel{Form: NewFormModel(trans)}
}

func (m AddModel) Init() tea.Cmd {
	return m.Form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitMsg:
		candidate := msg.Candidate
		m.Candidate = &candidate
		return m, tea.Quit
	case CancelMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

func (m AddModel) View() string {
	if m.Candidate != nil {
		return ""
	}
	return m.Form.View() + "\n"
}
