package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of the terminal UI. Colors are ANSI 256 codes.
type Theme struct {
	NormalText         lipgloss.Color
	FaintText          lipgloss.Color
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color
	HeaderForeground   lipgloss.Color
	BorderColor        lipgloss.Color
	SuccessText        lipgloss.Color
	InfoText           lipgloss.Color
	ErrorText          lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("243"),
	SelectedBackground: lipgloss.Color("237"),
	SelectedForeground: lipgloss.Color("231"),
	HeaderForeground:   lipgloss.Color("39"),
	BorderColor:        lipgloss.Color("240"),
	SuccessText:        lipgloss.Color("42"),
	InfoText:           lipgloss.Color("45"),
	ErrorText:          lipgloss.Color("203"),
}

func (theme Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
}

func (theme Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.FaintText)
}

func (theme Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
}

func (theme Theme) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ErrorText)
}

func (theme Theme) panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)
}
