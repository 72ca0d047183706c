package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hangman/internal/config"
)

// Styles holds the lipgloss styles used by the game screen.
type Styles struct {
	Title      lipgloss.Style
	Status     lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Gallows    lipgloss.Style
	Word       lipgloss.Style
	Guessed    lipgloss.Style
	Help       lipgloss.Style

	// Notice boxes by kind
	Warning lipgloss.Style
	Info    lipgloss.Style
	Win     lipgloss.Style
	Loss    lipgloss.Style
}

// NewStyles builds styles from the theme colors.
// A nil renderer uses the default one; SSH sessions pass their own so colors
// match the remote terminal.
func NewStyles(r *lipgloss.Renderer, theme config.ThemeConfig) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginTop(1)

	return Styles{
		Title:      r.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Status:     r.NewStyle().Foreground(muted),
		Selected:   r.NewStyle().Bold(true).Foreground(accent).Underline(true),
		Unselected: r.NewStyle().Foreground(muted),
		Gallows:    r.NewStyle().MarginTop(1).MarginBottom(1),
		Word:       r.NewStyle().Bold(true),
		Guessed:    r.NewStyle().Foreground(muted),
		Help:       r.NewStyle().MarginTop(1),
		Warning:    box.BorderForeground(lipgloss.Color(theme.Warning)),
		Info:       box.BorderForeground(accent),
		Win:        box.BorderForeground(lipgloss.Color(theme.Success)),
		Loss:       box.BorderForeground(lipgloss.Color(theme.Danger)),
	}
}

// noticeStyle returns the box style for a notice kind.
func (s Styles) noticeStyle(kind NoticeKind) lipgloss.Style {
	switch kind {
	case NoticeWarning:
		return s.Warning
	case NoticeWin:
		return s.Win
	case NoticeLoss:
		return s.Loss
	default:
		return s.Info
	}
}
