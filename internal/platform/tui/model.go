// Package tui provides the Bubble Tea front end for Hangman: the game screen
// model, its key bindings and styles, and an SSH server that runs one game
// per connection.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/config"
	"github.com/vovakirdan/hangman/internal/hangman"
)

// Options configures a game screen.
type Options struct {
	Difficulty hangman.Difficulty // Selected when the screen opens
	Styles     Styles
	Logger     *log.Logger // nil discards
}

// DefaultOptions returns options with the default theme and difficulty.
func DefaultOptions() Options {
	return Options{
		Difficulty: hangman.Easy,
		Styles:     NewStyles(nil, config.DefaultConfig().Theme),
	}
}

// Model is the Bubble Tea model for a Hangman game.
// It owns the only reference to the session and starts a new round after
// every win or loss.
type Model struct {
	session  *hangman.Session
	selected hangman.Difficulty // Used for the next round
	input    textinput.Model
	help     help.Model
	keys     KeyMap
	styles   Styles
	logger   *log.Logger
	notice   *Notice
	width    int
	height   int
	quitting bool
	err      error // Fatal error that ended the program
}

// NewModel creates a game screen for session and starts the first round.
// The error is non-nil only for a misconfigured word pool.
func NewModel(session *hangman.Session, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "letter"
	input.Prompt = "Guess: "
	input.CharLimit = 16
	input.Width = 16
	input.Focus()

	m := Model{
		session:  session,
		selected: opts.Difficulty,
		input:    input,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   opts.Styles,
		logger:   logger,
	}

	if err := m.startRound(); err != nil {
		return m, err
	}
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even over a notice
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A notice blocks everything until dismissed
	if m.notice != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NextDifficulty):
		m.selected = m.selected.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevDifficulty):
		m.selected = m.selected.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.input.Reset()
		if err := m.startRound(); err != nil {
			return m.fail(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit passes the text field to the session and reacts to the outcome.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	res, err := m.session.Guess(raw)
	if err != nil {
		if errors.Is(err, hangman.ErrRoundOver) || errors.Is(err, hangman.ErrNoRound) {
			// Not reachable through the UI; recover with a fresh round
			if startErr := m.startRound(); startErr != nil {
				return m.fail(startErr)
			}
			return m, nil
		}
		m.logger.Debug("guess rejected", "input", raw, "error", err)
		n := noticeForGuessError(err, raw)
		m.notice = &n
		return m, nil
	}

	m.logger.Debug("guess",
		"letter", string(res.Letter),
		"hit", res.Hit,
		"remaining", res.Remaining,
		"outcome", res.Outcome,
	)

	if n, done := noticeForResult(res); done {
		m.logger.Info("round finished",
			"difficulty", m.session.Difficulty(),
			"outcome", res.Outcome,
			"word", res.Word,
		)
		m.notice = &n
		if err := m.startRound(); err != nil {
			return m.fail(err)
		}
	}
	return m, nil
}

// startRound begins a round at the selected difficulty.
func (m *Model) startRound() error {
	if err := m.session.StartRound(m.selected); err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	m.logger.Debug("round started",
		"difficulty", m.selected,
		"length", len(m.session.Word()),
	)
	return nil
}

// fail records a fatal error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("fatal", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// View renders the game screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("H A N G M A N"))
	b.WriteString("\n")

	// Difficulty selector
	parts := make([]string, 0, len(hangman.Difficulties))
	for _, d := range hangman.Difficulties {
		if d == m.selected {
			parts = append(parts, m.styles.Selected.Render(d.Title()))
		} else {
			parts = append(parts, m.styles.Unselected.Render(d.Title()))
		}
	}
	b.WriteString("Select: " + strings.Join(parts, "  "))
	b.WriteString("\n")

	b.WriteString(m.styles.Status.Render(m.StatusLine()))
	b.WriteString("\n")

	b.WriteString(m.styles.Gallows.Render(m.session.Gallows()))
	b.WriteString("\n")

	b.WriteString(m.styles.Word.Render(m.session.MaskedWord()))
	b.WriteString("\n")

	if guessed := m.session.Guessed(); len(guessed) > 0 {
		letters := make([]string, len(guessed))
		for i, r := range guessed {
			letters[i] = string(r)
		}
		b.WriteString(m.styles.Guessed.Render("Guessed: " + strings.Join(letters, " ")))
	}
	b.WriteString("\n\n")

	if m.notice != nil {
		b.WriteString(m.renderNotice(*m.notice))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.ShortHelpView([]key.Binding{m.keys.Dismiss})))
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderNotice(n Notice) string {
	body := m.styles.Word.Render(n.Title) + "\n" + n.Message
	return m.styles.noticeStyle(n.Kind).Render(body)
}

// StatusLine returns the status text, e.g. "Difficulty: Easy | Guesses Left: 6".
func (m Model) StatusLine() string {
	return fmt.Sprintf("Difficulty: %s | Guesses Left: %d",
		m.session.Difficulty().Title(), m.session.Remaining())
}

// Session returns the game session driven by this model.
func (m Model) Session() *hangman.Session {
	return m.session
}

// Notice returns the notice currently shown, or nil.
func (m Model) Notice() *Notice {
	return m.notice
}

// Selected returns the difficulty the next round will use.
func (m Model) Selected() hangman.Difficulty {
	return m.selected
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local game.
func Run(session *hangman.Session, opts Options) error {
	model, err := NewModel(session, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
