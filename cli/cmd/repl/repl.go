// Package repl implements YAPL's interactive line-oriented REPL: read a
// line, parse it as a document, evaluate, serialize, print. A persistent
// root environment survives across lines within one process. There is no
// multi-mode command palette and no external-editor command.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/log"
	"github.com/ardnew/yapl/value"
)

const prompt = "yapl➜ "

// Styles.
var (
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4"))
)

func helpLine() string {
	return hintStyle.Render(
		`Type a YAPL expression and press Enter to evaluate it.` + "\n" +
			`Completion of bound names offers suggestions after "$": .` + "\n" +
			`Press Ctrl+C on an empty line or Ctrl+D to exit.`,
	)
}

const defaultWidth = 80

// model is the Bubble Tea model driving the REPL.
type model struct {
	ctx     context.Context
	env     *value.Environment
	input   textinput.Model
	history *History
	histIdx int

	width int

	suggestions fuzzy.Matches
	suggPrefix  string
	suggStart   int
	suggIdx     int

	quitting bool
}

// Run starts the REPL against root, persisting history under cacheDir.
func Run(ctx context.Context, root *value.Environment, cacheDir string) error {
	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "could not load repl history", slog.String("error", err.Error()))
	}

	fmt.Println(helpLine())

	m := newModel(ctx, root, history)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

func newModel(ctx context.Context, env *value.Environment, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctx:     ctx,
		env:     env,
		input:   ti,
		history: history,
		histIdx: history.Len(),
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.suggestions = nil

		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		if len(m.suggestions) > 0 {
			m.suggIdx = (m.suggIdx + 1) % len(m.suggestions)
		}

		return m, nil

	case tea.KeyUp:
		m.navigateHistory(-1)

		return m, nil

	case tea.KeyDown:
		m.navigateHistory(1)

		return m, nil

	case tea.KeySpace:
		if len(m.suggestions) > 0 {
			m.acceptSuggestion()

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()

	return m, cmd
}

func (m *model) refreshSuggestions() {
	prefix, start, ok := completionContext(m.input.Value(), m.input.Position())
	if !ok {
		m.suggestions = nil

		return
	}

	m.suggPrefix, m.suggStart = prefix, start
	m.suggIdx = 0
	m.suggestions = newCompleter(m.env.Names()).matches(prefix)
}

func (m *model) acceptSuggestion() {
	if m.suggIdx >= len(m.suggestions) {
		return
	}

	name := m.suggestions[m.suggIdx].Str
	value := m.input.Value()
	cursor := m.input.Position()

	replaced := value[:m.suggStart] + name + value[cursor:]
	m.input.SetValue(replaced)
	m.input.SetCursor(m.suggStart + len(name))
	m.suggestions = nil
}

func (m *model) navigateHistory(delta int) {
	if m.history.Len() == 0 {
		return
	}

	next := m.histIdx + delta
	if next < 0 {
		next = 0
	}

	if next > m.history.Len() {
		next = m.history.Len()
	}

	m.histIdx = next

	if m.histIdx == m.history.Len() {
		m.input.SetValue("")

		return
	}

	line, err := m.history.GetLine(m.histIdx)
	if err == nil {
		m.input.SetValue(line)
		m.input.CursorEnd()
	}
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()

	m.input.SetValue("")
	m.suggestions = nil

	if line == "" {
		m.histIdx = m.history.Len()

		return m, nil
	}

	if err := m.history.Write(line); err != nil {
		log.WarnContext(m.ctx, "could not persist repl history", slog.String("error", err.Error()))
	}

	m.histIdx = m.history.Len()

	echo := promptStyle.Render(prompt) + inputStyle.Render(line)
	out := evaluate(m.env, line)

	return m, tea.Println(echo + "\n" + out)
}

func evaluate(env *value.Environment, line string) string {
	tree, err := document.Parse([]byte(line))
	if err != nil {
		return errorStyle.Render("parse error: " + err.Error())
	}

	result, err := eval.Eval(env, tree)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	serialized, err := document.Serialize(result)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	return resultStyle.Render(serialized)
}

func (m model) View() string {
	if m.quitting {
		return hintStyle.Render("bye.") + "\n"
	}

	view := m.input.View()

	if len(m.suggestions) > 0 {
		view += "\n" + renderSuggestions(m.suggestions, m.suggIdx)
	}

	return view + "\n"
}
