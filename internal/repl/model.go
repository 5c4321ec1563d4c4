// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the koy read-eval-print loop
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package repl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	koylog "github.com/msto63/koy/foundation/core/log"
	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/interp"
	"github.com/msto63/koy/pkg/core/version"
)

// Config holds REPL configuration
type Config struct {
	Prompt       string
	Format       koy.Format
	HistoryFile  string // empty disables persistence
	HistoryLimit int
	MaxDepth     int
	Logger       *koylog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:       "koy > ",
		Format:       koy.FormatText,
		HistoryFile:  DefaultHistoryPath(),
		HistoryLimit: 200,
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	busy     bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript
	entries []entry

	// Input history
	history      []string
	historyIndex int    // -1 when not navigating
	draft        string // input saved while navigating

	cfg    Config
	engine *koy.Engine
	logger *koylog.Logger
}

// New creates a new REPL model
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
	if cfg.Logger == nil {
		cfg.Logger = koylog.Nop()
	}
	logger := cfg.Logger.WithField("component", "repl")

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = `{name: "koy"}  (file <name> loads a file, exit quits)`
	ti.CharLimit = 8000
	ti.Focus()

	vp := viewport.New(80, 20)

	return Model{
		input:        ti,
		viewport:     vp,
		entries:      []entry{},
		history:      LoadHistory(cfg.HistoryFile),
		historyIndex: -1,
		cfg:          cfg,
		engine:       koy.NewEngine(koy.Options{Logger: cfg.Logger, MaxDepth: cfg.MaxDepth}),
		logger:       logger,
	}
}

// Run starts the REPL on the terminal and blocks until it exits
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Logo + blank line
		footerHeight := 3 // Input + help
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.input.Width = max(msg.Width-len(m.cfg.Prompt)-1, 10)
		m.updateViewportContent()

	case evalResultMsg:
		m.busy = false
		if msg.err != nil {
			m.entries = append(m.entries, errorEntry(msg.err, msg.duration))
		} else {
			m.entries = append(m.entries, entry{kind: entryResult, text: msg.output, duration: msg.duration})
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		return m.submit(m.input.Value())

	case tea.KeyUp:
		if len(m.history) > 0 {
			if m.historyIndex == -1 {
				m.draft = m.input.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.history[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.input.SetValue(m.history[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.draft)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one line of input
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	command := ParseCommand(line)
	m.input.Reset()
	m.historyIndex = -1
	m.draft = ""

	switch command.Kind {
	case CommandEmpty:
		return m, nil
	case CommandExit:
		m.quitting = true
		return m, tea.Quit
	}

	trimmed := strings.TrimSpace(line)
	if len(m.history) == 0 || m.history[len(m.history)-1] != trimmed {
		m.history = append(m.history, trimmed)
		if m.cfg.HistoryLimit > 0 && len(m.history) > m.cfg.HistoryLimit {
			m.history = m.history[len(m.history)-m.cfg.HistoryLimit:]
		}
		if err := SaveHistory(m.cfg.HistoryFile, m.history, m.cfg.HistoryLimit); err != nil {
			m.logger.WarnWithErr("Failed to save history", err, koylog.String("path", m.cfg.HistoryFile))
		}
	}

	m.entries = append(m.entries, entry{kind: entryInput, text: trimmed})
	if command.Kind == CommandFile {
		m.entries = append(m.entries, entry{kind: entryInfo, text: "loading " + koy.ResolvePath(command.Arg)})
	}
	m.busy = true
	m.updateViewportContent()
	m.viewport.GotoBottom()

	return m, m.evaluate(command)
}

// evaluate runs the pipeline off the update loop
func (m Model) evaluate(command Command) tea.Cmd {
	engine := m.engine
	format := m.cfg.Format

	return func() tea.Msg {
		start := time.Now()

		var value interp.Value
		var err error
		switch command.Kind {
		case CommandFile:
			value, err = engine.RunFile(command.Arg)
		default:
			v, diagErr := engine.Run(koy.StdinName, command.Arg)
			if diagErr != nil {
				err = diagErr
			}
			value = v
		}
		if err != nil {
			return evalResultMsg{err: err, duration: time.Since(start)}
		}

		out, encErr := koy.Encode(value, format)
		if encErr != nil {
			return evalResultMsg{err: encErr, duration: time.Since(start)}
		}
		return evalResultMsg{output: strings.TrimRight(string(out), "\n"), duration: time.Since(start)}
	}
}

func errorEntry(err error, duration time.Duration) entry {
	var diagErr *diag.Error
	if errors.As(err, &diagErr) {
		return entry{kind: entryError, text: diagErr.Error(), snippet: diagErr.Snippet(), duration: duration}
	}
	return entry{kind: entryError, text: err.Error(), duration: duration}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	return LogoStyle.Render(Logo) + " " + SubHeaderStyle.Render(fmt.Sprintf("v%s  output: %s", version.Tool, m.cfg.Format))
}

func (m Model) renderHelpBar() string {
	items := []struct{ key, desc string }{
		{"enter", "evaluate"},
		{"↑/↓", "history"},
		{"pgup/pgdn", "scroll"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = HelpKeyStyle.Render(item.key) + " " + HelpDescStyle.Render(item.desc)
	}
	return strings.Join(parts, "  ")
}

// Transcript renders the entries without styling
func (m Model) Transcript() string {
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(m.renderEntry(e, false))
	}
	return b.String()
}

// updateViewportContent updates the viewport with the transcript
func (m *Model) updateViewportContent() {
	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(m.renderEntry(e, true))
	}
	m.viewport.SetContent(content.String())
}

func (m Model) renderEntry(e entry, styled bool) string {
	render := func(style interface{ Render(...string) string }, s string) string {
		if !styled {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder
	switch e.kind {
	case entryInput:
		b.WriteString(render(PromptStyle, m.cfg.Prompt))
		b.WriteString(render(EchoStyle, e.text))
	case entryResult:
		b.WriteString(render(ResultStyle, e.text))
	case entryError:
		b.WriteString(render(ErrorStyle, e.text))
		if e.snippet != "" {
			b.WriteString("\n")
			b.WriteString(render(SnippetStyle, e.snippet))
		}
	case entryInfo:
		b.WriteString(render(InfoStyle, e.text))
	}
	if styled && e.duration > 0 {
		b.WriteString("  ")
		b.WriteString(DurationStyle.Render(fmt.Sprintf("(%s)", e.duration.Round(time.Microsecond))))
	}
	b.WriteString("\n")
	return b.String()
}
