package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

type (
	keyMap struct {
		submit key.Binding
		quit   key.Binding
	}

	inputModel struct {
		dump      io.Writer
		help      help.Model
		keys      keyMap
		textInput textinput.Model
		answer    string
		submitted bool
		aborted   bool
	}

	// TextInputPrompter asks through a full screen text input on a terminal.
	TextInputPrompter struct {
		in   io.Reader
		out  io.Writer
		dump io.Writer
	}
)

var keys = keyMap{
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "submit"),
	),
	quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// NewTextInputPrompter returns a prompter reading key presses from in and drawing on out.
// Every message is dumped to dump when it is not nil.
func NewTextInputPrompter(in io.Reader, out io.Writer, dump io.Writer) *TextInputPrompter {
	return &TextInputPrompter{in: in, out: out, dump: dump}
}

func newInputModel(question string, dump io.Writer) inputModel {
	ti := textinput.New()
	ti.Prompt = question
	ti.Placeholder = "/path/to/dataset"
	ti.CharLimit = 4096
	ti.Width = 60
	_ = ti.Focus()

	return inputModel{
		dump:      dump,
		help:      help.New(),
		keys:      keys,
		textInput: ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.submit):
			m.answer = m.textInput.Value()
			m.submitted = true

			return m, tea.Quit
		case key.Matches(msg, m.keys.quit):
			m.aborted = true

			return m, tea.Quit
		default:
		}
	}

	var cmd tea.Cmd

	m.textInput, cmd = m.textInput.Update(msg)

	return m, cmd
}

func (m inputModel) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Non-nil returned error wraps [ErrPromptAborted] when the operator quits without submitting.
func (p *TextInputPrompter) Prompt(question string) (string, error) {
	program := tea.NewProgram(newInputModel(question, p.dump), tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run text input: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || !m.submitted {
		return "", fmt.Errorf("%w: no folder was entered", ErrPromptAborted)
	}

	return m.answer, nil
}
