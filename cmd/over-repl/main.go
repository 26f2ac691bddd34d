// Command over-repl is a minimal interactive shell for exploring OVER
// values: each line typed is evaluated as a binding against a persistent
// root object, so later lines can reference earlier ones, and the result
// of the last binding is echoed back in canonical OVER text.
//
// This is deliberately a small slice of what a full editor-grade REPL
// (history search, live completion, multi-line editing) could be — enough
// to poke at a value tree interactively, not a production tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/m-cat/over/over"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type model struct {
	input   textinput.Model
	lines   []string // accumulated source, one binding per line
	history []string
	quit    bool
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "name: expr"
	ti.Prompt = promptStyle.Render("over> ")
	ti.Focus()

	return model{input: ti}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true

			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")

			if line == "" {
				return m, nil
			}

			if line == "quit" || line == "exit" {
				m.quit = true

				return m, tea.Quit
			}

			m.history = append(m.history, evalLine(m.lines, line))
			m.lines = append(m.lines, line)

			return m, nil

		case tea.KeyTab:
			if completed, ok := m.completeField(); ok {
				m.input.SetValue(completed)
				m.input.CursorEnd()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	for _, h := range m.history {
		b.WriteString(h)
		b.WriteByte('\n')
	}

	if !m.quit {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}

	return b.String()
}

// completeField fuzzy-matches the identifier prefix currently typed against
// the field names bound so far, replacing it with the best match.
func (m model) completeField() (string, bool) {
	typed := m.input.Value()
	if typed == "" {
		return "", false
	}

	names := make([]string, 0, len(m.lines))
	for _, line := range m.lines {
		names = append(names, fieldName(line))
	}

	matches := fuzzy.Find(typed, names)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// evalLine parses prior together with the new line as one top-level
// binding* body (§6.2's brace-less file grammar) and reports either the
// new binding's value or the parse error.
func evalLine(prior []string, line string) string {
	source := strings.Join(append(append([]string(nil), prior...), line), "\n")

	obj, err := over.ParseString(source, "<repl>")
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	name := fieldName(line)

	v, ok := obj.Get(name)
	if !ok {
		return errorStyle.Render(fmt.Sprintf("no such binding: %s", name))
	}

	return resultStyle.Render(name + " = " + over.Write(v))
}

func fieldName(line string) string {
	if i := strings.IndexByte(line, ':'); i > 0 {
		return strings.TrimSpace(line[:i])
	}

	return line
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
