package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bytify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err    error
	input  textinput.Model
	result []byte
	done   bool
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `1u8, -2i16, 0xFFu32: BE, 'a', "hello"`
	ti.Focus()
	ti.Width = 72
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.result, m.err = bytify.Compile(m.input.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("bytify"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	case m.result != nil:
		b.WriteString(styledDump(m.result))
		b.WriteString(sizeStyle.Render(fmt.Sprintf("%d byte(s)", len(m.result))))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("\nenter: compile • esc: quit"))
	b.WriteByte('\n')
	return b.String()
}

func styledDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := min(off+16, len(data))
		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", off)))
		for _, v := range data[off:end] {
			b.WriteByte(' ')
			b.WriteString(byteStyle.Render(fmt.Sprintf("%02x", v)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
