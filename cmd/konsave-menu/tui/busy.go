package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BusyDoneMsg tells a BusyModel that the work has finished.
type BusyDoneMsg struct{}

// BusyModel shows a spinner and a label until BusyDoneMsg arrives. Keys are
// ignored: running calls cannot be cancelled.
type BusyModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

// NewBusyModel creates a spinner titled label.
func NewBusyModel(label string) BusyModel {
	return BusyModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(colorMauve)),
		),
		label: label,
	}
}

func (m BusyModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m BusyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BusyDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BusyModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + SubtleStyle.Render(m.label) + "\n"
}

// RunBusy runs fn while showing a spinner. fn always runs to completion
// exactly once, even when the spinner cannot take the terminal; the error
// only reports the spinner.
func RunBusy(label string, fn func()) error {
	p := tea.NewProgram(NewBusyModel(label))

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
		p.Send(BusyDoneMsg{})
	}()

	_, err := p.Run()
	<-done
	return err
}
