package ui

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/nt-publish/internal/logger"
)

/*
 * The spinner uses Bubble Tea under the hood.
 * All BubbleTea-related code is present in this file to make easy to switch to another library someday.
 */

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// Spinner animates the terminal while a publication is running.
type Spinner struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

func NewSpinner(output io.Writer) *Spinner {
	return &Spinner{
		output: output,
	}
}

// Start runs the animation in the background. Calling Start twice is a no-op.
func (s *Spinner) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return
	}

	program := tea.NewProgram(newSpinnerModel(label), tea.WithOutput(s.output), tea.WithInput(nil))
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := program.Run(); err != nil {
			logger.CurrentLogger().Debugf("Spinner stopped: %v", err)
		}
	}()
	s.program = program
	s.done = done
}

// Stop ends the animation and waits for the terminal to be restored.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program == nil {
		return
	}
	// The model quits by itself to erase its last frame
	s.program.Send(stopMsg{})
	<-s.done
	s.program = nil
	s.done = nil
}

// stopMsg asks the model to clear the line and quit.
type stopMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	label    string
	quitting bool
}

func newSpinnerModel(label string) spinnerModel {
	return spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		label:   label,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(stopMsg); ok {
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n"
}
