package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is a loading indicator shown while a document is fetched.
type Spinner struct {
	spinner spinner.Model
	message string
	done    bool
	result  string
	err     error
	styles  spinnerStyles
}

type spinnerStyles struct {
	Message lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func defaultSpinnerStyles() spinnerStyles {
	return spinnerStyles{
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return Spinner{
		spinner: s,
		message: message,
		styles:  defaultSpinnerStyles(),
	}
}

// Init starts the animation.
func (s Spinner) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update handles ticks and the final SpinnerDoneMsg.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	switch msg := msg.(type) {
	case SpinnerDoneMsg:
		s.done = true
		s.result = msg.Result
		s.err = msg.Err
		return s, nil
	case spinner.TickMsg:
		if s.done {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s Spinner) View() string {
	if !s.done {
		return s.spinner.View() + " " + s.styles.Message.Render(s.message)
	}
	if s.err != nil {
		return s.styles.Error.Render("✗ " + s.err.Error())
	}
	return s.styles.Success.Render("✓ " + s.result)
}

// SpinnerDoneMsg ends the spinner. A nil Err marks success.
type SpinnerDoneMsg struct {
	Result string
	Err    error
}

// SpinnerDone creates a success message.
func SpinnerDone(result string) SpinnerDoneMsg {
	return SpinnerDoneMsg{Result: result}
}

// SpinnerFailed creates a failure message.
func SpinnerFailed(err error) SpinnerDoneMsg {
	return SpinnerDoneMsg{Err: err}
}

// IsDone returns true if the spinner is done.
func (s Spinner) IsDone() bool {
	return s.done
}

// Err returns the error if the spinner failed.
func (s Spinner) Err() error {
	return s.err
}
