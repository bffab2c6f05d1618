package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/ogmi/internal/tui/components"
)

type taskDoneMsg struct {
	err error
}

// taskModel shows a spinner on stderr until the task finishes or the user
// interrupts it.
type taskModel struct {
	spinner components.Spinner
	keys    KeyMap
	run     func() error
	cancel  context.CancelFunc
	done    string
	err     error
	exited  bool
}

func newTaskModel(message, doneMessage string, run func() error, cancel context.CancelFunc) taskModel {
	return taskModel{
		spinner: components.NewSpinner(message),
		keys:    DefaultKeyMap(),
		run:     run,
		cancel:  cancel,
		done:    doneMessage,
	}
}

func (m taskModel) Init() tea.Cmd {
	run := m.run
	return tea.Batch(m.spinner.Init(), func() tea.Msg {
		return taskDoneMsg{err: run()}
	})
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.exited = true
		m.err = msg.err
		if msg.err != nil {
			m.spinner, _ = m.spinner.Update(components.SpinnerFailed(msg.err))
		} else {
			m.spinner, _ = m.spinner.Update(components.SpinnerDone(m.done))
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m taskModel) View() string {
	return m.spinner.View() + "\n"
}

// RunWithSpinner runs fn while an animated spinner is drawn on stderr. In
// non-interactive mode fn simply runs. Ctrl+C cancels the context passed to fn.
func RunWithSpinner[T any](ctx context.Context, message, doneMessage string, fn func(ctx context.Context) (T, error)) (T, error) {
	if !IsInteractive() {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result T
	run := func() error {
		var err error
		result, err = fn(ctx)
		return err
	}

	p := tea.NewProgram(newTaskModel(message, doneMessage, run, cancel), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	var zero T
	if err != nil {
		return zero, err
	}

	m := final.(taskModel)
	if !m.exited {
		// fn may still be writing result
		return zero, m.err
	}
	if m.err != nil {
		return zero, m.err
	}
	return result, nil
}
