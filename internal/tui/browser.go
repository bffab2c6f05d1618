package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Browser is a full-screen scrollable view of a rendered graph.
type Browser struct {
	viewport viewport.Model
	title    string
	content  string
	keys     KeyMap
	ready    bool
}

// browserChrome is the number of lines used by the header and footer.
const browserChrome = 2

// NewBrowser creates a browser for content. The viewport is sized on the
// first WindowSizeMsg.
func NewBrowser(title, content string) Browser {
	return Browser{
		title:   title,
		content: content,
		keys:    DefaultKeyMap(),
	}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - browserChrome
		if height < 1 {
			height = 1
		}
		if !b.ready {
			b.viewport = viewport.New(msg.Width, height)
			b.viewport.SetContent(b.content)
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = height
		}
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Top):
			b.viewport.GotoTop()
			return b, nil
		case key.Matches(msg, b.keys.Bottom):
			b.viewport.GotoBottom()
			return b, nil
		}
	}

	if !b.ready {
		return b, nil
	}
	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

func (b Browser) View() string {
	if !b.ready {
		return "Loading..."
	}
	header := TitleStyle.Render(b.title)
	footer := HelpStyle.Render(fmt.Sprintf("%s • %3.f%%", b.keys.HelpText(), b.viewport.ScrollPercent()*100))
	return header + "\n" + b.viewport.View() + "\n" + footer
}

// YOffset returns the current scroll position.
func (b Browser) YOffset() int {
	return b.viewport.YOffset
}

// Browse shows content in the alternate screen until the user quits.
func Browse(title, content string) error {
	p := tea.NewProgram(NewBrowser(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
