package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagekit/discord-frame/app"
	"github.com/stagekit/discord-frame/discord"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5865F2")).
			Padding(0, 1)

	connectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type frameMsg time.Time

type statusModel struct {
	app       *app.App
	spinner   spinner.Model
	interval  time.Duration
	ticks     uint64
	connected bool
	err       error
}

// runTUI drives the app one Step per frame message. Program.Run executes
// Update on the calling goroutine, so pinning that goroutine here keeps
// every frame — and the native client it touches — on one OS thread, same
// as App.Run.
func runTUI(ctx context.Context, a *app.App, fps int, opts ...tea.ProgramOption) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := statusModel{
		app:      a,
		spinner:  sp,
		interval: time.Second / time.Duration(fps),
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(statusModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frameTick(m.interval))
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case frameMsg:
		if err := m.app.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.ticks++
		m.connected = app.HasNonSend[*discord.Client](m.app)
		return m, frameTick(m.interval)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m statusModel) View() string {
	s := titleStyle.Render("discord-frame") + "\n\n"

	status := absentStyle.Render("● Discord unavailable (running without client)")
	if m.connected {
		status = connectedStyle.Render("● Discord connected")
	}

	s += fmt.Sprintf("%s running  %s\n", m.spinner.View(), status)
	s += statStyle.Render(fmt.Sprintf("frames: %d", m.ticks)) + "\n\n"
	s += helpStyle.Render("q: quit")
	return s
}
