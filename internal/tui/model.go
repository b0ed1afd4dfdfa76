package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/srctype/internal/logger"
	"github.com/verte-zerg/srctype/internal/model"
	"github.com/verte-zerg/srctype/internal/session"
	"github.com/verte-zerg/srctype/internal/stats"
	"github.com/verte-zerg/srctype/internal/store"
	"github.com/verte-zerg/srctype/internal/typing"
)

const tickInterval = time.Second

// tickMsg carries the generation of the run that scheduled it.
type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session session.Session
	text    string
	file    string
	store   *store.Store
	theme   Theme
	keys    keyMap
	help    help.Model

	width  int
	height int

	// gen increments on every start so ticks of earlier runs are dropped.
	gen      int
	recorded bool
	report   stats.Report
}

// NewModel constructs a typing TUI model over text read from file.
func NewModel(sess session.Session, text, file string, st *store.Store, theme Theme) *Model {
	h := help.New()
	h.ShortSeparator = ", "
	h.Styles.ShortKey = theme.helpKey
	h.Styles.ShortDesc = theme.helpDesc
	h.Styles.ShortSeparator = theme.helpSep
	m := &Model{
		session: sess,
		text:    text,
		file:    file,
		store:   st,
		theme:   theme,
		keys:    keys,
		help:    h,
	}
	m.loadReport()
	return m
}

// Session returns the current session.
func (m *Model) Session() session.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		switch m.session.Status() {
		case typing.StatusBeforeStart:
			return m, m.handleBeforeStartKey(msg)
		case typing.StatusRunning:
			return m, m.handleRunningKey(msg)
		default:
			return m, m.handleFinishKey(msg)
		}
	default:
		return m, nil
	}
}

func (m *Model) handleBeforeStartKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.session = m.session.NextTime()
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.session = m.session.PrevTime()
		return nil
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	runes := keyRunes(msg)
	if len(runes) == 0 {
		return nil
	}
	m.session = m.session.Start()
	m.gen++
	m.recorded = false
	logger.Debug("run started", "file", m.file, "time", m.session.SelectedTime())
	m.input(runes)
	if m.session.Status() != typing.StatusRunning {
		return nil
	}
	return tickCmd(m.gen)
}

func (m *Model) handleRunningKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Finish):
		m.session = m.session.Finish()
		m.recordRun()
		return nil
	case key.Matches(msg, m.keys.Enter):
		m.input([]rune{'\n'})
		return nil
	}
	m.input(keyRunes(msg))
	return nil
}

func (m *Model) handleFinishKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Restart):
		next, err := m.session.Restart(m.text)
		if err != nil {
			logger.Error("failed to restart run", "error", err)
			return nil
		}
		m.session = next
		return nil
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.gen || m.session.Status() != typing.StatusRunning {
		return nil
	}
	m.session = m.session.Tick()
	if m.session.Status() != typing.StatusRunning {
		m.recordRun()
		return nil
	}
	return tickCmd(m.gen)
}

func (m *Model) input(runes []rune) {
	for _, r := range runes {
		m.session = m.session.Input(r)
		if m.session.Status() == typing.StatusFinish {
			m.recordRun()
			return
		}
	}
}

func keyRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		return msg.Runes
	default:
		return nil
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// recordRun stores the finished run once and refreshes the footer figures.
func (m *Model) recordRun() {
	if m.recorded || m.session.Status() != typing.StatusFinish {
		return
	}
	m.recorded = true
	snap := m.session.Typing().Snapshot()
	startedAt, _ := snap.StartTime()
	endedAt, _ := snap.EndTime()
	run := model.RunStats{
		StartedAt: startedAt,
		EndedAt:   endedAt,
		File:      m.file,
		TimeLimit: m.session.SelectedTime(),
		Typed:     snap.Typed(),
		Typo:      snap.Typo(),
		WPM:       snap.WPM(),
		Accuracy:  snap.Accuracy(),
	}
	logger.Info("run finished",
		"file", run.File,
		"time", run.TimeLimit,
		"wpm", run.WPM,
		"acc", run.Accuracy,
		"typed", run.Typed,
		"typo", run.Typo,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.InsertRun(context.Background(), run); err != nil {
		logger.Error("failed to save run", "error", err)
		return
	}
	m.loadReport()
}

func (m *Model) loadReport() {
	if m.store == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), m.store)
	if err != nil {
		logger.Error("failed to load run history", "error", err)
		return
	}
	m.report = report
}
