package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bitclone-dev/go-respawn/internal/launcher"
	"github.com/bitclone-dev/go-respawn/internal/metrics"
)

// historyLimit caps how many outcomes the dashboard keeps.
const historyLimit = 50

// =============================================================================
// Messages
// =============================================================================

// outcomeMsg carries the result of one launch attempt.
type outcomeMsg struct {
	outcome launcher.Outcome
	took    time.Duration
}

// =============================================================================
// Model
// =============================================================================

// Spawner launches a new instance and reports the outcome.
type Spawner interface {
	LaunchNewInstance() launcher.Outcome
}

// historyEntry is one launch outcome as displayed.
type historyEntry struct {
	ok      bool
	message string
	at      time.Time
}

// Config holds TUI configuration.
type Config struct {
	Version      string
	StrategyName string
	ExePath      string
	Spawner      Spawner

	// Collector is optional; when set, launch outcomes are recorded.
	Collector *metrics.Collector

	// MetricsAddr is shown in the header when non-empty.
	MetricsAddr string
}

// Model represents the TUI state.
type Model struct {
	version      string
	strategyName string
	exePath      string
	metricsAddr  string

	spawner   Spawner
	collector *metrics.Collector

	history   []historyEntry
	successes int
	failures  int
	spawning  bool

	width  int
	height int

	quitting bool
}

// New creates a new TUI model.
func New(cfg Config) Model {
	return Model{
		version:      cfg.Version,
		strategyName: cfg.StrategyName,
		exePath:      cfg.ExePath,
		metricsAddr:  cfg.MetricsAddr,
		spawner:      cfg.Spawner,
		collector:    cfg.Collector,
		width:        80,
		height:       24,
	}
}

// Run starts the TUI and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// =============================================================================
// Bubble Tea Interface
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "s", "enter":
			if m.spawning {
				return m, nil
			}
			m.spawning = true
			if m.collector != nil {
				m.collector.RecordAttempt()
			}
			return m, spawnCmd(m.spawner)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case outcomeMsg:
		m.spawning = false
		m = m.recordOutcome(msg)
		return m, nil
	}

	return m, nil
}

// spawnCmd performs one launch attempt off the update loop.
func spawnCmd(spawner Spawner) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		out := spawner.LaunchNewInstance()
		return outcomeMsg{outcome: out, took: time.Since(start)}
	}
}

// recordOutcome folds a launch outcome into the model and the collector.
func (m Model) recordOutcome(msg outcomeMsg) Model {
	if msg.outcome.OK() {
		m.successes++
		if m.collector != nil {
			m.collector.RecordSuccess(msg.took)
		}
	} else {
		m.failures++
		if m.collector != nil {
			m.collector.RecordFailure(msg.outcome.Err.Kind.String(), msg.took)
		}
	}

	m.history = append(m.history, historyEntry{
		ok:      msg.outcome.OK(),
		message: msg.outcome.Message,
		at:      time.Now(),
	})
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	return m
}
