package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/core"
	"github.com/vovakirdan/tui-aim/internal/game"
)

// Model is the Bubble Tea model for one player's aim trainer session.
// The tick loop advances the scheduler by wall-clock time; keys and mouse
// clicks are forwarded to the Controller.
type Model struct {
	config   core.RuntimeConfig
	sched    *clock.Scheduler
	ctrl     *game.Controller
	view     *surface
	screen   *core.Screen
	form     *settingsForm
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	timeBar  progress.Model
	sizeBar  progress.Model
	lastTick time.Time
	quitting bool
}

// NewModel creates a model showing the settings panel, prefilled from cfg.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if cfg.Display.CellWidth > 0 {
		rt.CellW = cfg.Display.CellWidth
	}
	if cfg.Display.CellHeight > 0 {
		rt.CellH = cfg.Display.CellHeight
	}

	sched := clock.NewScheduler()
	view := newSurface(sched, rt)
	ctrl := game.NewController(sched, view,
		game.WithLogger(logger),
		game.WithSeed(rt.Seed),
		game.WithCountdown(cfg.Countdown.From, cfg.Countdown.Step()),
	)

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		config:  rt,
		sched:   sched,
		ctrl:    ctrl,
		view:    view,
		screen:  core.NewScreen(view.areaCells()),
		form:    newSettingsForm(cfg.Settings, cfg.Panel),
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		timeBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(20)),
		sizeBar: progress.New(progress.WithSolidFill("63"), progress.WithoutPercentage(), progress.WithWidth(16)),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey dispatches keyboard input to the active panel.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view.panel {
	case PanelSettings:
		keys := m.keys.Settings
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.form.move(-1)
		case key.Matches(msg, keys.Down):
			m.form.move(1)
		case key.Matches(msg, keys.Left):
			m.form.adjust(-1)
		case key.Matches(msg, keys.Right):
			m.form.adjust(1)
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Start):
			if err := m.ctrl.Start(m.form.settings); err != nil {
				m.form.err = err.Error()
			}
		}

	case PanelGame:
		keys := m.keys.Game
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.End):
			m.ctrl.EndEarly()
		case key.Matches(msg, keys.Screenshot):
			m.saveScreenshot()
		}

	case PanelResults:
		keys := m.keys.Results
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Restart):
			if err := m.ctrl.Restart(); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
		case key.Matches(msg, keys.Settings):
			m.form.settings = m.ctrl.Settings()
			m.ctrl.BackToSettings()
		}
	}

	return m, nil
}

// handleMouse turns a left click on the play area into a click at the px
// under the center of the cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view.panel != PanelGame {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.view.cellToPoint(msg.X, msg.Y); ok {
		m.ctrl.AreaClicked(p)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.view.resize(msg.Width, msg.Height)
	m.screen.Resize(m.view.areaCells())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		m.sched.Advance(now.Sub(m.lastTick))
	}
	m.lastTick = now
	m.view.animate()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the play area to ~/.aim/screenshots as plain text.
func (m Model) saveScreenshot() {
	m.renderArea()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".aim", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("aim_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// renderArea redraws the play area buffer.
func (m Model) renderArea() {
	m.screen.Clear()
	m.view.drawArea(m.screen, 0)
}

// View renders the current panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view.panel {
	case PanelGame:
		return m.gameView()
	case PanelResults:
		return m.place(resultsView(m.view.results), m.keys.Results)
	default:
		return m.place(m.form.view(m.sizeBar), m.keys.Settings)
	}
}

// place centers body on the screen with the help bar at the bottom.
func (m Model) place(body string, keys help.KeyMap) string {
	footer := helpStyle.Render(m.help.View(keys))
	height := max(m.config.ScreenH-lipgloss.Height(footer), 0)
	return lipgloss.Place(m.config.ScreenW, height, lipgloss.Center, lipgloss.Center, body) +
		"\n" + footer
}

// gameView renders the HUD, the play area and the help bar.
func (m Model) gameView() string {
	m.renderArea()

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.Game.ShortHelp())))
	return b.String()
}

// hud renders the single status row above the play area.
func (m Model) hud() string {
	settings := m.ctrl.Settings()
	left := 0.0
	if settings.Duration > 0 {
		left = float64(m.view.timeLeft) / float64(settings.Duration)
	}

	parts := []string{
		scoreStyle.Render(fmt.Sprintf("Score %d", m.view.score)),
		fmt.Sprintf("%02d:%02d", m.view.timeLeft/60, m.view.timeLeft%60),
		m.timeBar.ViewAs(left),
		noteStyle.Render(fmt.Sprintf("%s • %dpx", settings.Difficulty.Title(), settings.BubbleSize)),
	}
	return lipgloss.NewStyle().MaxWidth(max(m.config.ScreenW, 1)).Render(strings.Join(parts, "  "))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
