package app

import (
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"spinwheel/internal/config"
	"spinwheel/internal/render"
	"spinwheel/internal/ui"
	"spinwheel/internal/wheel"
)

const zoneWheel = "wheel"

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	wheel      *wheel.Wheel
	flash      *ui.WinnerFlash
	speeds     *SpeedRing
	lastWinner int
}

// AppModel is the root Bubble Tea model for the spin wheel.
type AppModel struct {
	width  int
	height int

	shared *shared
}

// New creates a new AppModel around the given items and wheel configuration.
func New(items []wheel.Item, cfg wheel.Config) (AppModel, error) {
	sh := &shared{
		flash:      ui.NewWinnerFlash(),
		speeds:     NewSpeedRing(config.SpeedHistoryLen),
		lastWinner: wheel.NoItem,
	}

	obs := wheel.Funcs{
		SpinStart: func(wheel.SpinStart) {
			sh.flash.Reset()
		},
		Rest: func(e wheel.Rest) {
			sh.lastWinner = e.CurrentIndex
			items := sh.wheel.Items()
			if e.CurrentIndex >= 0 && e.CurrentIndex < len(items) {
				sh.flash.Trigger(items[e.CurrentIndex].Label)
			}
		},
	}

	w, err := wheel.New(cfg, obs)
	if err != nil {
		return AppModel{}, err
	}
	if err := w.SetItems(items); err != nil {
		return AppModel{}, err
	}
	sh.wheel = w

	return AppModel{shared: sh}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateBounds()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.shared.wheel.Advance(time.Time(msg))
		m.shared.flash.Tick()
		m.shared.speeds.Push(m.shared.wheel.Speed())
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.shared.wheel

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case " ":
		speed := config.DemoSpinMin + rand.Float64()*(config.DemoSpinMax-config.DemoSpinMin)
		_ = w.Spin(speed)

	case "t", "T":
		if n := len(w.Items()); n > 0 {
			_ = w.SpinToItem(rand.Intn(n), config.DemoSpinDuration, false,
				config.DemoRevolutions, 1, nil)
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(w.Items()) {
			_ = w.SpinToItem(idx, config.DemoSpinDuration, true,
				config.DemoRevolutions, 1, nil)
		}

	case "s", "S":
		w.Stop()

	case "+", "=":
		cfg := w.Config()
		cfg.RotationResistance -= 5
		_ = w.SetConfig(cfg)

	case "-", "_":
		cfg := w.Config()
		if cfg.RotationResistance+5 <= 0 {
			cfg.RotationResistance += 5
		}
		_ = w.SetConfig(cfg)
	}

	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	w := m.shared.wheel
	z := zone.Get(zoneWheel)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && z.InBounds(msg) {
			x, y := wheelCoords(z.Pos(msg))
			if w.HitTest(x, y) {
				w.DragStart(x, y)
			}
		}

	case tea.MouseActionMotion:
		if w.Dragging() {
			x, y := wheelCoords(z.Pos(msg))
			_ = w.DragMove(x, y)
		}

	case tea.MouseActionRelease:
		if w.Dragging() {
			_ = w.DragEnd()
		}
	}

	return m, nil
}

// wheelCoords maps a zone-relative mouse position into the wheel grid,
// skipping the panel border cell.
func wheelCoords(px, py int) (float64, float64) {
	return float64(px - 1), float64(py - 1)
}

// updateBounds keeps the core's hit-test circle in sync with the grid the
// renderer draws into.
func (m AppModel) updateBounds() {
	innerW, innerH, _, _ := m.layout()
	centerX := innerW / 2
	centerY := innerH / 2
	radius := math.Min(float64(centerX-1), float64(centerY-1)/config.AspectRatio)
	if radius < config.MinRadius {
		radius = config.MinRadius
	}
	m.shared.wheel.SetBounds(float64(centerX), float64(centerY), radius, config.AspectRatio)
}

// layout computes the wheel grid size and panel widths for the current
// terminal dimensions.
func (m AppModel) layout() (innerW, innerH, wheelW, bodyH int) {
	menuH := 1
	statusH := 1
	bodyH = m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	wheelW = m.width * 3 / 4
	if wheelW < 30 {
		wheelW = 30
	}
	listW := m.width - wheelW
	if listW < 15 {
		wheelW = m.width - 15
	}

	innerW = wheelW - 4
	innerH = bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	return innerW, innerH, wheelW, bodyH
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	w := m.shared.wheel
	innerW, innerH, wheelW, bodyH := m.layout()
	listW := m.width - wheelW
	if listW < 15 {
		listW = 15
	}

	menuBar := ui.RenderMenuBar(m.width, w.State())

	wheelContent := render.Wheel(innerW, innerH, w)
	legend := render.Legend(innerW, w)
	if m.shared.flash.Active() {
		legend = m.shared.flash.View()
	}
	wheelPanel := zone.Mark(zoneWheel, ui.RenderWheelPanel(wheelW, bodyH, wheelContent, legend))

	itemList := ui.RenderItemList(w.Items(), listW, bodyH, w.CurrentIndex(), m.shared.lastWinner)

	winner := ""
	if m.shared.lastWinner != wheel.NoItem && m.shared.lastWinner < len(w.Items()) {
		winner = w.Items()[m.shared.lastWinner].Label
	}
	spark := m.shared.speeds.Sparkline(16, w.Config().RotationSpeedMax)
	statusBar := ui.RenderStatusBar(m.width, w.State(), w.Rotation(), w.Speed(),
		w.Config().RotationResistance, winner, spark)

	return zone.Scan(ui.ComposeLayout(menuBar, wheelPanel, itemList, statusBar))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
