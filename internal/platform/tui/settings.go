package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Settings rows.
const (
	rowSpeed = iota
	rowTheme
	rowCount
)

// SettingsResult tells the caller what a key did to the settings overlay.
type SettingsResult int

const (
	SettingsOpen SettingsResult = iota
	SettingsApplied
	SettingsCancelled
)

// SettingsModel is the overlay for picking speed and theme. It edits a copy
// of the engine settings; nothing changes until the caller applies Config().
type SettingsModel struct {
	cursor int
	cfg    snake.Config
	tiers  []snake.SpeedTier
}

// NewSettingsModel starts the overlay from the current settings.
func NewSettingsModel(cfg snake.Config) SettingsModel {
	return SettingsModel{cfg: cfg, tiers: snake.SpeedTiers()}
}

// Config returns the settings as currently edited.
func (m SettingsModel) Config() snake.Config {
	return m.cfg
}

// Update handles a key.
func (m SettingsModel) Update(msg tea.KeyMsg, keys KeyMap) (SettingsModel, SettingsResult) {
	switch {
	case key.Matches(msg, keys.Confirm):
		return m, SettingsApplied
	case key.Matches(msg, keys.Pause), key.Matches(msg, keys.Settings):
		return m, SettingsCancelled
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Left):
		m.cycle(-1)
	case key.Matches(msg, keys.Right):
		m.cycle(1)
	}
	return m, SettingsOpen
}

// cycle steps the value under the cursor, wrapping around.
func (m *SettingsModel) cycle(step int) {
	switch m.cursor {
	case rowSpeed:
		n := len(m.tiers)
		m.cfg.Speed = m.tiers[(int(m.cfg.Speed)+step+n)%n]
	case rowTheme:
		n := theme.Count()
		if n == 0 {
			return
		}
		m.cfg.Theme = (m.cfg.Theme + step + n) % n
	}
}

// Draw paints the overlay centred on s.
func (m SettingsModel) Draw(s *core.Screen) {
	const boxW, boxH = 26, 7
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2
	box := core.NewRect(core.Clamp(x, 0, s.Width()), core.Clamp(y, 0, s.Height()), boxW, boxH)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorHighlight)
	s.DrawText(box.X+2, box.Y+1, "SETTINGS", core.ColorHighlight)

	rows := []struct {
		label string
		value string
	}{
		{"Speed", m.cfg.Speed.String()},
		{"Theme", theme.ByIndex(m.cfg.Theme).Title},
	}
	for i, row := range rows {
		cursor, color := "  ", core.ColorText
		if i == m.cursor {
			cursor, color = "> ", core.ColorHighlight
		}
		s.DrawText(box.X+2, box.Y+2+i, fmt.Sprintf("%s%-6s< %s >", cursor, row.label, row.value), color)
	}
	s.DrawText(box.X+2, box.Y+5, "enter apply  esc back", core.ColorMuted)
}
