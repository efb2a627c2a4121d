package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/status"
)

type powerAction struct {
	label   string
	command string
}

// powerPage shows the battery and the configured power actions. An action
// runs on the second press so a stray touch cannot power the device off.
type powerPage struct {
	env      *shellEnv
	actions  []powerAction
	selected int
	armed    int
	width    int
	height   int
}

func newPowerPage(env *shellEnv, cmds config.Power) *powerPage {
	p := &powerPage{env: env, armed: -1}
	for _, a := range []powerAction{
		{"Shut down", cmds.Shutdown},
		{"Restart", cmds.Reboot},
		{"Sleep", cmds.Sleep},
	} {
		if strings.TrimSpace(a.command) != "" {
			p.actions = append(p.actions, a)
		}
	}
	return p
}

func (p *powerPage) ID() nav.PageID  { return nav.PagePower }
func (p *powerPage) Enter() tea.Cmd  { return nil }
func (p *powerPage) Capturing() bool { return false }

func (p *powerPage) Exit() {
	p.armed = -1
}

func (p *powerPage) Resize(width, height int) {
	p.width, p.height = width, height
}

func (p *powerPage) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.actions) == 0 {
		return nil
	}
	keys := p.env.keys
	switch {
	case key.Matches(keyMsg, keys.Up), key.Matches(keyMsg, keys.Left):
		if p.selected > 0 {
			p.selected--
			p.armed = -1
		}
	case key.Matches(keyMsg, keys.Down), key.Matches(keyMsg, keys.Right):
		if p.selected < len(p.actions)-1 {
			p.selected++
			p.armed = -1
		}
	case key.Matches(keyMsg, keys.Select):
		return p.press(p.selected)
	}
	return nil
}

// press arms an action, or runs it when it is already armed.
func (p *powerPage) press(i int) tea.Cmd {
	if i < 0 || i >= len(p.actions) {
		return nil
	}
	p.selected = i
	if p.armed != i {
		p.armed = i
		return nil
	}
	p.armed = -1
	a := p.actions[i]
	return requestLaunch(a.label, a.command)
}

func powerZone(i int) string {
	return fmt.Sprintf("power:%d", i)
}

func (p *powerPage) Zones() []string {
	ids := make([]string, len(p.actions))
	for i := range p.actions {
		ids[i] = powerZone(i)
	}
	return ids
}

func (p *powerPage) Click(zoneID string) tea.Cmd {
	var i int
	if _, err := fmt.Sscanf(zoneID, "power:%d", &i); err != nil {
		return nil
	}
	return p.press(i)
}

func (p *powerPage) View() string {
	env := p.env
	s := env.styles
	bg := NewBgStyle(env.theme.Background)

	var snap status.Snapshot
	if env.battery != nil {
		snap = env.battery.Snapshot()
	}

	var b strings.Builder
	b.WriteString(env.pageTitle("Power", p.width))
	b.WriteString("\n\n")
	b.WriteString(p.renderBattery(snap))
	b.WriteString("\n\n")

	if len(p.actions) == 0 {
		b.WriteString(s.MutedText.Render(" No power actions configured."))
		return bg.FillBlock(b.String(), p.width, p.height)
	}

	buttons := make([]string, 0, len(p.actions))
	for i, a := range p.actions {
		buttons = append(buttons, p.renderAction(i, a))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	if p.armed >= 0 {
		b.WriteString("\n")
		b.WriteString(s.WarningText.Render(fmt.Sprintf(" Press %s again to confirm.", p.actions[p.armed].label)))
	}
	return bg.FillBlock(b.String(), p.width, p.height)
}

func (p *powerPage) renderBattery(snap status.Snapshot) string {
	s := p.env.styles
	if !snap.HasSample {
		return s.FaintText.Render(" Battery: waiting for first reading")
	}
	bat := snap.Battery

	const gauge = 20
	filled := bat.Percentage * gauge / 100
	meter := s.BatteryStyle(bat.Percentage, bat.IsCharging).Render(strings.Repeat("█", filled)) +
		s.FaintText.Render(strings.Repeat("░", gauge-filled))

	state := "on battery"
	if bat.IsCharging {
		state = "charging"
	}
	lines := []string{
		fmt.Sprintf(" Battery  %s %3d%%  %s", meter, bat.Percentage, s.MutedText.Render(state)),
	}
	if !snap.LastUpdated.IsZero() {
		lines = append(lines, s.FaintText.Render(fmt.Sprintf(" Updated %s ago", time.Since(snap.LastUpdated).Truncate(time.Second))))
	}
	if snap.IsStale() && snap.LastError != nil {
		lines = append(lines, s.WarningText.Render(fmt.Sprintf(" Reading failed %d times: %v", snap.ConsecutiveFailures, snap.LastError)))
	}
	return strings.Join(lines, "\n")
}

func (p *powerPage) renderAction(i int, a powerAction) string {
	env := p.env
	id := powerZone(i)

	border := lipgloss.Color(env.theme.Border)
	text := env.styles.Text
	if i == p.selected {
		border = lipgloss.Color(env.theme.BorderFocus)
	}
	if i == p.armed {
		border = lipgloss.Color(env.theme.Danger)
		text = env.styles.DangerText
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 3).
		MarginLeft(1)
	switch env.interaction(id) {
	case stateHover:
		style = style.Background(lipgloss.Color(env.theme.FocusBg))
	case statePressed:
		style = style.Faint(true)
	}
	return env.mark(id, style.Render(text.Render(a.label)))
}
