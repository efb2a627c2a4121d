package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/icons"
	"github.com/five82/kiosk/internal/status"
)

// BatterySource is the battery side of the status sampler.
type BatterySource interface {
	Current() status.BatteryStatus
	Snapshot() status.Snapshot
}

type statusKind int

const (
	batteryStatus statusKind = iota
	wifiStatus
)

func (k statusKind) String() string {
	if k == wifiStatus {
		return "wifi"
	}
	return "battery"
}

// statusTickMsg fires a status presenter. gen ties it to one schedule.
type statusTickMsg struct {
	kind statusKind
	gen  uint64
}

// statusPresenter is a periodic UI-loop timer. Every tick is single shot and
// rescheduled only after it is handled, so ticks never pile up. Bumping gen
// orphans any tick already in flight.
type statusPresenter struct {
	kind    statusKind
	period  time.Duration
	gen     uint64
	running bool
}

func newStatusPresenter(kind statusKind, period time.Duration) statusPresenter {
	return statusPresenter{kind: kind, period: period}
}

// start begins a new tick chain, abandoning the previous one.
func (p *statusPresenter) start() tea.Cmd {
	p.gen++
	p.running = true
	return p.tick()
}

// stop cancels the chain.
func (p *statusPresenter) stop() {
	p.gen++
	p.running = false
}

// accept reports whether msg belongs to the live chain.
func (p *statusPresenter) accept(msg statusTickMsg) bool {
	return p.running && msg.kind == p.kind && msg.gen == p.gen
}

func (p *statusPresenter) tick() tea.Cmd {
	kind, gen := p.kind, p.gen
	return tea.Tick(p.period, func(time.Time) tea.Msg {
		return statusTickMsg{kind: kind, gen: gen}
	})
}

// applyBattery maps the latest battery reading onto every Battery button.
func (m *Model) applyBattery() {
	if m.top == nil && m.bottom == nil {
		return
	}
	b := status.BatteryStatus{}
	if m.env.battery != nil {
		b = m.env.battery.Current()
	}
	img := m.env.image(icons.BatteryImage(b))
	v := Visual{Image: img, Opacity: 1}
	named("Battery", func(btn *Button) {
		btn.SetImages(v, v, v)
	}, m.top, m.bottom)
}

// applyWifi queries the probe on the UI loop and maps the reading onto every
// WiFi button.
func (m *Model) applyWifi() {
	if m.top == nil && m.bottom == nil {
		return
	}
	st, ok := status.WifiStatus{}, false
	if m.wifi != nil {
		st, ok = m.wifi.Query()
	}
	m.env.lastWifi, m.env.lastWifiOK = st, ok
	if m.settings != nil {
		m.settings.refresh()
	}

	img := m.env.image(icons.WifiImage(st, ok))
	v := Visual{Image: img, Opacity: 1}
	pressed := Visual{Image: img, Opacity: WifiPressedOpacity}
	named("WiFi", func(btn *Button) {
		btn.SetImages(v, v, pressed)
	}, m.top, m.bottom)
}

func (m Model) handleStatusTick(msg statusTickMsg) (tea.Model, tea.Cmd) {
	p := &m.batteryP
	if msg.kind == wifiStatus {
		p = &m.wifiP
	}
	if !p.accept(msg) {
		return m, nil
	}
	if m.top == nil && m.bottom == nil {
		p.running = false
		return m, nil
	}
	if msg.kind == wifiStatus {
		m.applyWifi()
	} else {
		m.applyBattery()
	}
	return m, p.tick()
}
