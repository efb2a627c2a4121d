package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/icons"
	"github.com/five82/kiosk/internal/logtail"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/sysinfo"
)

// SysInfoFunc collects device facts for the settings page.
type SysInfoFunc func(context.Context) (sysinfo.Info, error)

type sysInfoMsg struct {
	req  int
	info sysinfo.Info
	err  error
	logs []string
}

// recentLogLines is how many log lines the settings page shows.
const recentLogLines = 8

// settingsPage shows the Wi-Fi link and device facts.
type settingsPage struct {
	env     *shellEnv
	collect SysInfoFunc
	logPath string

	req     int
	loading bool
	info    sysinfo.Info
	err     error
	logs    []string

	vp viewport.Model
}

func newSettingsPage(env *shellEnv, collect SysInfoFunc, logPath string) *settingsPage {
	if collect == nil {
		collect = sysinfo.Collect
	}
	if logPath == "-" {
		logPath = ""
	}
	return &settingsPage{env: env, collect: collect, logPath: logPath, vp: viewport.New(0, 0)}
}

func (p *settingsPage) ID() nav.PageID  { return nav.PageSettings }
func (p *settingsPage) Capturing() bool { return false }
func (p *settingsPage) Exit()           {}

// Enter refreshes device info off the UI loop.
func (p *settingsPage) Enter() tea.Cmd {
	p.req++
	p.loading = true
	p.refresh()

	req, collect, logPath := p.req, p.collect, p.logPath
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), SysInfoTimeout)
		defer cancel()
		info, err := collect(ctx)
		logs, _ := logtail.Tail(logPath, recentLogLines)
		return sysInfoMsg{req: req, info: info, err: err, logs: logs}
	}
}

func (p *settingsPage) Resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = max(0, height-1)
	p.refresh()
}

func (p *settingsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sysInfoMsg:
		if msg.req != p.req {
			return nil
		}
		p.loading = false
		p.info, p.err, p.logs = msg.info, msg.err, msg.logs
		if msg.err != nil {
			p.env.logger.Debug("sysinfo", "err", msg.err)
		}
		p.refresh()
		return nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		p.vp, cmd = p.vp.Update(msg)
		return cmd
	}
	return nil
}

func (p *settingsPage) Zones() []string      { return nil }
func (p *settingsPage) Click(string) tea.Cmd { return nil }

// refresh rebuilds the viewport content from the latest readings.
func (p *settingsPage) refresh() {
	p.vp.SetContent(p.content())
}

func (p *settingsPage) content() string {
	env := p.env
	s := env.styles
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			value = s.FaintText.Render("unknown")
		}
		fmt.Fprintf(&b, "  %s %s\n", s.MutedText.Render(fmt.Sprintf("%-10s", label)), value)
	}

	b.WriteString(s.AccentText.Bold(true).Render("Wi-Fi"))
	b.WriteString("\n")
	wifi, ok := env.lastWifi, env.lastWifiOK
	switch {
	case !ok:
		row("Status", s.WarningText.Render("no reading"))
	case !wifi.Connected:
		row("Status", s.MutedText.Render("disconnected"))
		row("Interface", wifi.Interface)
	default:
		row("Status", s.SuccessText.Render("connected"))
		row("Network", wifi.SSID)
		row("Interface", wifi.Interface)
		row("Signal", fmt.Sprintf("%.0f dBm (level %d of 3)", wifi.SignalStrength, icons.Wifi(wifi, ok)))
	}

	b.WriteString("\n")
	b.WriteString(s.AccentText.Bold(true).Render("Device"))
	b.WriteString("\n")
	if p.loading && p.info.CollectedAt.IsZero() {
		b.WriteString(s.FaintText.Render("  Collecting…"))
		b.WriteString("\n")
		return b.String()
	}
	row("Hostname", p.info.Hostname)
	row("System", p.info.OS())
	row("Kernel", p.info.KernelVersion)
	row("Uptime", p.info.UptimeString())
	row("Memory", p.info.Memory())
	row("Load", p.info.LoadString())
	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(s.WarningText.Render("  Some values could not be read."))
		b.WriteString("\n")
	}

	if p.logPath == "" {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(s.AccentText.Bold(true).Render("Recent log"))
	b.WriteString("\n")
	if len(p.logs) == 0 {
		b.WriteString(s.FaintText.Render("  (empty)"))
		b.WriteString("\n")
	}
	for _, line := range p.logs {
		b.WriteString("  ")
		b.WriteString(p.logStyle(line).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *settingsPage) logStyle(line string) lipgloss.Style {
	s := p.env.styles
	switch logtail.ParseLevel(line) {
	case logtail.LevelError:
		return s.DangerText
	case logtail.LevelWarn:
		return s.WarningText
	case logtail.LevelDebug:
		return s.FaintText
	default:
		return s.MutedText
	}
}

func (p *settingsPage) View() string {
	bg := NewBgStyle(p.env.theme.Background)
	out := p.env.pageTitle("Settings", p.vp.Width) + "\n" + p.vp.View()
	return bg.FillBlock(out, p.vp.Width, p.vp.Height+1)
}
