package ui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/status"
	"github.com/five82/kiosk/internal/sysinfo"
)

type fakeBattery struct {
	b    status.BatteryStatus
	snap status.Snapshot
}

func (f *fakeBattery) Current() status.BatteryStatus { return f.b }
func (f *fakeBattery) Snapshot() status.Snapshot     { return f.snap }

type fakeWifi struct {
	st    status.WifiStatus
	ok    bool
	calls int
}

func (f *fakeWifi) Query() (status.WifiStatus, bool) {
	f.calls++
	return f.st, f.ok
}

func testItems() []config.Item {
	return []config.Item{
		{Name: "Browser", Icon: "browser.png", Shell: "true"},
		{Name: "Music", Icon: "music.png", Shell: "true"},
		{Name: "Terminal", Icon: "terminal.png", Shell: "true"},
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.AssetRoot = t.TempDir()
	cfg.Pages[0].Items = testItems()
	cfg.Log.File = "-"
	return &cfg
}

func fixedSysInfo(context.Context) (sysinfo.Info, error) {
	return sysinfo.Info{Hostname: "kiosk-test"}, nil
}

// newTestModel builds a sized shell without assets on disk, so every icon is
// a glyph.
func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Config == nil {
		opts.Config = testConfig(t)
	}
	if opts.SysInfo == nil {
		opts.SysInfo = fixedSysInfo
	}
	if opts.Battery == nil {
		opts.Battery = &fakeBattery{}
	}
	if opts.Wifi == nil {
		opts.Wifi = &fakeWifi{}
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func testEnv() *shellEnv {
	env := &shellEnv{keys: DefaultKeyMap(), logger: log.New(io.Discard)}
	env.setTheme(GetTheme(""))
	return env
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func findButton(t *testing.T, m Model, name string) *Button {
	t.Helper()
	for _, bar := range []*Bar{m.top, m.bottom} {
		if bar == nil {
			continue
		}
		for _, b := range bar.Buttons {
			if b.Name == name {
				return b
			}
		}
	}
	t.Fatalf("no %s button", name)
	return nil
}
