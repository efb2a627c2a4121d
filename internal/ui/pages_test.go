package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/status"
	"github.com/five82/kiosk/internal/sysinfo"
)

func TestAppsPageClickLaunchesItem(t *testing.T) {
	p := newAppsPage(testEnv())
	p.LoadItems(testItems())
	p.Resize(80, 20)

	cmd := p.Click(itemZone(1))
	if cmd == nil {
		t.Fatalf("click produced no command")
	}
	msg, ok := cmd().(launchRequestMsg)
	if !ok || msg.name != "Music" {
		t.Fatalf("click message = %+v, want launch of Music", msg)
	}
	if p.selected != 1 {
		t.Fatalf("selected = %d, want 1", p.selected)
	}
	if p.Click("bar:top:0") != nil {
		t.Fatalf("foreign zone produced a command")
	}
	if p.Click(itemZone(7)) != nil {
		t.Fatalf("out of range zone produced a command")
	}
}

func TestAppsPageKeys(t *testing.T) {
	p := newAppsPage(testEnv())
	p.LoadItems(testItems())
	p.Resize(80, 20)

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	if p.selected != 1 {
		t.Fatalf("selected = %d, want 1", p.selected)
	}
	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if p.selected != 0 {
		t.Fatalf("selected = %d, want 0", p.selected)
	}

	cmd := p.Update(keyPress("/"))
	if cmd == nil {
		t.Fatalf("library key produced no command")
	}
	if _, ok := cmd().(showLibraryMsg); !ok {
		t.Fatalf("library key did not request the library")
	}
}

func TestAppsPageLoadItemsClampsSelection(t *testing.T) {
	p := newAppsPage(testEnv())
	p.LoadItems(testItems())
	p.selected = 2
	p.LoadItems(testItems()[:1])
	if p.selected != 0 {
		t.Fatalf("selected = %d, want 0", p.selected)
	}
	p.LoadItems(nil)
	p.Resize(40, 10)
	_ = p.View()
}

func TestPowerPageArmsBeforeRunning(t *testing.T) {
	p := newPowerPage(testEnv(), config.Power{Shutdown: "poweroff", Sleep: "systemctl suspend"})
	if len(p.actions) != 2 {
		t.Fatalf("actions = %d, want 2", len(p.actions))
	}

	if p.press(0) != nil {
		t.Fatalf("first press ran the action")
	}
	if p.armed != 0 {
		t.Fatalf("armed = %d, want 0", p.armed)
	}
	cmd := p.press(0)
	if cmd == nil {
		t.Fatalf("second press did not run the action")
	}
	msg := cmd().(launchRequestMsg)
	if msg.name != "Shut down" || msg.shell != "poweroff" {
		t.Fatalf("launch = %+v", msg)
	}
	if p.armed != -1 {
		t.Fatalf("action still armed after running")
	}

	p.press(1)
	p.Exit()
	if p.armed != -1 {
		t.Fatalf("exit did not disarm")
	}
}

func TestPowerPageShowsStaleBattery(t *testing.T) {
	env := testEnv()
	env.battery = &fakeBattery{snap: status.Snapshot{
		HasSample:           true,
		Battery:             status.BatteryStatus{Percentage: 40},
		ConsecutiveFailures: 3,
		LastError:           context.DeadlineExceeded,
	}}
	p := newPowerPage(env, config.Power{})
	p.Resize(80, 12)
	_ = p.View()
}

func TestSettingsPageShowsRecentLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.log")
	content := "2026/10/17 09:00:00 INFO kiosk: started\n2026/10/17 09:00:01 WARN kiosk: battery sample failed\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	p := newSettingsPage(testEnv(), fixedSysInfo, path)
	p.Resize(100, 30)

	p.Update(p.Enter()())
	if len(p.logs) != 2 {
		t.Fatalf("logs = %d lines, want 2", len(p.logs))
	}
	if !strings.Contains(p.content(), "battery sample failed") {
		t.Fatalf("content missing log line")
	}
}

func TestSettingsPageDropsStaleInfo(t *testing.T) {
	p := newSettingsPage(testEnv(), func(context.Context) (sysinfo.Info, error) {
		return sysinfo.Info{Hostname: "fresh"}, nil
	}, "")
	p.Resize(80, 20)

	p.Enter()
	cmd := p.Enter()

	p.Update(sysInfoMsg{req: 1, info: sysinfo.Info{Hostname: "old"}})
	if p.info.Hostname != "" {
		t.Fatalf("stale result applied: %q", p.info.Hostname)
	}
	if !p.loading {
		t.Fatalf("stale result cleared loading")
	}

	p.Update(cmd())
	if p.info.Hostname != "fresh" {
		t.Fatalf("hostname = %q, want fresh", p.info.Hostname)
	}
	if p.loading {
		t.Fatalf("still loading")
	}
}
