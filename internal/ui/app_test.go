package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/prefs"
)

func TestNewShowsDefaultPageWithoutSlide(t *testing.T) {
	m := newTestModel(t, Options{})

	if got := m.stack.Current(); got != nav.PageApps {
		t.Fatalf("current page = %v, want Apps", got)
	}
	if m.slide != nil {
		t.Fatalf("initial page should not slide")
	}
	if m.top == nil || m.bottom == nil {
		t.Fatalf("bars not built")
	}
	if len(m.top.Buttons) != 2 || len(m.bottom.Buttons) != 2 {
		t.Fatalf("bar sizes = %d/%d, want 2/2", len(m.top.Buttons), len(m.bottom.Buttons))
	}
	if !strings.Contains(m.View(), "Apps") {
		t.Fatalf("view missing Apps page title")
	}
}

func TestUnknownDefaultPageLeavesStackEmpty(t *testing.T) {
	cfg := testConfig(t)
	cfg.DefaultPage = "Nowhere"
	m := newTestModel(t, Options{Config: cfg})

	if got := m.stack.Current(); got != nav.PageNone {
		t.Fatalf("current page = %v, want none", got)
	}
	if m.stack.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", m.stack.Depth())
	}
	_ = m.View()
}

func TestWifiAndSettingsClicksPushSettingsForward(t *testing.T) {
	for _, name := range []string{"WiFi", "Settings"} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, Options{})

			if cmd := m.activate(name); cmd == nil {
				t.Fatalf("activate(%s) returned no command", name)
			}
			pending, ok := m.stack.Pending()
			if !ok {
				t.Fatalf("no transition pending")
			}
			if pending.To != nav.PageSettings || pending.Op != nav.OpPush || pending.Kind != nav.TransitionForward {
				t.Fatalf("transition = %+v, want push forward to Settings", pending)
			}
			if m.slide == nil {
				t.Fatalf("expected a slide")
			}

			m.finishSlide()
			if got := m.stack.Current(); got != nav.PageSettings {
				t.Fatalf("current page = %v, want Settings", got)
			}
			if m.stack.Depth() != 2 {
				t.Fatalf("depth = %d, want 2", m.stack.Depth())
			}
		})
	}
}

func TestClickOnCurrentPageIsNoop(t *testing.T) {
	m := newTestModel(t, Options{})

	if cmd := m.activate("Apps"); cmd != nil {
		t.Fatalf("expected no command for current page")
	}
	if m.stack.State() != nav.Idle || m.slide != nil {
		t.Fatalf("navigation started for current page")
	}
}

func TestClickOnUnregisteredNameIsNoop(t *testing.T) {
	m := newTestModel(t, Options{})

	if cmd := m.activate("Bluetooth"); cmd != nil {
		t.Fatalf("expected no command for unregistered name")
	}
	if got := m.stack.Current(); got != nav.PageApps {
		t.Fatalf("current page = %v, want Apps", got)
	}
}

func TestPushThenPopKeepsAppsSelection(t *testing.T) {
	m := newTestModel(t, Options{})
	m.apps.selected = 2

	m.activate("Settings")
	m.finishSlide()
	m.back()
	m.finishSlide()

	if got := m.stack.Current(); got != nav.PageApps {
		t.Fatalf("current page = %v, want Apps", got)
	}
	if m.apps.selected != 2 {
		t.Fatalf("apps selection = %d, want 2", m.apps.selected)
	}
}

func TestCornerKeyActivatesButton(t *testing.T) {
	m := newTestModel(t, Options{})

	// Key 1 is the top-left corner, WiFi in the default layout.
	m, cmd := update(t, m, keyPress("1"))
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	pending, ok := m.stack.Pending()
	if !ok || pending.To != nav.PageSettings {
		t.Fatalf("pending = %+v, want Settings", pending)
	}
}

func TestOverriddenSlideEndsOnNewTarget(t *testing.T) {
	m := newTestModel(t, Options{})

	m.activate("Settings")
	m.activate("Battery")
	pending, ok := m.stack.Pending()
	if !ok || pending.To != nav.PagePower {
		t.Fatalf("pending = %+v, want Power", pending)
	}
	if m.slide == nil || m.slide.t.ID != pending.ID {
		t.Fatalf("slide does not follow the latest transition")
	}
}

func TestClickOnPageBeingLeftOverridesSlide(t *testing.T) {
	m := newTestModel(t, Options{})

	m.activate("Settings")
	if cmd := m.activate("Apps"); cmd == nil {
		t.Fatalf("click on the page being left was dropped")
	}
	pending, ok := m.stack.Pending()
	if !ok || pending.From != nav.PageSettings || pending.To != nav.PageApps {
		t.Fatalf("pending = %+v, want Settings to Apps", pending)
	}
	if m.slide == nil || m.slide.t.ID != pending.ID {
		t.Fatalf("slide does not follow the override")
	}

	m.finishSlide()
	if got := m.stack.Current(); got != nav.PageApps {
		t.Fatalf("current = %v, want Apps", got)
	}
}

func TestClickOnSlideTargetIsNoop(t *testing.T) {
	m := newTestModel(t, Options{})

	m.activate("Settings")
	before, _ := m.stack.Pending()
	if cmd := m.activate("WiFi"); cmd != nil {
		t.Fatalf("click on the slide target produced a command")
	}
	if after, _ := m.stack.Pending(); after.ID != before.ID {
		t.Fatalf("click on the slide target restarted the transition")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, keyPress("?"))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}
	m, _ = update(t, m, keyPress("x"))
	if m.showHelp {
		t.Fatalf("help not closed")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path, Prefs: prefs.Defaults()})
	before := m.env.theme.Name

	m, _ = update(t, m, keyPress("T"))
	want := NextTheme(before)
	if m.env.theme.Name != want {
		t.Fatalf("theme = %q, want %q", m.env.theme.Name, want)
	}
	if got := prefs.Load(path).Theme; got != want {
		t.Fatalf("saved theme = %q, want %q", got, want)
	}
}

func TestToggleLabelsResizesPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path, Prefs: prefs.Defaults()})
	labels := m.env.labels
	before := m.contentHeight()

	m, _ = update(t, m, keyPress("L"))
	if m.env.labels == labels {
		t.Fatalf("labels not toggled")
	}
	if m.contentHeight() == before {
		t.Fatalf("content height unchanged after toggling labels")
	}
	if got := prefs.Load(path).Labels(); got != m.env.labels {
		t.Fatalf("saved labels = %v, want %v", got, m.env.labels)
	}
}

func TestQuitStopsTimersAndTearsDownBars(t *testing.T) {
	m := newTestModel(t, Options{})
	m.startLaunch(launchRequestMsg{name: "Music", shell: "true"})
	gen := m.batteryP.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.quitting {
		t.Fatalf("model not quitting")
	}
	if m.batteryP.running || m.wifiP.running {
		t.Fatalf("status presenters still running")
	}
	if m.spinner.visible {
		t.Fatalf("spinner still visible")
	}
	if m.top != nil || m.bottom != nil {
		t.Fatalf("bars not torn down")
	}

	_, cmd = update(t, m, statusTickMsg{kind: batteryStatus, gen: gen})
	if cmd != nil {
		t.Fatalf("tick after quit rescheduled")
	}
	if m.View() != "" {
		t.Fatalf("view after quit should be empty")
	}
}

func TestQuitMidSlideCommitsTransition(t *testing.T) {
	m := newTestModel(t, Options{})
	m.activate("Settings")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.slide != nil {
		t.Fatalf("slide survived quit")
	}
	if m.stack.State() != nav.Idle {
		t.Fatalf("stack still transitioning after quit")
	}
	if got := m.stack.Current(); got != nav.PageSettings {
		t.Fatalf("current = %v, want Settings", got)
	}
}

func TestLibraryFilterCapturesGlobalKeys(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, showLibraryMsg{})
	m.finishSlide()
	if got := m.stack.Current(); got != nav.PageLibrary {
		t.Fatalf("current page = %v, want Library", got)
	}

	m, _ = update(t, m, keyPress("/"))
	if m.library.list.FilterState() != list.Filtering {
		t.Fatalf("library not filtering")
	}
	m, _ = update(t, m, keyPress("q"))
	if m.quitting {
		t.Fatalf("q quit while filtering")
	}
}

func TestBackFromLibraryReturnsToApps(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, showLibraryMsg{})
	m.finishSlide()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m.finishSlide()

	if got := m.stack.Current(); got != nav.PageApps {
		t.Fatalf("current page = %v, want Apps", got)
	}
}
