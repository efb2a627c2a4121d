package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/status"
)

// page is one long-lived screen of the shell. The shell owns exactly one
// instance per nav.PageID and only shows or hides it, so state such as the
// selected item survives push and pop.
type page interface {
	ID() nav.PageID
	// Enter runs when the page becomes the navigation target.
	Enter() tea.Cmd
	// Exit runs once the page is no longer shown.
	Exit()
	Resize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Zones lists the mouse zones the last View marked.
	Zones() []string
	// Click handles a press on one of the page's zones.
	Click(zoneID string) tea.Cmd
	// Capturing reports whether the page is consuming raw keys (text input),
	// in which case global bindings stay out of the way.
	Capturing() bool
}

// shellEnv is the presentation state pages read while rendering. The shell
// and all pages share one instance.
type shellEnv struct {
	theme  Theme
	styles Styles
	keys   keyMap
	zones  *zone.Manager
	loader *assets.Loader
	logger *log.Logger
	labels bool

	hover   string
	pressed string

	battery    BatterySource
	lastWifi   status.WifiStatus
	lastWifiOK bool
}

func (e *shellEnv) setTheme(t Theme) {
	e.theme = t
	e.styles = t.Styles()
}

// image loads an asset, falling back to a glyph when the file turned
// unreadable after startup.
func (e *shellEnv) image(name string) *assets.Image {
	if e.loader == nil {
		return assets.Glyph(name)
	}
	img, err := e.loader.Load(name)
	if err != nil {
		e.logger.Warn("load asset", "name", name, "err", err)
		return assets.Glyph(name)
	}
	return img
}

// mark wraps content in a mouse zone.
func (e *shellEnv) mark(id, content string) string {
	if e.zones == nil {
		return content
	}
	return e.zones.Mark(id, content)
}

// interaction returns the visual state of the zone.
func (e *shellEnv) interaction(id string) buttonState {
	switch id {
	case e.pressed:
		return statePressed
	case e.hover:
		return stateHover
	default:
		return stateNormal
	}
}

// messages pages send to the shell

// launchRequestMsg asks the shell to run a command with the spinner up.
type launchRequestMsg struct {
	name  string
	shell string
}

// showLibraryMsg asks the shell to push the apps library.
type showLibraryMsg struct{}

func requestLaunch(name, shell string) tea.Cmd {
	if strings.TrimSpace(shell) == "" {
		return nil
	}
	return func() tea.Msg {
		return launchRequestMsg{name: name, shell: shell}
	}
}

func showLibrary() tea.Msg {
	return showLibraryMsg{}
}

// pageTitle renders a page heading line.
func (e *shellEnv) pageTitle(title string, width int) string {
	bg := NewBgStyle(e.theme.Background)
	return bg.FillLine(bg.Spaces(1)+bg.Render(title, e.styles.Title), width)
}
