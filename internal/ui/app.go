package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/prefs"
	"github.com/five82/kiosk/internal/status"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Assets    *assets.Loader
	Battery   BatterySource
	Wifi      status.WifiProbe
	SysInfo   SysInfoFunc
	Logger    *log.Logger
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving preference changes

	// Registry overrides the page aliases; nil uses nav.DefaultRegistry.
	Registry *nav.Registry
	// LaunchSettle bounds the spinner per launch; zero uses LaunchSettle.
	LaunchSettle time.Duration
}

// Model is the launcher shell: two bars of corner buttons around the visible
// page, the navigation stack and the timers that keep the status icons fresh.
type Model struct {
	ctx       context.Context
	cfg       *config.Config
	env       *shellEnv
	prefs     prefs.Prefs
	prefsPath string
	help      help.Model

	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool

	// Bars are nil once the shell is torn down.
	top    *Bar
	bottom *Bar

	wifi status.WifiProbe

	registry *nav.Registry
	stack    *nav.Stack
	pages    map[nav.PageID]page
	apps     *appsPage
	library  *libraryPage
	settings *settingsPage
	power    *powerPage
	slide    *slide

	batteryP statusPresenter
	wifiP    statusPresenter
	spinner  spinnerPresenter

	launchSeq    int
	inflight     map[int]string
	launchSettle time.Duration

	initCmds []tea.Cmd
}

// New builds the shell and shows the default page without animation.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	registry := opts.Registry
	if registry == nil {
		registry = nav.DefaultRegistry()
	}

	settle := opts.LaunchSettle
	if settle <= 0 {
		settle = LaunchSettle
	}

	env := &shellEnv{
		keys:    DefaultKeyMap(),
		zones:   zone.New(),
		loader:  opts.Assets,
		logger:  logger,
		labels:  opts.Prefs.Labels(),
		battery: opts.Battery,
	}
	env.setTheme(GetTheme(opts.Prefs.Theme))

	m := Model{
		ctx:          ctx,
		cfg:          cfg,
		env:          env,
		prefs:        opts.Prefs,
		prefsPath:    opts.PrefsPath,
		help:         help.New(),
		registry:     registry,
		stack:        nav.NewStack(),
		launchSettle: settle,
		inflight:     make(map[int]string),
		batteryP:     newStatusPresenter(batteryStatus, orDefault(cfg.Status.BatteryRefresh, DefaultBatteryRefresh)),
		wifiP:        newStatusPresenter(wifiStatus, orDefault(cfg.Status.WifiRefresh, DefaultWifiRefresh)),
		spinner:      newSpinnerPresenter(cfg.Status.SpinnerFrame),
		wifi:         opts.Wifi,
	}
	m.applyHelpTheme()

	topButtons, bottomButtons := cfg.CornerButtons()
	if len(topButtons) > 0 {
		m.top = newBar("top", topButtons, env.image)
		m.bottom = newBar("bottom", bottomButtons, env.image)
	}

	m.apps = newAppsPage(env)
	m.library = newLibraryPage(env)
	m.settings = newSettingsPage(env, opts.SysInfo, cfg.Log.File)
	m.power = newPowerPage(env, cfg.Power)
	m.pages = map[nav.PageID]page{
		nav.PageApps:     m.apps,
		nav.PageLibrary:  m.library,
		nav.PageSettings: m.settings,
		nav.PagePower:    m.power,
	}
	items := cfg.Items()
	m.apps.LoadItems(items)
	m.library.LoadItems(items)

	if id, ok := registry.Resolve(cfg.DefaultPage); ok {
		t, ok := m.stack.Swap(id, nav.TransitionNone)
		m.initCmds = append(m.initCmds, m.navigate(t, ok, nil))
	} else {
		logger.Info("no default page", "name", cfg.DefaultPage)
	}

	m.applyBattery()
	m.applyWifi()
	m.initCmds = append(m.initCmds, m.batteryP.start(), m.wifiP.start())
	return m
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

// Update implements tea.Model. It is the only place the bars, pages, stack
// and presenters change.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizePages()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case statusTickMsg:
		return m.handleStatusTick(msg)

	case spinner.TickMsg:
		return m, m.spinner.update(msg)

	case slideFrameMsg:
		return m.handleSlideFrame(msg)

	case launchRequestMsg:
		return m, m.startLaunch(msg)

	case launchDoneMsg:
		m.finishLaunch(msg)
		return m, nil

	case showLibraryMsg:
		return m, m.showAppsLibrary()

	case sysInfoMsg:
		return m, m.settings.Update(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	top := m.renderBar(m.top, m.renderClock())
	bottom := m.renderBar(m.bottom, m.renderStatusLine())
	content := m.renderPage(m.contentHeight())

	parts := make([]string, 0, 3)
	for _, s := range []string{top, content, bottom} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return m.env.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	keys := m.env.keys
	p := m.pages[m.visiblePage()]
	capturing := p != nil && p.Capturing()

	if msg.Type == tea.KeyCtrlC || (!capturing && key.Matches(msg, keys.Quit)) {
		return m.quit()
	}
	if capturing {
		return m.forwardToPage(msg)
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		m.env.setTheme(GetTheme(NextTheme(m.env.theme.Name)))
		m.prefs.Theme = m.env.theme.Name
		m.applyHelpTheme()
		m.library.applyTheme()
		m.settings.refresh()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, keys.ToggleLabels):
		m.env.labels = !m.env.labels
		m.prefs = m.prefs.WithLabels(m.env.labels)
		m.library.applyTheme()
		m.resizePages()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, keys.Back):
		return m, m.back()
	}

	for i, binding := range keys.Corner {
		if key.Matches(msg, binding) {
			if b := m.cornerButton(i); b != nil {
				return m, m.activate(b.Name)
			}
			return m, nil
		}
	}

	return m.forwardToPage(msg)
}

func (m Model) forwardToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := m.pages[m.visiblePage()]
	if p == nil {
		return m, nil
	}
	return m, p.Update(msg)
}

func (m Model) cornerButton(i int) *Button {
	bar, idx := m.top, i
	if i >= 2 {
		bar, idx = m.bottom, i-2
	}
	if bar == nil || idx >= len(bar.Buttons) {
		return nil
	}
	return bar.Buttons[idx]
}

// activate handles a corner button click by its name.
func (m *Model) activate(name string) tea.Cmd {
	id, ok := m.registry.Resolve(name)
	if !ok {
		m.env.logger.Debug("click on unregistered page", "name", name)
		return nil
	}
	if id == m.visiblePage() {
		m.env.logger.Debug("click on current page", "page", id)
		return nil
	}
	pol := m.registry.Policy(id)
	if pol.Op == nav.OpPush {
		return m.request(func() (nav.Transition, bool) { return m.stack.Push(id, pol.Kind) })
	}
	return m.request(func() (nav.Transition, bool) { return m.stack.Swap(id, pol.Kind) })
}

// showAppsLibrary pushes the library so back returns to the previous page.
func (m *Model) showAppsLibrary() tea.Cmd {
	return m.request(func() (nav.Transition, bool) {
		return m.stack.Push(nav.PageLibrary, nav.TransitionBack)
	})
}

func (m *Model) back() tea.Cmd {
	return m.request(m.stack.Pop)
}

// request runs a stack operation and reports a transition it overrode.
func (m *Model) request(op func() (nav.Transition, bool)) tea.Cmd {
	prev, hadPending := m.stack.Pending()
	t, ok := op()
	var overridden *nav.Transition
	if ok && hadPending {
		overridden = &prev
	}
	return m.navigate(t, ok, overridden)
}

// visiblePage is the page keys go to: the slide target while animating.
func (m Model) visiblePage() nav.PageID {
	if t, ok := m.stack.Pending(); ok {
		return t.To
	}
	return m.stack.Current()
}

// Stop cancels every UI timer, commits an in-flight slide and tears the bars
// down. Pending ticks become no-ops.
func (m *Model) Stop() {
	m.batteryP.stop()
	m.wifiP.stop()
	m.spinner.hide()
	m.finishSlide()
	m.top, m.bottom = nil, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.env.logger.Warn("save prefs", "err", err)
	}
}

func (m *Model) resizePages() {
	h := m.contentHeight()
	for _, p := range m.pages {
		p.Resize(m.width, h)
	}
}

// Run starts the Bubble Tea program and returns once it exits. Cancelling
// the options context ends the program without an error.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	defer m.env.zones.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Stop()
	}
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
