package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/nav"
)

type libraryItem config.Item

func (i libraryItem) Title() string       { return i.Name }
func (i libraryItem) Description() string { return i.Shell }
func (i libraryItem) FilterValue() string { return i.Name }

// libraryPage lists every app by name with type-to-filter.
type libraryPage struct {
	env  *shellEnv
	list list.Model
}

func newLibraryPage(env *shellEnv) *libraryPage {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Apps Library"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	p := &libraryPage{env: env, list: l}
	p.applyTheme()
	return p
}

// LoadItems replaces the list contents.
func (p *libraryPage) LoadItems(items []config.Item) {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = libraryItem(it)
	}
	p.list.SetItems(out)
}

func (p *libraryPage) applyTheme() {
	th := p.env.theme
	p.list.Styles.Title = lipgloss.NewStyle().
		Background(lipgloss.Color(th.Accent)).
		Foreground(lipgloss.Color(th.Background)).
		Padding(0, 1)

	d := list.NewDefaultDelegate()
	d.ShowDescription = p.env.labels
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(lipgloss.Color(th.Text))
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(lipgloss.Color(th.Faint))
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(th.Accent)).
		BorderForeground(lipgloss.Color(th.Accent))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color(th.Muted)).
		BorderForeground(lipgloss.Color(th.Accent))
	p.list.SetDelegate(d)
}

func (p *libraryPage) ID() nav.PageID { return nav.PageLibrary }
func (p *libraryPage) Enter() tea.Cmd { return nil }
func (p *libraryPage) Exit()          {}

func (p *libraryPage) Capturing() bool {
	return p.list.FilterState() != list.Unfiltered
}

func (p *libraryPage) Resize(width, height int) {
	p.list.SetSize(width, height)
}

func (p *libraryPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.list.FilterState() != list.Filtering && key.Matches(msg, p.env.keys.Select) {
			return p.launchSelected()
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.list.CursorUp()
		case tea.MouseButtonWheelDown:
			p.list.CursorDown()
		}
		return nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (p *libraryPage) launchSelected() tea.Cmd {
	item, ok := p.list.SelectedItem().(libraryItem)
	if !ok {
		return nil
	}
	return requestLaunch(item.Name, item.Shell)
}

func (p *libraryPage) Zones() []string      { return nil }
func (p *libraryPage) Click(string) tea.Cmd { return nil }

func (p *libraryPage) View() string {
	bg := NewBgStyle(p.env.theme.Background)
	w, h := p.list.Width(), p.list.Height()
	return bg.FillBlock(p.list.View(), w, h)
}
