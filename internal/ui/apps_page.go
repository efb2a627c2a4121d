package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/nav"
)

// appsPage is the home grid of launchable items.
type appsPage struct {
	env      *shellEnv
	items    []config.Item
	selected int
	width    int
	height   int
}

func newAppsPage(env *shellEnv) *appsPage {
	return &appsPage{env: env}
}

// LoadItems replaces the grid contents.
func (p *appsPage) LoadItems(items []config.Item) {
	p.items = append([]config.Item(nil), items...)
	if p.selected >= len(p.items) {
		p.selected = max(0, len(p.items)-1)
	}
}

func (p *appsPage) ID() nav.PageID  { return nav.PageApps }
func (p *appsPage) Enter() tea.Cmd  { return nil }
func (p *appsPage) Exit()           {}
func (p *appsPage) Capturing() bool { return false }

func (p *appsPage) Resize(width, height int) {
	p.width, p.height = width, height
}

func (p *appsPage) cols() int {
	return max(1, p.width/ItemCellWidth)
}

func (p *appsPage) cellHeight() int {
	if p.env.labels {
		return ItemIconHeight + 2
	}
	return ItemIconHeight + 1
}

func (p *appsPage) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := p.env.keys
	switch {
	case key.Matches(keyMsg, keys.Library):
		return showLibrary
	case len(p.items) == 0:
		return nil
	case key.Matches(keyMsg, keys.Left):
		p.move(-1)
	case key.Matches(keyMsg, keys.Right):
		p.move(1)
	case key.Matches(keyMsg, keys.Up):
		p.move(-p.cols())
	case key.Matches(keyMsg, keys.Down):
		p.move(p.cols())
	case key.Matches(keyMsg, keys.Select):
		return p.launch(p.selected)
	}
	return nil
}

func (p *appsPage) move(delta int) {
	next := p.selected + delta
	if next < 0 || next >= len(p.items) {
		return
	}
	p.selected = next
}

func (p *appsPage) launch(i int) tea.Cmd {
	if i < 0 || i >= len(p.items) {
		return nil
	}
	p.selected = i
	item := p.items[i]
	return requestLaunch(item.Name, item.Shell)
}

func itemZone(i int) string {
	return fmt.Sprintf("item:apps:%d", i)
}

func (p *appsPage) Zones() []string {
	ids := make([]string, len(p.items))
	for i := range p.items {
		ids[i] = itemZone(i)
	}
	return ids
}

func (p *appsPage) Click(zoneID string) tea.Cmd {
	var i int
	if _, err := fmt.Sscanf(zoneID, "item:apps:%d", &i); err != nil {
		return nil
	}
	return p.launch(i)
}

func (p *appsPage) View() string {
	env := p.env
	bg := NewBgStyle(env.theme.Background)
	var b strings.Builder
	b.WriteString(env.pageTitle("Apps", p.width))
	b.WriteString("\n")

	if len(p.items) == 0 {
		b.WriteString(bg.FillLine(bg.Spaces(1)+bg.Render("No apps configured. Add items to the Apps page.", env.styles.MutedText), p.width))
		return bg.FillBlock(b.String(), p.width, p.height)
	}

	cols := p.cols()
	visibleRows := max(1, (p.height-2)/p.cellHeight())
	firstRow := 0
	if row := p.selected / cols; row >= visibleRows {
		firstRow = row - visibleRows + 1
	}

	for row := firstRow; row < firstRow+visibleRows; row++ {
		start := row * cols
		if start >= len(p.items) {
			break
		}
		end := min(start+cols, len(p.items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, p.renderCell(i))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if p.height < 3 {
		return bg.FillBlock(b.String(), p.width, p.height)
	}
	hint := bg.Render(" / ", env.styles.AccentText) + bg.Render("apps library", env.styles.FaintText)
	body := bg.FillBlock(strings.TrimSuffix(b.String(), "\n"), p.width, p.height-1)
	return body + "\n" + bg.FillLine(hint, p.width)
}

func (p *appsPage) renderCell(i int) string {
	env := p.env
	item := p.items[i]
	id := itemZone(i)

	opts := assets.RenderOptions{
		Width:   ItemIconWidth,
		Height:  ItemIconHeight,
		Opacity: 1,
		Base:    env.theme.Background,
	}
	cellBg := env.theme.Background
	switch env.interaction(id) {
	case stateHover:
		opts.Background = env.theme.FocusBg
		cellBg = env.theme.FocusBg
	case statePressed:
		opts.Opacity = 0.6
	}
	icon := env.image(item.Icon).Render(opts)

	bg := NewBgStyle(cellBg)
	lines := []string{icon}
	if env.labels {
		labelStyle := env.styles.Text
		if i == p.selected {
			labelStyle = env.styles.Selected
		}
		label := ansi.Truncate(item.Name, ItemCellWidth-2, "…")
		lines = append(lines, labelStyle.Render(label))
	} else if i == p.selected {
		lines = append(lines, env.styles.AccentText.Render(strings.Repeat("▔", ItemIconWidth)))
	}

	cell := lipgloss.NewStyle().
		Width(ItemCellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(cellBg)).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	cell = bg.FillBlock(cell, ItemCellWidth, p.cellHeight())
	return env.mark(id, cell)
}
