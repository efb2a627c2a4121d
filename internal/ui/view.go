package ui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/nav"
)

// barHeight is the height of a bar: the icon plus an optional label row.
func (m Model) barHeight() int {
	if m.env.labels {
		return BarIconHeight + 1
	}
	return BarIconHeight
}

// contentHeight is the height left for pages between the bars.
func (m Model) contentHeight() int {
	h := m.height
	for _, bar := range []*Bar{m.top, m.bottom} {
		if bar != nil && len(bar.Buttons) > 0 {
			h -= m.barHeight()
		}
	}
	return max(h, 0)
}

// renderBar lays out a bar: first button left, second right, center between.
func (m Model) renderBar(bar *Bar, center string) string {
	if bar == nil || len(bar.Buttons) == 0 || m.width <= 0 {
		return ""
	}
	h := m.barHeight()
	surface := m.env.theme.Surface
	cellW := BarIconWidth + 2

	left := m.renderButton(bar.Buttons[0], cellW, h)
	right := NewBgStyle(surface).FillBlock("", cellW, h)
	if len(bar.Buttons) > 1 {
		right = m.renderButton(bar.Buttons[1], cellW, h)
	}

	midW := m.width - 2*cellW
	if midW <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	mid := lipgloss.Place(midW, h, lipgloss.Center, lipgloss.Center, center,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(surface)))
	mid = NewBgStyle(surface).FillBlock(mid, midW, h)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}

func (m Model) renderButton(b *Button, width, height int) string {
	state := m.env.interaction(b.zoneID)
	v := b.Visual(state)

	bgColor := m.env.theme.Surface
	if state != stateNormal {
		bgColor = m.env.theme.FocusBg
	}
	if v.Background != "" {
		bgColor = v.Background
	}
	bg := NewBgStyle(bgColor)
	ws := lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor))

	var rows []string
	if v.Image != nil {
		icon := v.Image.Render(assets.RenderOptions{
			Width:      BarIconWidth,
			Height:     BarIconHeight,
			Opacity:    v.Opacity,
			Background: bgColor,
			Base:       bgColor,
		})
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, icon, ws))
	}
	if m.env.labels {
		label := bg.Render(b.Name, m.env.styles.MutedText)
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, label, ws))
	}

	return m.env.mark(b.zoneID, bg.FillBlock(strings.Join(rows, "\n"), width, height))
}

func (m Model) renderClock() string {
	bg := NewBgStyle(m.env.theme.Surface)
	return bg.Render(time.Now().Format("Mon 15:04"), m.env.styles.Text)
}

// renderStatusLine is the bottom bar center: the launch spinner while
// anything is in flight, the short help otherwise.
func (m Model) renderStatusLine() string {
	bg := NewBgStyle(m.env.theme.Surface)
	if !m.spinner.visible {
		return m.help.View(m.env.keys)
	}

	icon := m.env.image(m.spinner.current()).Render(assets.RenderOptions{
		Width:      SpinnerIconWidth,
		Height:     SpinnerIconHeight,
		Opacity:    1,
		Background: m.env.theme.Surface,
		Base:       m.env.theme.Surface,
	})

	names := make([]string, 0, len(m.inflight))
	ids := make([]int, 0, len(m.inflight))
	for id := range m.inflight {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		names = append(names, m.inflight[id])
	}
	text := bg.Spaces(1) + bg.Render("Launching "+strings.Join(names, ", "), m.env.styles.MutedText)
	return lipgloss.JoinHorizontal(lipgloss.Center, icon, text)
}

// renderPage draws the page area, composing both pages while a slide runs.
func (m Model) renderPage(height int) string {
	if height <= 0 || m.width <= 0 {
		return ""
	}
	bg := NewBgStyle(m.env.theme.Background)
	if m.slide != nil {
		return m.slide.compose(m.pageView(m.slide.t.From), m.pageView(m.slide.t.To), m.width, height, bg)
	}
	return bg.FillBlock(m.pageView(m.stack.Current()), m.width, height)
}

func (m Model) pageView(id nav.PageID) string {
	if p := m.pages[id]; p != nil {
		return p.View()
	}
	return ""
}
