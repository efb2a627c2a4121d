package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// zoneAt returns the first marked zone under the pointer: bar buttons first,
// then the visible page.
func (m Model) zoneAt(msg tea.MouseMsg) string {
	if m.env.zones == nil {
		return ""
	}
	for _, id := range m.barZones() {
		if z := m.env.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	if p := m.pages[m.visiblePage()]; p != nil && m.slide == nil {
		for _, id := range p.Zones() {
			if z := m.env.zones.Get(id); z != nil && z.InBounds(msg) {
				return id
			}
		}
	}
	return ""
}

func (m Model) barZones() []string {
	var ids []string
	for _, bar := range []*Bar{m.top, m.bottom} {
		if bar == nil {
			continue
		}
		for _, b := range bar.Buttons {
			ids = append(ids, b.zoneID)
		}
	}
	return ids
}

func (m Model) buttonByZone(id string) *Button {
	for _, bar := range []*Bar{m.top, m.bottom} {
		if bar == nil {
			continue
		}
		for _, b := range bar.Buttons {
			if b.zoneID == id {
				return b
			}
		}
	}
	return nil
}

// handleMouse tracks hover and pressed zones. A press triggers the click at
// once; release only clears the pressed look.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.env.hover = m.zoneAt(msg)
		return m, nil

	case tea.MouseActionRelease:
		m.env.pressed = ""
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m.forwardToPage(msg)
		}
		id := m.zoneAt(msg)
		m.env.pressed = id
		m.env.hover = id
		if id == "" {
			return m, nil
		}
		if b := m.buttonByZone(id); b != nil {
			return m, m.activate(b.Name)
		}
		if p := m.pages[m.visiblePage()]; p != nil {
			return m, p.Click(id)
		}
	}
	return m, nil
}
