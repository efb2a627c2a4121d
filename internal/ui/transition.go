package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/kiosk/internal/nav"
)

type slideFrameMsg struct {
	id uint64
}

// slide animates one nav.Transition. pos runs from 0 (old page fully shown)
// to 1 (new page fully shown) on a critically damped spring.
type slide struct {
	t      nav.Transition
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newSlide(t nav.Transition) *slide {
	return &slide{
		t:      t,
		spring: harmonica.NewSpring(harmonica.FPS(slideFPS), 9.0, 1.0),
	}
}

// step advances one frame and reports whether the slide has settled.
func (s *slide) step() bool {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 1.0)
	if math.Abs(1-s.pos) < 0.005 && math.Abs(s.vel) < 0.01 {
		s.pos, s.vel = 1, 0
		return true
	}
	return false
}

func slideFrame(id uint64) tea.Cmd {
	return tea.Tick(time.Second/slideFPS, func(time.Time) tea.Msg {
		return slideFrameMsg{id: id}
	})
}

// compose renders the two pages side by side at the slide offset. Forward
// slides the new page in from the right, back from the left.
func (s *slide) compose(from, to string, width, height int, bg BgStyle) string {
	from = bg.FillBlock(from, width, height)
	to = bg.FillBlock(to, width, height)
	if width <= 0 || height <= 0 {
		return ""
	}

	shift := int(math.Round(s.pos * float64(width)))
	shift = min(max(shift, 0), width)

	fromLines := strings.Split(from, "\n")
	toLines := strings.Split(to, "\n")
	out := make([]string, height)
	for i := range out {
		if s.t.Kind == nav.TransitionBack {
			out[i] = ansi.Cut(toLines[i], width-shift, width) + ansi.Cut(fromLines[i], 0, width-shift)
		} else {
			out[i] = ansi.Cut(fromLines[i], shift, width) + ansi.Cut(toLines[i], 0, shift)
		}
	}
	return strings.Join(out, "\n")
}

// navigate applies a stack result: it enters the target page, exits pages
// that stopped being shown and starts the slide.
func (m *Model) navigate(t nav.Transition, ok bool, overridden *nav.Transition) tea.Cmd {
	if !ok {
		return nil
	}
	var cmds []tea.Cmd
	if overridden != nil {
		m.env.logger.Debug("transition overridden", "from", overridden.From, "to", overridden.To)
		m.slide = nil
		m.exitPage(overridden.From, t.To)
	}
	m.env.logger.Debug("navigate", "op", t.Op, "from", t.From, "to", t.To, "kind", t.Kind)

	if p := m.pages[t.To]; p != nil {
		cmds = append(cmds, p.Enter())
	}
	if t.Kind == nav.TransitionNone {
		m.slide = nil
		m.exitPage(t.From, t.To)
		return tea.Batch(cmds...)
	}
	m.slide = newSlide(t)
	cmds = append(cmds, slideFrame(t.ID))
	return tea.Batch(cmds...)
}

func (m *Model) exitPage(id, next nav.PageID) {
	if id == next {
		return
	}
	if p := m.pages[id]; p != nil {
		p.Exit()
	}
}

func (m Model) handleSlideFrame(msg slideFrameMsg) (tea.Model, tea.Cmd) {
	if m.slide == nil || m.slide.t.ID != msg.id {
		return m, nil
	}
	if !m.slide.step() {
		return m, slideFrame(msg.id)
	}
	t := m.slide.t
	m.slide = nil
	if m.stack.Complete(t.ID) {
		m.exitPage(t.From, t.To)
	}
	return m, nil
}

// finishSlide commits an in-flight slide at once.
func (m *Model) finishSlide() {
	if m.slide == nil {
		return
	}
	t := m.slide.t
	m.slide = nil
	if m.stack.Complete(t.ID) {
		m.exitPage(t.From, t.To)
	}
}
