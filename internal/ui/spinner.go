package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/icons"
)

// spinnerPresenter cycles the wait icons while a launch is in flight. Frames
// are asset names rather than text; the bubbles spinner model does the
// ticking. show builds a fresh model, so ticks of an earlier chain carry a
// stale ID and are dropped by the model itself.
type spinnerPresenter struct {
	frames  spinner.Spinner
	model   spinner.Model
	visible bool
}

func newSpinnerPresenter(period time.Duration) spinnerPresenter {
	if period <= 0 {
		period = DefaultSpinnerFrame
	}
	frames := spinner.Spinner{Frames: icons.SpinnerImages(), FPS: period}
	return spinnerPresenter{frames: frames, model: spinner.New(spinner.WithSpinner(frames))}
}

// show makes the spinner visible and restarts its timer.
func (p *spinnerPresenter) show() tea.Cmd {
	p.model = spinner.New(spinner.WithSpinner(p.frames))
	p.visible = true

	// The first frame stays up for a full period.
	id := p.model.ID()
	return tea.Tick(p.frames.FPS, func(t time.Time) tea.Msg {
		return spinner.TickMsg{Time: t, ID: id}
	})
}

// hide stops the timer and hides the spinner.
func (p *spinnerPresenter) hide() {
	p.visible = false
}

// update advances the frame for a live tick and schedules the next one.
func (p *spinnerPresenter) update(msg spinner.TickMsg) tea.Cmd {
	if !p.visible {
		return nil
	}
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return cmd
}

// current returns the asset name of the frame on screen.
func (p spinnerPresenter) current() string {
	if !p.visible || len(p.frames.Frames) == 0 {
		return ""
	}
	return p.model.View()
}
