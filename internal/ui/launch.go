package ui

import (
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// launchDoneMsg reports that a launch settled: the process exited, failed to
// start, or outlived the settle window and was left running.
type launchDoneMsg struct {
	id     int
	name   string
	exited bool
	err    error
}

// launchCmd starts shell through sh -c detached from the terminal and waits
// at most settle for it to exit. A process that keeps running is reaped in
// the background.
func launchCmd(id int, name, shell string, settle time.Duration) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command("sh", "-c", shell)
		if err := cmd.Start(); err != nil {
			return launchDoneMsg{id: id, name: name, exited: true, err: err}
		}

		done := make(chan error, 1)
		go func() { done <- cmd.Wait() }()

		timer := time.NewTimer(settle)
		defer timer.Stop()
		select {
		case err := <-done:
			return launchDoneMsg{id: id, name: name, exited: true, err: err}
		case <-timer.C:
			return launchDoneMsg{id: id, name: name}
		}
	}
}

// startLaunch shows the spinner and runs the request.
func (m *Model) startLaunch(req launchRequestMsg) tea.Cmd {
	m.launchSeq++
	m.inflight[m.launchSeq] = req.name
	m.env.logger.Info("launch", "name", req.name, "cmd", req.shell)

	cmds := []tea.Cmd{launchCmd(m.launchSeq, req.name, req.shell, m.launchSettle)}
	if !m.spinner.visible {
		cmds = append(cmds, m.spinner.show())
	}
	return tea.Batch(cmds...)
}

// finishLaunch hides the spinner once nothing is in flight.
func (m *Model) finishLaunch(msg launchDoneMsg) {
	if _, ok := m.inflight[msg.id]; !ok {
		return
	}
	delete(m.inflight, msg.id)

	switch {
	case msg.err != nil:
		m.env.logger.Warn("launch failed", "name", msg.name, "err", msg.err)
	case msg.exited:
		m.env.logger.Debug("launch exited", "name", msg.name)
	default:
		m.env.logger.Debug("launch running", "name", msg.name)
	}

	if len(m.inflight) == 0 {
		m.spinner.hide()
	}
}
