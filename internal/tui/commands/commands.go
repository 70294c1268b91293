// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"coworkers/internal/draft"
)

// SubmitResultMsg is sent when a submission finishes.
type SubmitResultMsg struct {
	Outcome draft.Outcome
}

// SubmitTask runs the submission lifecycle off the UI loop.
func SubmitTask(ctl *draft.Controller) tea.Cmd {
	return func() tea.Msg {
		return SubmitResultMsg{Outcome: ctl.Submit(context.Background())}
	}
}
