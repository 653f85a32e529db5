package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"soundctl/internal/console"
)

// Run starts the poller, takes over the terminal until the operator quits,
// then stops the poller. In-flight requests are cancelled through ctx; their
// late results are discarded.
func Run(ctx context.Context, eng *console.Console, pollInterval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eng.Poller.Start(ctx, pollInterval)
	defer eng.Poller.Stop()

	p := tea.NewProgram(NewModel(ctx, eng), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
