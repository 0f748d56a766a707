package logger

import (
	"GuardianesDelFuego/internal/console"
	"context"

	tea "charm.land/bubbletea/v2"
)

// Recover traps panics and reports them through FatalWithStackSkip.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		// Suppress further panics during recovery
		defer func() { _ = recover() }()

		console.SetTUIEnabled(false)

		if _, ok := r.(FatalError); ok {
			return
		}

		// We skip 2 frames: Recover + runtime.panic
		FatalWithStackSkip(ctx, 2, "panic: %v", r)
	}
}

// RecoverTUI wraps a tea.Cmd in a recovery block that uses FatalWithStackSkip.
func RecoverTUI(ctx context.Context, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		defer func() {
			if r := recover(); r != nil {
				defer func() { _ = recover() }()

				console.SetTUIEnabled(false)

				if _, ok := r.(FatalError); ok {
					return
				}

				// We skip 2 frames: closure + runtime.panic
				FatalWithStackSkip(ctx, 2, "TUI Panic: %v", r)
			}
		}()
		return cmd()
	}
}
