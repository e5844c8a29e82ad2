package listener

import (
	"context"
	"io"
	"log/slog"
)

// SessionRunner drives a player session over an accepted connection.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter) error
}

// ConnectionManager hands accepted connections to the session layer,
// regardless of which transport produced them.
type ConnectionManager struct {
	runner SessionRunner
}

func NewConnectionManager(runner SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: runner,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.runner.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session ended", "error", err)
	}
}
