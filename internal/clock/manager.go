package clock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/roccanera/mud/internal/commands"
	"github.com/roccanera/mud/internal/game"
)

// Broadcaster announces phase changes to everyone online.
type Broadcaster interface {
	BroadcastAll(msg string)
}

// Manager owns the game clock. The driver advances it one virtual
// second per tick; sessions read the current time through it.
type Manager struct {
	mu    sync.Mutex
	clock *game.Clock
	pub   Broadcaster
}

func NewManager(pub Broadcaster) *Manager {
	return &Manager{
		clock: game.NewClock(),
		pub:   pub,
	}
}

// Tick advances the clock and broadcasts when the day/night phase
// rolls over.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	phase, changed := m.clock.Advance()
	m.mu.Unlock()

	if changed {
		slog.DebugContext(ctx, "phase change", "phase", phase)
		m.pub.BroadcastAll(phase.ChangeMessage())
	}

	return nil
}

// TimeInfo renders the current phase and virtual time for display.
func (m *Manager) TimeInfo() commands.TimeInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	return commands.TimeInfo{
		PhaseName:  m.clock.Phase().Italian(),
		TimeString: m.clock.TimeString(),
	}
}
