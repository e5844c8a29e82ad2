package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roccanera/mud/internal/clock"
	"github.com/roccanera/mud/internal/combat"
	"github.com/roccanera/mud/internal/commands"
	"github.com/roccanera/mud/internal/messaging"
	"github.com/roccanera/mud/internal/respawn"
	"github.com/roccanera/mud/internal/world"
)

// Manager creates a Session per accepted connection and tears down all
// player presence when the connection ends.
type Manager struct {
	state    *world.State
	registry *commands.Registry
	combat   *combat.Manager
	respawn  *respawn.Tracker
	clock    *clock.Manager
	pub      *messaging.Publisher
	nats     *messaging.NatsServer
}

func NewManager(
	state *world.State,
	registry *commands.Registry,
	cm *combat.Manager,
	rt *respawn.Tracker,
	ck *clock.Manager,
	pub *messaging.Publisher,
	nats *messaging.NatsServer,
) *Manager {
	return &Manager{
		state:    state,
		registry: registry,
		combat:   cm,
		respawn:  rt,
		clock:    ck,
		pub:      pub,
		nats:     nats,
	}
}

// RunSession owns one connection from greeting to disconnect. It backs
// the listener's AcceptConnection callback.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	name, err := promptName(conn)
	if err != nil {
		return fmt.Errorf("reading player name: %w", err)
	}

	id := uuid.NewString()
	m.state.AddPlayer(id)
	if name != "" {
		m.state.WithPlayer(id, func(p *world.Player) { p.Name = name })
	}

	player, _ := m.state.PlayerSnapshot(id)
	slog.InfoContext(ctx, "player connected", "id", id, "name", player.Name)

	s := &Session{
		id:   id,
		conn: conn,
		mgr:  m,
		msgs: make(chan []byte, 16),
	}

	unsubscribe, err := m.nats.Subscribe(messaging.PlayerSubject(id), func(data []byte) {
		select {
		case s.msgs <- data:
		default:
			// A session that stopped draining loses messages rather
			// than blocking the bus.
		}
	})
	if err != nil {
		m.state.RemovePlayer(id)
		return fmt.Errorf("subscribing player subject: %w", err)
	}

	defer func() {
		unsubscribe()
		m.endSession(ctx, s)
	}()

	m.pub.SendToRoom(player.RoomId, fmt.Sprintf("%s è arrivato.", player.Name), id)

	playErr := s.play(ctx)
	if playErr != nil {
		slog.WarnContext(ctx, "player session ended with error", "id", id, "error", playErr)
	}
	return playErr
}

// endSession synchronously ends any combat the player owns and removes
// them from all presence listings. Respawn timers for entities already
// detached from the player keep running.
func (m *Manager) endSession(ctx context.Context, s *Session) {
	player, ok := m.state.PlayerSnapshot(s.id)

	m.combat.EndCombatForPlayer(s.id, combat.ReasonDisconnected)
	m.state.RemovePlayer(s.id)

	if ok {
		m.pub.SendToRoom(player.RoomId, fmt.Sprintf("%s se n'è andato.", player.Name), s.id)
	}
	slog.InfoContext(ctx, "player disconnected", "id", s.id)
}
