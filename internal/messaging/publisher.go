package messaging

import (
	"log/slog"
)

// PresenceSource tells the publisher which players are where.
type PresenceSource interface {
	PlayerIdsInRoom(roomId, excludeId string) []string
	AllPlayerIds() []string
}

// Publisher delivers game messages over per-player NATS subjects. Each
// connected session subscribes to its own subject; room and global
// sends fan out to the relevant subjects.
type Publisher struct {
	server   *NatsServer
	presence PresenceSource
}

func NewPublisher(server *NatsServer, presence PresenceSource) *Publisher {
	return &Publisher{server: server, presence: presence}
}

// PlayerSubject is the NATS subject a session subscribes to.
func PlayerSubject(playerId string) string {
	return "player-" + playerId
}

// SendToPlayer delivers a message to one player. Delivery failures are
// logged, not propagated: a dropped message must never stall game
// logic.
func (p *Publisher) SendToPlayer(playerId string, msg string) {
	if err := p.server.Publish(PlayerSubject(playerId), []byte(msg)); err != nil {
		slog.Warn("publishing player message", "player", playerId, "error", err)
	}
}

// SendToRoom delivers a message to every player in the room except the
// excluded ids (usually the actor, who got their own message).
func (p *Publisher) SendToRoom(roomId string, msg string, exclude ...string) {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	for _, id := range p.presence.PlayerIdsInRoom(roomId, "") {
		if excluded[id] {
			continue
		}
		p.SendToPlayer(id, msg)
	}
}

// BroadcastAll delivers a message to every connected player. Used for
// world-wide events like day/night transitions.
func (p *Publisher) BroadcastAll(msg string) {
	for _, id := range p.presence.AllPlayerIds() {
		p.SendToPlayer(id, msg)
	}
}
