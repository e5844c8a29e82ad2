package combat

import (
	"time"
)

// DefaultTurnDuration is how long each side's turn lasts before the
// tick resolves it.
const DefaultTurnDuration = 3 * time.Second

// Turn identifies whose turn is currently running.
type Turn string

const (
	TurnPlayer  Turn = "player"
	TurnMonster Turn = "monster"
)

// PrimaryAction is the main action a player queues for their turn.
type PrimaryAction string

const (
	ActionAttack PrimaryAction = "attack"
	ActionDefend PrimaryAction = "defend"
	ActionFlee   PrimaryAction = "flee"
)

// QueuedAction is what the player has asked to do on their next turn.
// The bonus item, when set, is a consumable applied in the same turn
// after the primary action resolves.
type QueuedAction struct {
	Primary     PrimaryAction
	BonusItemId string
}

// EndReason says why a combat session was destroyed.
type EndReason string

const (
	ReasonMonsterDied  EndReason = "monster_died"
	ReasonPlayerDied   EndReason = "player_died"
	ReasonPlayerFled   EndReason = "player_fled"
	ReasonDisconnected EndReason = "disconnected"
)

// Session is one active fight between a player and a monster instance.
// All fields are guarded by the Manager's mutex.
type Session struct {
	Id        string
	PlayerId  string
	MonsterId string
	RoomId    string

	CurrentTurn      Turn
	PlayerDefending  bool
	MonsterDefending bool

	TurnStartedAt time.Time
	TurnNumber    int

	// queued is consumed on the player's turn; nil means the default
	// attack action
	queued *QueuedAction
}

func (s *Session) turnExpired(now time.Time, d time.Duration) bool {
	return now.Sub(s.TurnStartedAt) >= d
}

// takeQueuedAction pops the queued action, falling back to a plain
// attack when the player issued nothing since the previous turn.
func (s *Session) takeQueuedAction() QueuedAction {
	if s.queued == nil {
		return QueuedAction{Primary: ActionAttack}
	}
	action := *s.queued
	s.queued = nil
	return action
}

// halveIfDefending halves damage (floored) when the defender braced,
// and reports whether the flag was consumed.
func halveIfDefending(damage int, defending bool) (int, bool) {
	if !defending {
		return damage, false
	}
	return damage / 2, true
}

// attackDamage is the base damage formula. A hit always lands for at
// least one point.
func attackDamage(attack, defense int) int {
	damage := attack - defense
	if damage < 1 {
		damage = 1
	}
	return damage
}
