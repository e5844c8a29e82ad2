package combat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/world"
)

// HP a dead player wakes up with in the start room.
const deathRespawnHp = 2

var (
	ErrPlayerInCombat  = errors.New("player already in combat")
	ErrMonsterInCombat = errors.New("monster already in combat")
	ErrMonsterDead     = errors.New("monster is dead")
	ErrNotInRoom       = errors.New("monster is not here")
	ErrNotInCombat     = errors.New("player not in combat")
)

// MessagePublisher sends combat messages to players.
type MessagePublisher interface {
	SendToPlayer(playerId string, msg string)
	SendToRoom(roomId string, msg string, exclude ...string)
}

// RespawnScheduler records defeated monsters for later respawn.
type RespawnScheduler interface {
	TrackMonsterDefeat(monsterId string)
}

// Manager owns every active combat session and resolves expired turns
// on each tick. Sessions advance on the clock, not on player input: a
// player who queues nothing attacks by default when their turn expires.
type Manager struct {
	mu        sync.Mutex
	state     *world.State
	pub       MessagePublisher
	respawner RespawnScheduler

	turnDuration time.Duration
	now          func() time.Time

	sessions     map[string]*Session
	playerIndex  map[string]string
	monsterIndex map[string]string
}

type ManagerOpt func(*Manager)

// WithTurnDuration overrides how long each combat turn lasts.
func WithTurnDuration(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		m.turnDuration = d
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ManagerOpt {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(state *world.State, pub MessagePublisher, respawner RespawnScheduler, opts ...ManagerOpt) *Manager {
	m := &Manager{
		state:        state,
		pub:          pub,
		respawner:    respawner,
		turnDuration: DefaultTurnDuration,
		now:          time.Now,
		sessions:     map[string]*Session{},
		playerIndex:  map[string]string{},
		monsterIndex: map[string]string{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StartCombat opens a session between a player and a monster in the
// player's room. Each side can be in at most one session; a second
// start for either is rejected.
func (m *Manager) StartCombat(playerId, monsterId string) (string, error) {
	player, ok := m.state.PlayerSnapshot(playerId)
	if !ok {
		return "", fmt.Errorf("unknown player %q", playerId)
	}

	def := m.state.Catalog().Monster(monsterId)
	if def == nil {
		return "", fmt.Errorf("unknown monster %q", monsterId)
	}

	if room, _ := m.state.MonsterLocation(monsterId); room != player.RoomId {
		return "", ErrNotInRoom
	}
	if hp, _ := m.state.MonsterHP(monsterId); hp <= 0 {
		return "", ErrMonsterDead
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.playerIndex[playerId]; busy {
		return "", ErrPlayerInCombat
	}
	if _, busy := m.monsterIndex[monsterId]; busy {
		return "", ErrMonsterInCombat
	}

	s := &Session{
		Id:            uuid.NewString(),
		PlayerId:      playerId,
		MonsterId:     monsterId,
		RoomId:        player.RoomId,
		CurrentTurn:   TurnPlayer,
		TurnStartedAt: m.now(),
	}

	m.sessions[s.Id] = s
	m.playerIndex[playerId] = s.Id
	m.monsterIndex[monsterId] = s.Id
	m.state.WithPlayer(playerId, func(p *world.Player) { p.CombatId = s.Id })

	m.pub.SendToPlayer(playerId, fmt.Sprintf("Ti lanci all'attacco contro %s!", def.Name))
	m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s attacca %s!", player.Name, def.Name), playerId)

	return s.Id, nil
}

// QueueAction stores the player's action for their next turn. Queueing
// again before the turn resolves replaces the earlier action.
func (m *Manager) QueueAction(playerId string, action QueuedAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionForPlayer(playerId)
	if s == nil {
		return ErrNotInCombat
	}

	s.queued = &action
	return nil
}

// QueueBonusItem attaches a consumable to the player's next turn
// without disturbing the queued primary action.
func (m *Manager) QueueBonusItem(playerId, itemId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionForPlayer(playerId)
	if s == nil {
		return ErrNotInCombat
	}

	if s.queued == nil {
		s.queued = &QueuedAction{Primary: ActionAttack}
	}
	s.queued.BonusItemId = itemId
	return nil
}

// PlayerInCombat reports whether the player has an active session.
func (m *Manager) PlayerInCombat(playerId string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionForPlayer(playerId) != nil
}

// MonsterInCombat reports whether the monster has an active session.
func (m *Manager) MonsterInCombat(monsterId string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, busy := m.monsterIndex[monsterId]
	return busy
}

// SessionForPlayer returns a copy of the player's active session.
func (m *Manager) SessionForPlayer(playerId string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionForPlayer(playerId)
	if s == nil {
		return Session{}, false
	}
	return *s, true
}

func (m *Manager) sessionForPlayer(playerId string) *Session {
	id, ok := m.playerIndex[playerId]
	if !ok {
		return nil
	}
	return m.sessions[id]
}

// EndCombatForPlayer tears down the player's session, if any. Used on
// disconnect, where the fight cannot continue.
func (m *Manager) EndCombatForPlayer(playerId string, reason EndReason) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionForPlayer(playerId)
	if s == nil {
		return false
	}

	m.removeSession(s)
	return true
}

// removeSession clears the session and both actor indexes. Caller
// holds the lock.
func (m *Manager) removeSession(s *Session) {
	delete(m.sessions, s.Id)
	delete(m.playerIndex, s.PlayerId)
	delete(m.monsterIndex, s.MonsterId)
	m.state.WithPlayer(s.PlayerId, func(p *world.Player) { p.CombatId = "" })
}

// Tick resolves every session whose current turn has expired. Combat
// advances here regardless of player input.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for _, s := range m.sessions {
		if !s.turnExpired(now, m.turnDuration) {
			continue
		}

		var ended bool
		if s.CurrentTurn == TurnPlayer {
			ended = m.resolvePlayerTurn(ctx, s)
		} else {
			ended = m.resolveMonsterTurn(ctx, s)
		}

		if !ended {
			if s.CurrentTurn == TurnPlayer {
				s.CurrentTurn = TurnMonster
			} else {
				s.CurrentTurn = TurnPlayer
			}
			s.TurnStartedAt = now
			s.TurnNumber++
		}
	}

	return nil
}

// resolvePlayerTurn applies the player's queued action, reporting
// whether the session ended. Caller holds the lock.
func (m *Manager) resolvePlayerTurn(ctx context.Context, s *Session) bool {
	player, ok := m.state.PlayerSnapshot(s.PlayerId)
	if !ok {
		m.removeSession(s)
		return true
	}

	def := m.state.Catalog().Monster(s.MonsterId)
	if def == nil {
		slog.WarnContext(ctx, "combat target missing from catalog", "monster", s.MonsterId)
		m.removeSession(s)
		return true
	}

	action := s.takeQueuedAction()

	switch action.Primary {
	case ActionDefend:
		s.PlayerDefending = true
		m.pub.SendToPlayer(s.PlayerId, "Ti metti in posizione di difesa.")
		m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s si mette in posizione di difesa.", player.Name), s.PlayerId)

	case ActionFlee:
		m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Fuggi dal combattimento contro %s!", def.Name))
		m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s fugge dal combattimento!", player.Name), s.PlayerId)
		m.removeSession(s)
		return true

	default:
		stats := player.EffectiveStats(m.state.Catalog().Item)
		damage, used := halveIfDefending(attackDamage(stats.Attack, def.Defense), s.MonsterDefending)
		if used {
			s.MonsterDefending = false
		}

		hp, _ := m.state.DamageMonster(s.MonsterId, damage)
		m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Colpisci %s per %d danni.", def.Name, damage))
		m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s colpisce %s.", player.Name, def.Name), s.PlayerId)

		if hp <= 0 {
			m.finishMonsterDied(s, def)
			return true
		}
	}

	if action.BonusItemId != "" {
		m.applyBonusItem(s, action.BonusItemId)
	}

	return false
}

// resolveMonsterTurn applies the monster's attack, reporting whether
// the session ended. Caller holds the lock.
func (m *Manager) resolveMonsterTurn(ctx context.Context, s *Session) bool {
	player, ok := m.state.PlayerSnapshot(s.PlayerId)
	if !ok {
		m.removeSession(s)
		return true
	}

	def := m.state.Catalog().Monster(s.MonsterId)
	if def == nil {
		m.removeSession(s)
		return true
	}

	stats := player.EffectiveStats(m.state.Catalog().Item)
	damage, used := halveIfDefending(attackDamage(def.Attack, stats.Defense), s.PlayerDefending)
	if used {
		s.PlayerDefending = false
		m.pub.SendToPlayer(s.PlayerId, "La tua difesa attutisce il colpo.")
	}

	var hp int
	m.state.WithPlayer(s.PlayerId, func(p *world.Player) {
		p.CurrentHp -= damage
		if p.CurrentHp < 0 {
			p.CurrentHp = 0
		}
		hp = p.CurrentHp
	})

	m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("%s ti colpisce per %d danni.", def.Name, damage))
	m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s colpisce %s.", def.Name, player.Name), s.PlayerId)

	if hp <= 0 {
		m.finishPlayerDied(ctx, s, def)
		return true
	}

	return false
}

// finishMonsterDied awards experience, drops the monster's loot in the
// room and hands it to the respawn scheduler. Caller holds the lock.
func (m *Manager) finishMonsterDied(s *Session, def *game.Monster) {
	var playerName string
	var leveledUp bool
	var newLevel int
	m.state.WithPlayer(s.PlayerId, func(p *world.Player) {
		before := p.Level()
		p.Experience = game.AddExperience(p.Experience, def.ExperienceDrop)
		newLevel = p.Level()
		leveledUp = newLevel > before
		playerName = p.Name
	})

	for _, itemId := range def.Inventory {
		m.state.AddItemToRoom(s.RoomId, itemId)
	}

	m.respawner.TrackMonsterDefeat(s.MonsterId)

	m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Hai sconfitto %s!", def.Name))
	m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Guadagni %d punti esperienza.", def.ExperienceDrop))
	if leveledUp {
		m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Sei salito al livello %d!", newLevel))
	}
	m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s ha sconfitto %s!", playerName, def.Name), s.PlayerId)

	m.removeSession(s)
}

// finishPlayerDied drops the player's whole inventory where they fell
// and sends them back to the start room barely alive. Caller holds the
// lock.
func (m *Manager) finishPlayerDied(ctx context.Context, s *Session, def *game.Monster) {
	var dropped []string
	var playerName string
	m.state.WithPlayer(s.PlayerId, func(p *world.Player) {
		dropped = p.Inventory
		p.Inventory = nil
		p.Equipment = game.Equipment{}
		p.CurrentHp = deathRespawnHp
		playerName = p.Name
	})

	for _, itemId := range dropped {
		m.state.AddItemToRoom(s.RoomId, itemId)
	}

	m.pub.SendToRoom(s.RoomId, fmt.Sprintf("%s è stato sconfitto da %s!", playerName, def.Name), s.PlayerId)

	m.state.MovePlayer(s.PlayerId, m.state.StartRoom())
	m.pub.SendToPlayer(s.PlayerId, "Sei stato sconfitto! Ti risvegli dolorante nel punto di partenza, senza i tuoi averi.")

	slog.InfoContext(ctx, "player defeated", "player", s.PlayerId, "monster", s.MonsterId)

	m.removeSession(s)
}

// applyBonusItem consumes a queued heal consumable, healing up to the
// player's effective max HP. Anything without a heal effect survives the
// turn untouched. Caller holds the lock.
func (m *Manager) applyBonusItem(s *Session, itemId string) {
	item := m.state.Catalog().Item(itemId)
	if item == nil || item.Effect == nil || item.Effect.Type != game.EffectHeal {
		m.pub.SendToPlayer(s.PlayerId, "L'oggetto non è più disponibile o non funziona.")
		return
	}

	var healed int
	var had bool
	m.state.WithPlayer(s.PlayerId, func(p *world.Player) {
		if !p.RemoveItem(itemId) {
			return
		}
		had = true

		maxHp := p.EffectiveStats(m.state.Catalog().Item).MaxHp
		before := p.CurrentHp
		p.CurrentHp += item.Effect.Value
		if p.CurrentHp > maxHp {
			p.CurrentHp = maxHp
		}
		healed = p.CurrentHp - before
	})

	if had {
		m.pub.SendToPlayer(s.PlayerId, fmt.Sprintf("Consumi %s e recuperi %d punti ferita.", item.Name, healed))
	}
}
