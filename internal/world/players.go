package world

import (
	"sort"

	"github.com/roccanera/mud/internal/game"
)

// Default stats for a freshly connected player.
const (
	DefaultPlayerName = "Anonimo"
	DefaultMaxWeight  = 50
	DefaultMaxHp      = 100
	DefaultAttack     = 10
	DefaultDefense    = 5
)

// Player is the runtime record for one connected session. It exists from
// connection open to disconnect; nothing about it is persisted. Handlers
// only ever see copies (Snapshot); mutation goes through State methods
// so it happens under the world lock, which is what lets the combat tick
// and the session goroutine touch the same record safely.
type Player struct {
	Id   string
	Name string

	RoomId string

	// Inventory preserves acquisition order
	Inventory []string
	MaxWeight int

	Experience int

	BaseMaxHp   int
	CurrentHp   int
	BaseAttack  int
	BaseDefense int

	Equipment game.Equipment

	// CombatId is the active combat session, empty when out of combat
	CombatId string
}

// Level derives the player's level from total experience.
func (p *Player) Level() int {
	return game.CalculateLevel(p.Experience)
}

// EffectiveStats folds equipment bonuses into the player's base stats.
func (p *Player) EffectiveStats(lookup func(string) *game.Item) game.EffectiveStats {
	return game.CalculateEffectiveStats(p.BaseAttack, p.BaseDefense, p.BaseMaxHp, p.Equipment, lookup)
}

// HasItem reports whether the item id is in the player's inventory.
func (p *Player) HasItem(itemId string) bool {
	for _, id := range p.Inventory {
		if id == itemId {
			return true
		}
	}
	return false
}

// RemoveItem takes the first occurrence of the item out of the
// inventory, reporting whether it was present.
func (p *Player) RemoveItem(itemId string) bool {
	for i, id := range p.Inventory {
		if id == itemId {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// AddPlayer registers a new session with default stats in the start room.
func (s *State) AddPlayer(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Player{
		Id:          id,
		Name:        DefaultPlayerName,
		RoomId:      s.startRoom,
		MaxWeight:   DefaultMaxWeight,
		BaseMaxHp:   DefaultMaxHp,
		CurrentHp:   DefaultMaxHp,
		BaseAttack:  DefaultAttack,
		BaseDefense: DefaultDefense,
		Equipment:   game.Equipment{},
	}
	s.players[id] = p
	return p
}

// RemovePlayer drops the session record, reporting whether it existed.
func (s *State) RemovePlayer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return false
	}
	delete(s.players, id)
	return true
}

// PlayerSnapshot returns a copy of the player record for read-only use.
// The inventory and equipment are copied so handlers cannot alias live
// state.
func (s *State) PlayerSnapshot(id string) (Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return Player{}, false
	}

	snap := *p
	snap.Inventory = append([]string(nil), p.Inventory...)
	snap.Equipment = p.Equipment.Clone()
	return snap, true
}

// WithPlayer runs fn on the live player record under the world lock.
// Returns false if the player is gone (disconnected).
func (s *State) WithPlayer(id string, fn func(*Player)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return false
	}
	fn(p)
	return true
}

// PlayersInRoom returns the names of players in the room, excluding one
// id (usually the observer), sorted for stable listings.
func (s *State) PlayersInRoom(roomId, excludeId string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for id, p := range s.players {
		if id == excludeId || p.RoomId != roomId {
			continue
		}
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// PlayerIdsInRoom returns the session ids present in the room, excluding
// one id. Used for room broadcasts.
func (s *State) PlayerIdsInRoom(roomId, excludeId string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, p := range s.players {
		if id == excludeId || p.RoomId != roomId {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AllPlayerIds returns every connected session id.
func (s *State) AllPlayerIds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MovePlayer relocates a player, reporting whether the session exists.
func (s *State) MovePlayer(id, roomId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return false
	}
	p.RoomId = roomId
	return true
}
