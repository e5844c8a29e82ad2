package world

import (
	"sort"

	"github.com/roccanera/mud/internal/game"
)

// MonsterInfo is the live view of a monster for room listings and combat.
type MonsterInfo struct {
	Id        string
	Name      string
	CurrentHp int
	MaxHp     int
}

// Alive reports whether the monster can be seen and fought. HP zero means
// defeated and awaiting respawn, not removed.
func (m MonsterInfo) Alive() bool {
	return m.CurrentHp > 0
}

// NPCInfo is the live view of an NPC for room listings.
type NPCInfo struct {
	Id   string
	Name string
}

// MonstersInRoom returns the monsters currently located in the room with
// their live HP, sorted by id for stable listings.
func (s *State) MonstersInRoom(roomId string) []MonsterInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []MonsterInfo
	for id, loc := range s.monsterRooms {
		if loc != roomId {
			continue
		}
		def := s.catalog.Monster(id)
		if def == nil {
			continue
		}
		out = append(out, MonsterInfo{
			Id:        id,
			Name:      def.Name,
			CurrentHp: s.liveMonsterHp(id, def),
			MaxHp:     def.MaxHp,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// NPCsInRoom returns the NPCs currently located in the room, sorted by id.
func (s *State) NPCsInRoom(roomId string) []NPCInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []NPCInfo
	for id, loc := range s.npcRooms {
		if loc != roomId {
			continue
		}
		def := s.catalog.NPC(id)
		if def == nil {
			continue
		}
		out = append(out, NPCInfo{Id: id, Name: def.Name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// MoveMonster relocates a monster, reporting whether it is tracked.
func (s *State) MoveMonster(monsterId, roomId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.monsterRooms[monsterId]; !ok {
		return false
	}
	s.monsterRooms[monsterId] = roomId
	return true
}

// MoveNPC relocates an NPC, reporting whether it is tracked.
func (s *State) MoveNPC(npcId, roomId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.npcRooms[npcId]; !ok {
		return false
	}
	s.npcRooms[npcId] = roomId
	return true
}

// MonsterLocation returns a monster's current room.
func (s *State) MonsterLocation(monsterId string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.monsterRooms[monsterId]
	return loc, ok
}

// liveMonsterHp reads current HP, defaulting to the catalog maximum when
// the monster has never been damaged. Caller must hold the lock.
func (s *State) liveMonsterHp(monsterId string, def *game.Monster) int {
	if hp, ok := s.monsterHp[monsterId]; ok {
		return hp
	}
	return def.MaxHp
}

// MonsterHP returns a monster's current HP; unknown ids report false.
func (s *State) MonsterHP(monsterId string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def := s.catalog.Monster(monsterId)
	if def == nil {
		return 0, false
	}
	return s.liveMonsterHp(monsterId, def), true
}

// SetMonsterHP writes a monster's HP, clamped to [0, maxHp]. Returns the
// stored value; unknown ids report false.
func (s *State) SetMonsterHP(monsterId string, hp int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.catalog.Monster(monsterId)
	if def == nil {
		return 0, false
	}

	if hp < 0 {
		hp = 0
	}
	if hp > def.MaxHp {
		hp = def.MaxHp
	}
	s.monsterHp[monsterId] = hp
	return hp, true
}

// DamageMonster subtracts damage from a monster's HP under one lock
// acquisition and returns the remaining HP.
func (s *State) DamageMonster(monsterId string, damage int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.catalog.Monster(monsterId)
	if def == nil {
		return 0, false
	}

	hp := s.liveMonsterHp(monsterId, def) - damage
	if hp < 0 {
		hp = 0
	}
	s.monsterHp[monsterId] = hp
	return hp, true
}
