package world

import (
	"sync"

	"github.com/roccanera/mud/internal/game"
)

// State is the single source of truth for all mutable facts about the
// world: room item sets, door states, trigger flags, monster and NPC
// tracking, and connected player records. The catalog underneath is never
// written; State layers overlays on top of it, seeded lazily on first
// read. All access goes through State's methods, which take the lock;
// command handling and the periodic ticks share these maps.
type State struct {
	mu      sync.RWMutex
	catalog *game.Catalog

	startRoom string

	players map[string]*Player

	roomItems  map[string]map[string]bool
	doorStates map[doorKey]game.DoorState
	triggers   map[string]bool

	monsterRooms map[string]string
	monsterHp    map[string]int
	npcRooms     map[string]string
}

// NewState builds the runtime state over a catalog. Monster and NPC
// locations are seeded eagerly so room listings work before any combat;
// item sets and door states seed lazily on first read.
func NewState(catalog *game.Catalog, startRoom string) *State {
	s := &State{
		catalog:      catalog,
		startRoom:    startRoom,
		players:      map[string]*Player{},
		roomItems:    map[string]map[string]bool{},
		doorStates:   map[doorKey]game.DoorState{},
		triggers:     map[string]bool{},
		monsterRooms: map[string]string{},
		monsterHp:    map[string]int{},
		npcRooms:     map[string]string{},
	}

	for id, m := range catalog.Monsters.GetAll() {
		s.monsterRooms[id.String()] = m.RoomId
	}
	for id, n := range catalog.NPCs.GetAll() {
		s.npcRooms[id.String()] = n.RoomId
	}

	return s
}

// Catalog exposes the read-only definitions backing this state.
func (s *State) Catalog() *game.Catalog {
	return s.catalog
}

// StartRoom is where new players appear and where the defeated respawn.
func (s *State) StartRoom() string {
	return s.startRoom
}
