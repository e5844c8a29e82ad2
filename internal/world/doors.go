package world

import "github.com/roccanera/mud/internal/game"

// doorKey identifies one side of a passage.
type doorKey struct {
	roomId    string
	direction game.Direction
}

// DoorState returns the live state of the door at (roomId, direction),
// seeding from the catalog definition on first read. The second return
// is false when no door exists there.
func (s *State) DoorState(roomId string, dir game.Direction) (game.DoorState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doorState(roomId, dir)
}

func (s *State) doorState(roomId string, dir game.Direction) (game.DoorState, bool) {
	key := doorKey{roomId: roomId, direction: dir}
	if state, ok := s.doorStates[key]; ok {
		return state, true
	}

	room := s.catalog.Room(roomId)
	if room == nil {
		return "", false
	}
	def, ok := room.Door(dir)
	if !ok {
		return "", false
	}

	s.doorStates[key] = def.InitialState
	return def.InitialState, true
}

// SetDoorState writes the door state for this side of the passage and
// mirrors it to the adjoining room's opposite side. A door is one
// physical object; without the mirror the two rooms would disagree.
func (s *State) SetDoorState(roomId string, dir game.Direction, state game.DoorState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doorStates[doorKey{roomId: roomId, direction: dir}] = state

	room := s.catalog.Room(roomId)
	if room == nil {
		return
	}
	if dest, ok := room.Exit(dir); ok {
		s.doorStates[doorKey{roomId: dest, direction: dir.Opposite()}] = state
	}
}

// DoorDef returns the catalog definition of the door, if one exists.
func (s *State) DoorDef(roomId string, dir game.Direction) (*game.DoorDef, bool) {
	room := s.catalog.Room(roomId)
	if room == nil {
		return nil, false
	}
	return room.Door(dir)
}
