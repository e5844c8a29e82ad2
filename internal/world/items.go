package world

import "sort"

// roomItemSet returns the room's live item set, seeding it from the
// catalog's initial list on first access. Caller must hold the lock.
func (s *State) roomItemSet(roomId string) map[string]bool {
	set, ok := s.roomItems[roomId]
	if ok {
		return set
	}

	set = map[string]bool{}
	if room := s.catalog.Room(roomId); room != nil {
		for _, itemId := range room.Items {
			set[itemId] = true
		}
	}
	s.roomItems[roomId] = set
	return set
}

// RoomItems returns the ids of the items currently in the room, sorted
// for stable listings.
func (s *State) RoomItems(roomId string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.roomItemSet(roomId)
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ItemInRoom reports whether the item is currently present in the room.
func (s *State) ItemInRoom(roomId, itemId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roomItemSet(roomId)[itemId]
}

// AddItemToRoom places an item in the room (drop, loot, respawn).
func (s *State) AddItemToRoom(roomId, itemId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roomItemSet(roomId)[itemId] = true
}

// RemoveItemFromRoom takes an item out of the room, reporting whether it
// was there. Pickup races resolve here: only one caller sees true.
func (s *State) RemoveItemFromRoom(roomId, itemId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.roomItemSet(roomId)
	if !set[itemId] {
		return false
	}
	delete(set, itemId)
	return true
}
