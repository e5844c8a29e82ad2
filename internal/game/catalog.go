package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/roccanera/mud/internal/storage"
)

// Catalog bundles the read-only world definitions. It is loaded once at
// startup; all runtime mutation happens in overlays keyed by these ids.
type Catalog struct {
	Rooms    storage.Storer[*Room]
	Items    storage.Storer[*Item]
	Monsters storage.Storer[*Monster]
	NPCs     storage.Storer[*NPC]
}

// Room returns the room definition, or nil if the id is unknown.
func (c *Catalog) Room(id string) *Room {
	return c.Rooms.Get(storage.Identifier(id))
}

// Item returns the item definition, or nil if the id is unknown.
func (c *Catalog) Item(id string) *Item {
	return c.Items.Get(storage.Identifier(id))
}

// Monster returns the monster definition, or nil if the id is unknown.
func (c *Catalog) Monster(id string) *Monster {
	return c.Monsters.Get(storage.Identifier(id))
}

// NPC returns the NPC definition, or nil if the id is unknown.
func (c *Catalog) NPC(id string) *NPC {
	return c.NPCs.Get(storage.Identifier(id))
}

// CheckReferences verifies that every cross-reference in the catalog
// points at an entry that exists: exits and hidden exits to rooms, door
// keys and room/monster item lists to items, monster and NPC rooms.
func (c *Catalog) CheckReferences() error {
	el := errors.NewErrorList()

	roomExists := func(id string) bool { return c.Room(id) != nil }
	itemExists := func(id string) bool { return c.Item(id) != nil }

	for roomId, room := range c.Rooms.GetAll() {
		for dir, dest := range room.Exits {
			if !roomExists(dest) {
				el.Add(fmt.Errorf("room %s: exit %s references unknown room %q", roomId, dir, dest))
			}
		}
		for dir, hx := range room.HiddenExits {
			if !roomExists(hx.RoomId) {
				el.Add(fmt.Errorf("room %s: hidden exit %s references unknown room %q", roomId, dir, hx.RoomId))
			}
		}
		for dir, door := range room.Doors {
			if door.KeyId != "" && !itemExists(door.KeyId) {
				el.Add(fmt.Errorf("room %s: door %s references unknown key %q", roomId, dir, door.KeyId))
			}
		}
		for _, itemId := range room.Items {
			if !itemExists(itemId) {
				el.Add(fmt.Errorf("room %s: references unknown item %q", roomId, itemId))
			}
		}
	}

	for monsterId, m := range c.Monsters.GetAll() {
		if !roomExists(m.RoomId) {
			el.Add(fmt.Errorf("monster %s: references unknown room %q", monsterId, m.RoomId))
		}
		for _, itemId := range m.Inventory {
			if !itemExists(itemId) {
				el.Add(fmt.Errorf("monster %s: references unknown item %q", monsterId, itemId))
			}
		}
	}

	for npcId, n := range c.NPCs.GetAll() {
		if !roomExists(n.RoomId) {
			el.Add(fmt.Errorf("npc %s: references unknown room %q", npcId, n.RoomId))
		}
	}

	return el.Err()
}
