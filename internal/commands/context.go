package commands

import (
	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/world"
)

// TimeInfo carries the rendered game clock for the time command.
type TimeInfo struct {
	PhaseName  string
	TimeString string
}

// Context is the read-only snapshot a handler evaluates against. The
// orchestrator builds one per command from the world state; World is
// included for registry reads (doors, triggers, room items) but
// handlers must not mutate through it.
type Context struct {
	World *world.State

	PlayerId   string
	PlayerName string
	RoomId     string

	// Verb is the actual token the player typed, for verb-sensitive
	// interactables.
	Verb string

	Inventory  []string
	Equipment  game.Equipment
	MaxWeight  int
	Experience int
	CurrentHp  int
	Stats      game.EffectiveStats

	OtherPlayers []string
	NPCs         []world.NPCInfo
	Monsters     []world.MonsterInfo

	InCombat bool
	GameTime TimeInfo
}

// Catalog is a shorthand for the world's immutable catalog.
func (c *Context) Catalog() *game.Catalog {
	return c.World.Catalog()
}

// Room returns the player's current room definition.
func (c *Context) Room() *game.Room {
	return c.Catalog().Room(c.RoomId)
}

// findInventoryItem returns the first inventory item whose name equals
// the argument, ignoring case and accents.
func (c *Context) findInventoryItem(name string) (string, *game.Item) {
	for _, id := range c.Inventory {
		item := c.Catalog().Item(id)
		if item != nil && nameEquals(item.Name, name) {
			return id, item
		}
	}
	return "", nil
}

// findInventoryItemLoose matches by substring, optionally filtered by
// item type. Consumable and equip commands use this looser match.
func (c *Context) findInventoryItemLoose(name, itemType string) (string, *game.Item) {
	for _, id := range c.Inventory {
		item := c.Catalog().Item(id)
		if item == nil {
			continue
		}
		if itemType != "" && item.Type != itemType {
			continue
		}
		if nameContains(item.Name, name) {
			return id, item
		}
	}
	return "", nil
}

// findRoomItem returns the first item lying in the room whose name
// equals the argument, ignoring case and accents.
func (c *Context) findRoomItem(name string) (string, *game.Item) {
	for _, id := range c.World.RoomItems(c.RoomId) {
		item := c.Catalog().Item(id)
		if item != nil && nameEquals(item.Name, name) {
			return id, item
		}
	}
	return "", nil
}

// findMonster matches a live-or-dead monster in the room by name
// substring.
func (c *Context) findMonster(name string) (world.MonsterInfo, bool) {
	for _, m := range c.Monsters {
		if nameContains(m.Name, name) {
			return m, true
		}
	}
	return world.MonsterInfo{}, false
}

// findNPC matches an NPC in the room by name substring.
func (c *Context) findNPC(name string) (world.NPCInfo, bool) {
	for _, n := range c.NPCs {
		if nameContains(n.Name, name) {
			return n, true
		}
	}
	return world.NPCInfo{}, false
}
