package respawn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/roccanera/mud/internal/world"
)

const (
	DefaultItemDelay    = 60 * time.Second
	DefaultMonsterDelay = 120 * time.Second
)

type itemEntry struct {
	roomId string
	due    time.Time
}

// Tracker schedules defeated monsters and picked-up items to reappear
// in the world after their respawn delay elapses.
type Tracker struct {
	mu    sync.Mutex
	state *world.State

	itemDelay    time.Duration
	monsterDelay time.Duration
	now          func() time.Time

	items    map[string]itemEntry
	monsters map[string]time.Time
}

type TrackerOpt func(*Tracker)

// WithItemDelay overrides the default delay for items without their own.
func WithItemDelay(d time.Duration) TrackerOpt {
	return func(t *Tracker) {
		t.itemDelay = d
	}
}

// WithMonsterDelay overrides the default delay for monsters without their own.
func WithMonsterDelay(d time.Duration) TrackerOpt {
	return func(t *Tracker) {
		t.monsterDelay = d
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) TrackerOpt {
	return func(t *Tracker) {
		t.now = now
	}
}

func NewTracker(state *world.State, opts ...TrackerOpt) *Tracker {
	t := &Tracker{
		state:        state,
		itemDelay:    DefaultItemDelay,
		monsterDelay: DefaultMonsterDelay,
		now:          time.Now,
		items:        map[string]itemEntry{},
		monsters:     map[string]time.Time{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TrackItemPickup schedules an item to reappear in the room it was taken
// from. Re-tracking the same item replaces the earlier schedule.
func (t *Tracker) TrackItemPickup(itemId, roomId string) {
	delay := t.itemDelay
	if item := t.state.Catalog().Item(itemId); item != nil {
		delay = item.RespawnDelay(t.itemDelay)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.items[itemId] = itemEntry{roomId: roomId, due: t.now().Add(delay)}
}

// TrackMonsterDefeat schedules a monster to return to its home room at
// full health. Re-tracking replaces the earlier schedule.
func (t *Tracker) TrackMonsterDefeat(monsterId string) {
	delay := t.monsterDelay
	if def := t.state.Catalog().Monster(monsterId); def != nil {
		delay = def.RespawnDelay(t.monsterDelay)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.monsters[monsterId] = t.now().Add(delay)
}

// RespawnedItem reports an item put back into its origin room.
type RespawnedItem struct {
	ItemId string
	RoomId string
}

// RespawnedMonster reports a monster restored to full health.
type RespawnedMonster struct {
	MonsterId string
	RoomId    string
}

// Sweep puts back every tracked item and monster whose delay has
// elapsed, returning what respawned so the caller may notify observers.
func (t *Tracker) Sweep() ([]RespawnedItem, []RespawnedMonster) {
	t.mu.Lock()
	now := t.now()

	var items []RespawnedItem
	for id, entry := range t.items {
		if !entry.due.After(now) {
			items = append(items, RespawnedItem{ItemId: id, RoomId: entry.roomId})
			delete(t.items, id)
		}
	}

	var dueMonsters []string
	for id, due := range t.monsters {
		if !due.After(now) {
			dueMonsters = append(dueMonsters, id)
			delete(t.monsters, id)
		}
	}
	t.mu.Unlock()

	for _, item := range items {
		t.state.AddItemToRoom(item.RoomId, item.ItemId)
	}

	var monsters []RespawnedMonster
	for _, id := range dueMonsters {
		def := t.state.Catalog().Monster(id)
		if def == nil {
			continue
		}
		t.state.SetMonsterHP(id, def.MaxHp)
		t.state.MoveMonster(id, def.RoomId)
		monsters = append(monsters, RespawnedMonster{MonsterId: id, RoomId: def.RoomId})
	}

	return items, monsters
}

// Tick runs a sweep on the periodic driver.
func (t *Tracker) Tick(ctx context.Context) error {
	items, monsters := t.Sweep()

	for _, item := range items {
		slog.DebugContext(ctx, "item respawned", "item", item.ItemId, "room", item.RoomId)
	}
	for _, monster := range monsters {
		slog.DebugContext(ctx, "monster respawned", "monster", monster.MonsterId, "room", monster.RoomId)
	}

	return nil
}
