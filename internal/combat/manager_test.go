package combat

import (
	"context"
	"testing"
	"time"

	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/storage"
	"github.com/roccanera/mud/internal/world"
)

type recordingPublisher struct {
	playerMsgs map[string][]string
	roomMsgs   map[string][]string
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{
		playerMsgs: map[string][]string{},
		roomMsgs:   map[string][]string{},
	}
}

func (p *recordingPublisher) SendToPlayer(playerId string, msg string) {
	p.playerMsgs[playerId] = append(p.playerMsgs[playerId], msg)
}

func (p *recordingPublisher) SendToRoom(roomId string, msg string, exclude ...string) {
	p.roomMsgs[roomId] = append(p.roomMsgs[roomId], msg)
}

type recordingRespawner struct {
	defeats []string
}

func (r *recordingRespawner) TrackMonsterDefeat(monsterId string) {
	r.defeats = append(r.defeats, monsterId)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func combatTestState() *world.State {
	catalog := &game.Catalog{
		Rooms: storage.NewMapStore(map[storage.Identifier]*game.Room{
			"inizio": {Title: "Inizio", Description: "Il punto di partenza."},
			"grotta": {Title: "Grotta", Description: "Una grotta buia.", Exits: map[string]string{"south": "inizio"}},
		}),
		Items: storage.NewMapStore(map[storage.Identifier]*game.Item{
			"pozione": {
				Name: "Pozione", Weight: 1, Consumable: true,
				Effect: &game.ItemEffect{Type: game.EffectHeal, Value: 30},
			},
			"zanna": {Name: "Zanna", Weight: 1},
			"pergamena": {
				Name: "Pergamena", Weight: 1, Consumable: true,
				Effect: &game.ItemEffect{Type: game.EffectKnowledge, Text: "Rune antiche."},
			},
		}),
		Monsters: storage.NewMapStore(map[storage.Identifier]*game.Monster{
			"orco": {
				Name: "Orco", RoomId: "grotta",
				MaxHp: 50, Attack: 15, Defense: 8,
				ExperienceDrop: 1200, Inventory: []string{"zanna"},
			},
			"goblin": {
				Name: "Goblin", RoomId: "grotta",
				MaxHp: 10, Attack: 5, Defense: 1, ExperienceDrop: 100,
			},
		}),
		NPCs: storage.NewMapStore(map[storage.Identifier]*game.NPC{}),
	}
	return world.NewState(catalog, "inizio")
}

type combatFixture struct {
	state     *world.State
	pub       *recordingPublisher
	respawner *recordingRespawner
	clock     *fakeClock
	mgr       *Manager
}

func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()

	f := &combatFixture{
		state:     combatTestState(),
		pub:       newRecordingPublisher(),
		respawner: &recordingRespawner{},
		clock:     &fakeClock{t: time.Unix(1000, 0)},
	}
	f.mgr = NewManager(f.state, f.pub, f.respawner, WithClock(f.clock.now))

	f.state.AddPlayer("p1")
	f.state.MovePlayer("p1", "grotta")
	return f
}

// tick advances past one turn boundary and runs the manager.
func (f *combatFixture) tick(t *testing.T) {
	t.Helper()
	f.clock.advance(DefaultTurnDuration)
	if err := f.mgr.Tick(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func (f *combatFixture) playerHp(t *testing.T) int {
	t.Helper()
	p, ok := f.state.PlayerSnapshot("p1")
	if !ok {
		t.Fatal("player missing")
	}
	return p.CurrentHp
}

func TestStartCombat_AtMostOnePerActor(t *testing.T) {
	f := newCombatFixture(t)

	if _, err := f.mgr.StartCombat("p1", "orco"); err != nil {
		t.Fatalf("first start failed: %v", err)
	}

	if _, err := f.mgr.StartCombat("p1", "goblin"); err != ErrPlayerInCombat {
		t.Errorf("expected ErrPlayerInCombat, got %v", err)
	}

	f.state.AddPlayer("p2")
	f.state.MovePlayer("p2", "grotta")
	if _, err := f.mgr.StartCombat("p2", "orco"); err != ErrMonsterInCombat {
		t.Errorf("expected ErrMonsterInCombat, got %v", err)
	}
}

func TestStartCombat_MonsterElsewhere(t *testing.T) {
	f := newCombatFixture(t)
	f.state.MovePlayer("p1", "inizio")

	if _, err := f.mgr.StartCombat("p1", "orco"); err != ErrNotInRoom {
		t.Errorf("expected ErrNotInRoom, got %v", err)
	}
}

func TestStartCombat_DeadMonster(t *testing.T) {
	f := newCombatFixture(t)
	f.state.SetMonsterHP("orco", 0)

	if _, err := f.mgr.StartCombat("p1", "orco"); err != ErrMonsterDead {
		t.Errorf("expected ErrMonsterDead, got %v", err)
	}
}

func TestTick_AlternatingTurnsWithDefaultAttack(t *testing.T) {
	f := newCombatFixture(t)

	if _, err := f.mgr.StartCombat("p1", "orco"); err != nil {
		t.Fatal(err)
	}

	// Player's turn: damage = max(1, 10-8) = 2.
	f.tick(t)
	if hp, _ := f.state.MonsterHP("orco"); hp != 48 {
		t.Errorf("monster hp = %d, expected 48", hp)
	}
	if f.playerHp(t) != 100 {
		t.Errorf("player hp = %d, expected untouched 100", f.playerHp(t))
	}

	// Monster's turn: damage = max(1, 15-5) = 10.
	f.tick(t)
	if f.playerHp(t) != 90 {
		t.Errorf("player hp = %d, expected 90", f.playerHp(t))
	}
}

func TestTick_NotBeforeTurnExpiry(t *testing.T) {
	f := newCombatFixture(t)
	f.mgr.StartCombat("p1", "orco")

	f.clock.advance(DefaultTurnDuration - time.Millisecond)
	f.mgr.Tick(context.Background())

	if hp, _ := f.state.MonsterHP("orco"); hp != 50 {
		t.Errorf("monster hp = %d, turn resolved before expiry", hp)
	}
}

func TestDefend_HalvesNextMonsterHit(t *testing.T) {
	f := newCombatFixture(t)
	f.mgr.StartCombat("p1", "orco")

	if err := f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend}); err != nil {
		t.Fatal(err)
	}

	f.tick(t) // player defends
	if hp, _ := f.state.MonsterHP("orco"); hp != 50 {
		t.Errorf("monster hp = %d, defending should deal no damage", hp)
	}

	f.tick(t) // monster hits for 10/2 = 5
	if f.playerHp(t) != 95 {
		t.Errorf("player hp = %d, expected 95 with halved hit", f.playerHp(t))
	}

	// Flag resets: the next monster hit is full strength.
	f.tick(t) // player attacks
	f.tick(t) // monster hits for 10
	if f.playerHp(t) != 85 {
		t.Errorf("player hp = %d, expected 85 after full-strength hit", f.playerHp(t))
	}
}

func TestQueuedAction_ConsumedToDefault(t *testing.T) {
	f := newCombatFixture(t)
	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend})

	f.tick(t) // defend consumed
	f.tick(t) // monster turn
	f.tick(t) // nothing queued: default attack

	if hp, _ := f.state.MonsterHP("orco"); hp != 48 {
		t.Errorf("monster hp = %d, expected 48 from default attack", hp)
	}
}

func TestFlee_EndsCombatWithoutMonsterAction(t *testing.T) {
	f := newCombatFixture(t)
	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionFlee})

	f.tick(t)

	if f.mgr.PlayerInCombat("p1") {
		t.Error("player should be out of combat after fleeing")
	}
	if f.mgr.MonsterInCombat("orco") {
		t.Error("monster index should be cleared after flee")
	}
	if f.playerHp(t) != 100 {
		t.Errorf("player hp = %d, flee must not cost HP", f.playerHp(t))
	}

	// Both sides are free to fight again.
	if _, err := f.mgr.StartCombat("p1", "orco"); err != nil {
		t.Errorf("restart after flee failed: %v", err)
	}
}

func TestBonusItem_AppliedAfterPrimary(t *testing.T) {
	f := newCombatFixture(t)
	f.state.WithPlayer("p1", func(p *world.Player) {
		p.Inventory = []string{"pozione"}
		p.CurrentHp = 40
	})

	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionAttack, BonusItemId: "pozione"})

	f.tick(t)

	if f.playerHp(t) != 70 {
		t.Errorf("player hp = %d, expected 70 after potion", f.playerHp(t))
	}
	p, _ := f.state.PlayerSnapshot("p1")
	if p.HasItem("pozione") {
		t.Error("consumed potion still in inventory")
	}
	if hp, _ := f.state.MonsterHP("orco"); hp != 48 {
		t.Errorf("monster hp = %d, primary attack should still land", hp)
	}
}

func TestBonusItem_HealClampedToMax(t *testing.T) {
	f := newCombatFixture(t)
	f.state.WithPlayer("p1", func(p *world.Player) {
		p.Inventory = []string{"pozione"}
		p.CurrentHp = 90
	})

	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend, BonusItemId: "pozione"})

	f.tick(t)

	if f.playerHp(t) != 100 {
		t.Errorf("player hp = %d, heal should clamp at max", f.playerHp(t))
	}
}

func TestBonusItem_NonHealSurvivesTheTurn(t *testing.T) {
	f := newCombatFixture(t)
	f.state.WithPlayer("p1", func(p *world.Player) {
		p.Inventory = []string{"pergamena"}
		p.CurrentHp = 40
	})

	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend, BonusItemId: "pergamena"})

	f.tick(t)

	p, _ := f.state.PlayerSnapshot("p1")
	if !p.HasItem("pergamena") {
		t.Error("knowledge scroll should not be consumed by the bonus action")
	}
	if f.playerHp(t) != 40 {
		t.Errorf("player hp = %d, a scroll heals nothing", f.playerHp(t))
	}

	found := false
	for _, msg := range f.pub.playerMsgs["p1"] {
		if msg == "L'oggetto non è più disponibile o non funziona." {
			found = true
		}
	}
	if !found {
		t.Errorf("player was not told the item did nothing: %v", f.pub.playerMsgs["p1"])
	}
}

func TestMonsterDeath_Consequences(t *testing.T) {
	f := newCombatFixture(t)
	f.state.SetMonsterHP("orco", 2)

	f.mgr.StartCombat("p1", "orco")
	f.tick(t)

	if f.mgr.PlayerInCombat("p1") {
		t.Error("combat should end on monster death")
	}
	if hp, _ := f.state.MonsterHP("orco"); hp != 0 {
		t.Errorf("monster hp = %d, expected 0", hp)
	}
	if !f.state.ItemInRoom("grotta", "zanna") {
		t.Error("loot should drop into the room")
	}
	if len(f.respawner.defeats) != 1 || f.respawner.defeats[0] != "orco" {
		t.Errorf("respawn tracking = %v, expected [orco]", f.respawner.defeats)
	}

	p, _ := f.state.PlayerSnapshot("p1")
	if p.Experience != 1200 {
		t.Errorf("experience = %d, expected 1200", p.Experience)
	}
	if p.Level() != 2 {
		t.Errorf("level = %d, expected level up to 2", p.Level())
	}
}

func TestPlayerDeath_PunitiveRespawn(t *testing.T) {
	f := newCombatFixture(t)
	f.state.WithPlayer("p1", func(p *world.Player) {
		p.CurrentHp = 5
		p.Inventory = []string{"pozione", "zanna"}
	})

	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend})
	f.tick(t) // player defends
	f.tick(t) // monster hits for 5, player dies

	if f.mgr.PlayerInCombat("p1") {
		t.Error("combat should end on player death")
	}

	p, _ := f.state.PlayerSnapshot("p1")
	if p.CurrentHp != 2 {
		t.Errorf("hp = %d, expected punitive respawn at 2", p.CurrentHp)
	}
	if p.RoomId != "inizio" {
		t.Errorf("room = %q, expected start room", p.RoomId)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("inventory = %v, expected emptied", p.Inventory)
	}
	if !f.state.ItemInRoom("grotta", "pozione") || !f.state.ItemInRoom("grotta", "zanna") {
		t.Error("dropped inventory should be in the combat room")
	}
}

func TestDisconnect_EndsCombat(t *testing.T) {
	f := newCombatFixture(t)
	f.mgr.StartCombat("p1", "orco")

	if !f.mgr.EndCombatForPlayer("p1", ReasonDisconnected) {
		t.Fatal("expected teardown to succeed")
	}
	if f.mgr.MonsterInCombat("orco") {
		t.Error("monster should be freed on player disconnect")
	}
	if f.mgr.EndCombatForPlayer("p1", ReasonDisconnected) {
		t.Error("second teardown should report nothing to do")
	}
}

func TestQueueBonusItem_KeepsPrimary(t *testing.T) {
	f := newCombatFixture(t)
	f.state.WithPlayer("p1", func(p *world.Player) {
		p.Inventory = []string{"pozione"}
		p.CurrentHp = 40
	})

	f.mgr.StartCombat("p1", "orco")
	f.mgr.QueueAction("p1", QueuedAction{Primary: ActionDefend})
	if err := f.mgr.QueueBonusItem("p1", "pozione"); err != nil {
		t.Fatal(err)
	}

	f.tick(t)

	// Defend held, so the monster took no damage, and the potion landed.
	if hp, _ := f.state.MonsterHP("orco"); hp != 50 {
		t.Errorf("monster hp = %d, primary defend was replaced", hp)
	}
	if f.playerHp(t) != 70 {
		t.Errorf("player hp = %d, expected 70 after potion", f.playerHp(t))
	}
}

func TestQueueAction_NotInCombat(t *testing.T) {
	f := newCombatFixture(t)

	if err := f.mgr.QueueAction("p1", QueuedAction{Primary: ActionAttack}); err != ErrNotInCombat {
		t.Errorf("expected ErrNotInCombat, got %v", err)
	}
}
