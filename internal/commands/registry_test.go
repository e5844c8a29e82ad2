package commands

import (
	"strings"
	"testing"

	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/storage"
	"github.com/roccanera/mud/internal/world"
)

func commandTestState() *world.State {
	t := true
	f := false
	catalog := &game.Catalog{
		Rooms: storage.NewMapStore(map[storage.Identifier]*game.Room{
			"taverna": {
				Title:       "Taverna",
				Description: "Una taverna fumosa.",
				Exits:       map[string]string{"north": "piazza"},
				Doors: map[string]*game.DoorDef{
					"north": {InitialState: game.DoorClosed},
				},
				Interactables: map[string]*game.Interactable{
					"leva": {
						Description: "La leva scricchiola.",
						TriggerId:   "leva-cantina",
						Command:     "tira",
					},
				},
				HiddenExits: map[string]*game.HiddenExit{
					"down": {
						RoomId:          "cantina",
						RequiredTrigger: "leva-cantina",
						RevealMessage:   "Una botola si apre nel pavimento!",
					},
				},
				Items: []string{"boccale", "tavolo-pesante", "incudine"},
			},
			"piazza":  {Title: "Piazza", Description: "La piazza del paese."},
			"cantina": {Title: "Cantina", Description: "Botti ovunque."},
		}),
		Items: storage.NewMapStore(map[storage.Identifier]*game.Item{
			"boccale":        {Name: "Boccale", Description: "Un boccale di peltro.", Weight: 1},
			"tavolo-pesante": {Name: "Tavolo", Weight: 80},
			"incudine":       {Name: "Incudine", Weight: 10, Takeable: &f},
			"pozione-rossa": {
				Name: "Pozione Rossa", Type: "potion", Weight: 1, Consumable: true,
				Effect: &game.ItemEffect{Type: game.EffectHeal, Value: 20, Text: "Un calore ti pervade."},
			},
			"spada-corta": {
				Name: "Spada Corta", Weight: 3, Equipable: true, Slot: game.SlotRightHand,
				Stats: &game.ItemStats{Attack: 5},
			},
			"sasso": {Name: "Sasso", Weight: 1, Takeable: &t},
		}),
		Monsters: storage.NewMapStore(map[storage.Identifier]*game.Monster{
			"ratto": {Name: "Ratto Nero", RoomId: "taverna", Description: "Un ratto grosso come un gatto.", MaxHp: 10, Attack: 3, Defense: 1, ExperienceDrop: 50},
		}),
		NPCs: storage.NewMapStore(map[storage.Identifier]*game.NPC{
			"oste": {Name: "Oste", RoomId: "taverna", Description: "Un omone dal grembiule macchiato.", Dialogues: []string{"Benvenuto!"}},
		}),
	}
	return world.NewState(catalog, "taverna")
}

func testContext(s *world.State) *Context {
	return &Context{
		World:      s,
		PlayerId:   "p1",
		PlayerName: "Bromo",
		RoomId:     "taverna",
		MaxWeight:  world.DefaultMaxWeight,
		Monsters:   s.MonstersInRoom("taverna"),
		NPCs:       s.NPCsInRoom("taverna"),
	}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input   string
		expVerb string
		expArg  string
	}{
		"empty":           {input: "", expVerb: "", expArg: ""},
		"verb only":       {input: "guarda", expVerb: "guarda", expArg: ""},
		"upper cased":     {input: "GUARDA", expVerb: "guarda", expArg: ""},
		"verb with arg":   {input: "prendi boccale", expVerb: "prendi", expArg: "boccale"},
		"extra spaces":    {input: "  vai   nord  ", expVerb: "vai", expArg: "nord"},
		"multi word args": {input: "dici ciao a tutti", expVerb: "dici", expArg: "ciao a tutti"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			verb, arg := Parse(tt.input)
			if verb != tt.expVerb || arg != tt.expArg {
				t.Errorf("Parse(%q) = %q, %q; expected %q, %q", tt.input, verb, arg, tt.expVerb, tt.expArg)
			}
		})
	}
}

func TestDispatch_UnknownVerb(t *testing.T) {
	r := NewRegistry()
	res := r.Dispatch(testContext(commandTestState()), "balla")

	if res.Type != ResultError || res.Message != "Comando non riconosciuto." {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDispatch_MissingArgNamesUsage(t *testing.T) {
	r := NewRegistry()
	res := r.Dispatch(testContext(commandTestState()), "prendi")

	if res.Type != ResultError || !strings.Contains(res.Message, "prendi <oggetto>") {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDispatch_MultiWordReroute(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	// "apri porta nord" must hit the door handler, not the interact
	// handler registered under the bare "apri".
	res := r.Dispatch(testContext(s), "apri porta nord")
	if res.Type != ResultDoor {
		t.Fatalf("type = %s, expected door: %+v", res.Type, res)
	}
	if res.Direction != game.North || res.DoorState != game.DoorOpen {
		t.Errorf("unexpected door result: %+v", res)
	}

	// The bare verb still reaches the interact handler.
	res = r.Dispatch(testContext(s), "apri leva")
	if res.Type != ResultError || !strings.Contains(res.Message, "Non puoi apri") {
		t.Errorf("expected verb-restriction error, got %+v", res)
	}
}

func TestDispatch_VerbTokenReachesHandler(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "tira leva")
	if res.Type != ResultInteract {
		t.Fatalf("type = %s, expected interact: %+v", res.Type, res)
	}
	if res.TriggerId != "leva-cantina" {
		t.Errorf("trigger = %q", res.TriggerId)
	}
	if res.TriggerMessage != "Una botola si apre nel pavimento!" {
		t.Errorf("reveal message = %q", res.TriggerMessage)
	}
}

func TestInteract_AlreadyTriggered(t *testing.T) {
	s := commandTestState()
	s.ActivateTrigger("leva-cantina")
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "tira leva")
	if res.Type != ResultInteract {
		t.Fatalf("type = %s: %+v", res.Type, res)
	}
	if !strings.Contains(res.Message, "Non accade nulla di nuovo.") {
		t.Errorf("message = %q", res.Message)
	}
	if res.TriggerMessage != "" {
		t.Errorf("re-activation must not broadcast, got %q", res.TriggerMessage)
	}
}

func TestMove_DoorBlocks(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "nord")
	if res.Type != ResultError || !strings.Contains(res.Message, "chiusa") {
		t.Fatalf("expected closed-door error, got %+v", res)
	}

	s.SetDoorState("taverna", game.North, game.DoorOpen)
	res = r.Dispatch(testContext(s), "vai nord")
	if res.Type != ResultMove || res.RoomId != "piazza" || res.Direction != game.North {
		t.Errorf("unexpected move result: %+v", res)
	}
}

func TestMove_HiddenExitNeedsTrigger(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "giù")
	if res.Type != ResultError {
		t.Fatalf("hidden exit leaked before trigger: %+v", res)
	}

	s.ActivateTrigger("leva-cantina")
	res = r.Dispatch(testContext(s), "giù")
	if res.Type != ResultMove || res.RoomId != "cantina" {
		t.Errorf("unexpected result after trigger: %+v", res)
	}
}

func TestPickup(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	tests := map[string]struct {
		input   string
		expType ResultType
		expMsg  string
	}{
		"normal pickup":    {input: "prendi boccale", expType: ResultPickup, expMsg: "Prendi Boccale."},
		"not here":         {input: "prendi corona", expType: ResultError, expMsg: `Non riesci a trovare "corona" qui.`},
		"not takeable":     {input: "prendi incudine", expType: ResultError, expMsg: "Non puoi prendere Incudine."},
		"over weight cap":  {input: "prendi tavolo", expType: ResultError, expMsg: "Tavolo è troppo pesante: non puoi trasportare più di 50 kg."},
		"case insensitive": {input: "PRENDI BOCCALE", expType: ResultPickup, expMsg: "Prendi Boccale."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := r.Dispatch(testContext(s), tt.input)
			if res.Type != tt.expType {
				t.Fatalf("type = %s, expected %s: %+v", res.Type, tt.expType, res)
			}
			if res.Message != tt.expMsg {
				t.Errorf("message = %q, expected %q", res.Message, tt.expMsg)
			}
		})
	}
}

func TestDrop(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	res := r.Dispatch(ctx, "lascia boccale")
	if res.Type != ResultError || res.Message != "Il tuo inventario è vuoto." {
		t.Fatalf("unexpected result: %+v", res)
	}

	ctx.Inventory = []string{"boccale"}
	res = r.Dispatch(ctx, "lascia boccale")
	if res.Type != ResultDrop || res.ItemId != "boccale" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestConsume_BranchesOnCombat(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	ctx.Inventory = []string{"pozione-rossa"}

	res := r.Dispatch(ctx, "bevi pozione")
	if res.Type != ResultConsume || res.ItemId != "pozione-rossa" {
		t.Fatalf("out of combat: %+v", res)
	}
	if !strings.Contains(res.Message, "Un calore ti pervade.") {
		t.Errorf("effect text missing: %q", res.Message)
	}

	ctx.InCombat = true
	res = r.Dispatch(ctx, "bevi pozione")
	if res.Type != ResultCombatQueue || res.BonusItemId != "pozione-rossa" {
		t.Errorf("in combat should queue a bonus action: %+v", res)
	}
}

func TestConsume_TypeFilter(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	ctx.Inventory = []string{"boccale"}

	res := r.Dispatch(ctx, "bevi boccale")
	if res.Type != ResultError {
		t.Errorf("non-potion should not be drinkable: %+v", res)
	}
}

func TestEquip(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	ctx.Inventory = []string{"spada-corta", "sasso"}

	res := r.Dispatch(ctx, "equipaggia spada")
	if res.Type != ResultEquip || res.ItemId != "spada-corta" || res.Slot != game.SlotRightHand {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = r.Dispatch(ctx, "equipaggia sasso")
	if res.Type != ResultError {
		t.Errorf("non-equipable item should be rejected: %+v", res)
	}
}

func TestUnequip(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	ctx.Inventory = []string{"spada-corta"}
	ctx.Equipment = game.Equipment{game.SlotRightHand: "spada-corta"}

	res := r.Dispatch(ctx, "rimuovi mano destra")
	if res.Type != ResultUnequip || res.Slot != game.SlotRightHand {
		t.Fatalf("by slot: %+v", res)
	}

	res = r.Dispatch(ctx, "rimuovi spada")
	if res.Type != ResultUnequip || res.Slot != game.SlotRightHand {
		t.Fatalf("by item name: %+v", res)
	}

	res = r.Dispatch(ctx, "rimuovi elmo")
	if res.Type != ResultError {
		t.Errorf("empty slot should error: %+v", res)
	}
}

func TestAttack(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "attacca ratto")
	if res.Type != ResultCombatStart || res.TargetId != "ratto" {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = r.Dispatch(testContext(s), "attacca")
	if res.Type != ResultError {
		t.Errorf("attack without target out of combat should error: %+v", res)
	}

	ctx := testContext(s)
	ctx.InCombat = true
	res = r.Dispatch(ctx, "attacca")
	if res.Type != ResultCombatQueue || res.CombatAction != "attack" {
		t.Errorf("in combat should queue: %+v", res)
	}
}

func TestAttack_DeadMonster(t *testing.T) {
	s := commandTestState()
	s.SetMonsterHP("ratto", 0)
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "attacca ratto")
	if res.Type != ResultError || !strings.Contains(res.Message, "già morto") {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDefendAndFlee_RequireCombat(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	for _, input := range []string{"difenditi", "fuggi"} {
		if res := r.Dispatch(testContext(s), input); res.Type != ResultError {
			t.Errorf("%s out of combat should error: %+v", input, res)
		}
	}

	ctx := testContext(s)
	ctx.InCombat = true
	if res := r.Dispatch(ctx, "difenditi"); res.Type != ResultCombatQueue || res.CombatAction != "defend" {
		t.Errorf("difenditi: %+v", res)
	}
	if res := r.Dispatch(ctx, "fuggi"); res.Type != ResultCombatQueue || res.CombatAction != "flee" {
		t.Errorf("fuggi: %+v", res)
	}
}

func TestExamine_InventoryBeforeRoom(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	ctx := testContext(s)
	ctx.Inventory = []string{"boccale"}

	res := r.Dispatch(ctx, "esamina boccale")
	if res.Type != ResultInfo || !strings.Contains(res.Message, "(nel tuo inventario)") {
		t.Fatalf("unexpected result: %+v", res)
	}

	ctx.Inventory = nil
	res = r.Dispatch(ctx, "esamina boccale")
	if res.Type != ResultInfo || !strings.Contains(res.Message, "(nella stanza)") {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestExamine_FallsThroughToRoomDwellers(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	tests := map[string]struct {
		input string
		want  string
	}{
		"interactable": {"esamina leva", "La leva scricchiola."},
		"npc":          {"esamina oste", "Un omone dal grembiule macchiato."},
		"monster":      {"esamina ratto", "Un ratto grosso come un gatto."},
		"monster hp":   {"esamina ratto", "(10/10 PF)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := r.Dispatch(testContext(s), tt.input)
			if res.Type != ResultInfo {
				t.Fatalf("type = %s: %+v", res.Type, res)
			}
			if !strings.Contains(res.Message, tt.want) {
				t.Errorf("message %q missing %q", res.Message, tt.want)
			}
		})
	}

	s.SetMonsterHP("ratto", 0)
	res := r.Dispatch(testContext(s), "esamina ratto")
	if res.Type != ResultInfo || !strings.Contains(res.Message, "corpo senza vita") {
		t.Errorf("dead monster examine: %+v", res)
	}
}

func TestTalk(t *testing.T) {
	s := commandTestState()
	r := NewRegistry()

	res := r.Dispatch(testContext(s), "parla oste")
	if res.Type != ResultInfo || !strings.Contains(res.Message, "Benvenuto!") {
		t.Errorf("unexpected result: %+v", res)
	}

	res = r.Dispatch(testContext(s), "parla fantasma")
	if res.Type != ResultError {
		t.Errorf("unknown npc should error: %+v", res)
	}
}

func TestHelp_ListsCommands(t *testing.T) {
	r := NewRegistry()

	res := r.Dispatch(testContext(commandTestState()), "aiuto")
	if res.Type != ResultHelp {
		t.Fatalf("type = %s", res.Type)
	}
	for _, usage := range []string{"vai <direzione>", "prendi <oggetto>", "attacca [nemico]"} {
		if !strings.Contains(res.Message, usage) {
			t.Errorf("help text missing %q", usage)
		}
	}
}
