package game

import (
	"sort"
	"testing"
)

func testItems() map[string]*Item {
	return map[string]*Item{
		"sword": {
			Name: "Spada Corta", Type: "weapon", Equipable: true,
			Slot: SlotRightHand, Stats: &ItemStats{Attack: 5},
		},
		"dagger": {
			Name: "Pugnale", Type: "weapon", Equipable: true,
			Slot: SlotLeftHand, Stats: &ItemStats{Attack: 2},
		},
		"shield": {
			Name: "Scudo di Legno", Type: "shield", Equipable: true,
			Slot: SlotLeftHand, Stats: &ItemStats{Defense: 3},
		},
		"greatsword": {
			Name: "Spadone", Type: "weapon", Equipable: true,
			Slot: SlotRightHand, TwoHanded: true, Stats: &ItemStats{Attack: 12},
		},
		"helmet": {
			Name: "Elmo di Ferro", Type: "armor", Equipable: true,
			Slot: SlotHelmet, Stats: &ItemStats{Defense: 2, MaxHp: 10},
		},
		"apple": {Name: "Mela"},
	}
}

func testLookup(items map[string]*Item) lookupItem {
	return func(id string) *Item { return items[id] }
}

func TestEquipItem(t *testing.T) {
	tests := map[string]struct {
		equipment  Equipment
		inventory  []string
		itemId     string
		expSuccess bool
		expEvicted []string
		expSlots   map[Slot]string
	}{
		"simple equip": {
			equipment:  Equipment{},
			inventory:  []string{"sword"},
			itemId:     "sword",
			expSuccess: true,
			expSlots:   map[Slot]string{SlotRightHand: "sword"},
		},
		"not in inventory": {
			equipment:  Equipment{},
			inventory:  []string{},
			itemId:     "sword",
			expSuccess: false,
		},
		"not equipable": {
			equipment:  Equipment{},
			inventory:  []string{"apple"},
			itemId:     "apple",
			expSuccess: false,
		},
		"occupied slot evicts": {
			equipment:  Equipment{SlotRightHand: "sword"},
			inventory:  []string{"greatsword"},
			itemId:     "greatsword",
			expSuccess: true,
			expEvicted: []string{"sword"},
			expSlots:   map[Slot]string{SlotRightHand: "greatsword", SlotLeftHand: "greatsword"},
		},
		"two-handed evicts both hands deduped": {
			equipment:  Equipment{SlotRightHand: "sword", SlotLeftHand: "shield"},
			inventory:  []string{"greatsword"},
			itemId:     "greatsword",
			expSuccess: true,
			expEvicted: []string{"shield", "sword"},
			expSlots:   map[Slot]string{SlotRightHand: "greatsword", SlotLeftHand: "greatsword"},
		},
		"shield evicts left-hand weapon": {
			equipment:  Equipment{SlotLeftHand: "dagger"},
			inventory:  []string{"shield"},
			itemId:     "shield",
			expSuccess: true,
			expEvicted: []string{"dagger"},
			expSlots:   map[Slot]string{SlotLeftHand: "shield"},
		},
		"weapon evicts left-hand shield": {
			equipment:  Equipment{SlotLeftHand: "shield"},
			inventory:  []string{"dagger"},
			itemId:     "dagger",
			expSuccess: true,
			expEvicted: []string{"shield"},
			expSlots:   map[Slot]string{SlotLeftHand: "dagger"},
		},
		"single-hand equip over two-handed clears both": {
			equipment:  Equipment{SlotRightHand: "greatsword", SlotLeftHand: "greatsword"},
			inventory:  []string{"sword"},
			itemId:     "sword",
			expSuccess: true,
			expEvicted: []string{"greatsword"},
			expSlots:   map[Slot]string{SlotRightHand: "sword"},
		},
	}

	items := testItems()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := EquipItem(tt.equipment, tt.inventory, tt.itemId, "", testLookup(items))
			if res.Success != tt.expSuccess {
				t.Fatalf("success = %v, expected %v (%s)", res.Success, tt.expSuccess, res.Message)
			}
			if !tt.expSuccess {
				return
			}

			evicted := append([]string(nil), res.Evicted...)
			sort.Strings(evicted)
			expEvicted := append([]string(nil), tt.expEvicted...)
			sort.Strings(expEvicted)
			if len(evicted) != len(expEvicted) {
				t.Fatalf("evicted = %v, expected %v", res.Evicted, tt.expEvicted)
			}
			for i := range evicted {
				if evicted[i] != expEvicted[i] {
					t.Fatalf("evicted = %v, expected %v", res.Evicted, tt.expEvicted)
				}
			}

			for slot, want := range tt.expSlots {
				if res.Equipment[slot] != want {
					t.Errorf("slot %s = %q, expected %q", slot, res.Equipment[slot], want)
				}
			}
			for slot, id := range res.Equipment {
				if tt.expSlots[slot] != id {
					t.Errorf("unexpected occupant %q in slot %s", id, slot)
				}
			}
		})
	}
}

func TestEquipItem_DoesNotMutateInput(t *testing.T) {
	items := testItems()
	eq := Equipment{SlotRightHand: "sword"}

	EquipItem(eq, []string{"greatsword"}, "greatsword", "", testLookup(items))

	if eq[SlotRightHand] != "sword" {
		t.Errorf("input equipment mutated: %v", eq)
	}
}

func TestUnequipItem(t *testing.T) {
	items := testItems()

	t.Run("two-handed clears both hands", func(t *testing.T) {
		eq := Equipment{SlotRightHand: "greatsword", SlotLeftHand: "greatsword"}
		res := UnequipItem(eq, SlotRightHand, testLookup(items))
		if !res.Success {
			t.Fatalf("expected success: %s", res.Message)
		}
		if len(res.Equipment) != 0 {
			t.Errorf("expected empty equipment, got %v", res.Equipment)
		}
		if res.ItemId != "greatsword" {
			t.Errorf("itemId = %q, expected greatsword", res.ItemId)
		}
	})

	t.Run("empty slot fails", func(t *testing.T) {
		res := UnequipItem(Equipment{}, SlotHelmet, testLookup(items))
		if res.Success {
			t.Error("expected failure on empty slot")
		}
	})
}

func TestCalculateEffectiveStats(t *testing.T) {
	items := testItems()

	t.Run("two-handed counted once", func(t *testing.T) {
		eq := Equipment{SlotRightHand: "greatsword", SlotLeftHand: "greatsword"}
		stats := CalculateEffectiveStats(10, 5, 100, eq, testLookup(items))
		if stats.Attack != 22 {
			t.Errorf("attack = %d, expected 22", stats.Attack)
		}
	})

	t.Run("bonuses sum across slots", func(t *testing.T) {
		eq := Equipment{SlotRightHand: "sword", SlotLeftHand: "shield", SlotHelmet: "helmet"}
		stats := CalculateEffectiveStats(10, 5, 100, eq, testLookup(items))
		if stats.Attack != 15 {
			t.Errorf("attack = %d, expected 15", stats.Attack)
		}
		if stats.Defense != 10 {
			t.Errorf("defense = %d, expected 10", stats.Defense)
		}
		if stats.MaxHp != 110 {
			t.Errorf("maxHp = %d, expected 110", stats.MaxHp)
		}
		if stats.AttackBreakdown.Base != 10 || stats.AttackBreakdown.Bonus != 5 {
			t.Errorf("attack breakdown = %+v", stats.AttackBreakdown)
		}
	})
}
