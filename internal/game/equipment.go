package game

// Slot is an equipment slot identifier.
type Slot string

const (
	SlotRightHand Slot = "right_hand"
	SlotLeftHand  Slot = "left_hand"
	SlotArmor     Slot = "armor"
	SlotHelmet    Slot = "helmet"
	SlotBoots     Slot = "boots"
	SlotGloves    Slot = "gloves"
	SlotRing1     Slot = "ring1"
	SlotRing2     Slot = "ring2"
	SlotAmulet    Slot = "amulet"
)

// EquipmentSlots lists every slot in display order.
var EquipmentSlots = []Slot{
	SlotRightHand,
	SlotLeftHand,
	SlotArmor,
	SlotHelmet,
	SlotBoots,
	SlotGloves,
	SlotRing1,
	SlotRing2,
	SlotAmulet,
}

var slotNames = map[Slot]string{
	SlotRightHand: "mano destra",
	SlotLeftHand:  "mano sinistra",
	SlotArmor:     "armatura",
	SlotHelmet:    "elmo",
	SlotBoots:     "stivali",
	SlotGloves:    "guanti",
	SlotRing1:     "anello 1",
	SlotRing2:     "anello 2",
	SlotAmulet:    "amuleto",
}

func (s Slot) Valid() bool {
	_, ok := slotNames[s]
	return ok
}

// Italian returns the display name used in equipment messages.
func (s Slot) Italian() string {
	if n, ok := slotNames[s]; ok {
		return n
	}
	return string(s)
}

// ParseSlot resolves an Italian or canonical slot name.
func ParseSlot(s string) (Slot, bool) {
	if Slot(s).Valid() {
		return Slot(s), true
	}
	for slot, name := range slotNames {
		if name == s {
			return slot, true
		}
	}
	return "", false
}

// Equipment maps slots to equipped item ids. A two-handed weapon occupies
// both hand slots with the same id.
type Equipment map[Slot]string

// Clone returns a copy; equip operations never mutate their input.
func (eq Equipment) Clone() Equipment {
	out := make(Equipment, len(eq))
	for slot, id := range eq {
		out[slot] = id
	}
	return out
}

// SlotOf returns the slot an item is equipped in, preferring display order
// so a two-handed weapon reports the right hand.
func (eq Equipment) SlotOf(itemId string) (Slot, bool) {
	for _, slot := range EquipmentSlots {
		if eq[slot] == itemId {
			return slot, true
		}
	}
	return "", false
}

// IsEquipped reports whether the item occupies any slot.
func (eq Equipment) IsEquipped(itemId string) bool {
	_, ok := eq.SlotOf(itemId)
	return ok
}

// CanEquipResult reports whether an item may be equipped and where.
type CanEquipResult struct {
	CanEquip bool
	Reason   string
	Slot     Slot
}

// CanEquipItem checks equipability and resolves the target slot.
func CanEquipItem(item *Item, targetSlot Slot) CanEquipResult {
	if item == nil {
		return CanEquipResult{Reason: "oggetto non trovato"}
	}
	if !item.Equipable {
		return CanEquipResult{Reason: item.Name + " non si può indossare"}
	}

	slot := targetSlot
	if slot == "" {
		slot = item.Slot
	}
	if slot == "" {
		return CanEquipResult{Reason: item.Name + " non ha uno slot valido"}
	}

	return CanEquipResult{CanEquip: true, Slot: slot}
}

// EquipResult carries the outcome of an equip operation: the new
// equipment map and any items evicted from their slots.
type EquipResult struct {
	Success   bool
	Equipment Equipment
	Evicted   []string
	Message   string
}

// lookupItem resolves item ids during equip conflict resolution.
type lookupItem func(id string) *Item

// EquipItem equips an item from the inventory, resolving slot conflicts:
// two-handed weapons claim both hands, the left hand is exclusive between
// shields and weapons, and an occupied slot evicts its occupant. Evicted
// ids are deduplicated; the caller decides where they go.
func EquipItem(eq Equipment, inventory []string, itemId string, targetSlot Slot, lookup lookupItem) EquipResult {
	inInventory := false
	for _, id := range inventory {
		if id == itemId {
			inInventory = true
			break
		}
	}
	if !inInventory {
		return EquipResult{Equipment: eq, Message: "Non hai questo oggetto."}
	}

	item := lookup(itemId)
	check := CanEquipItem(item, targetSlot)
	if !check.CanEquip {
		return EquipResult{Equipment: eq, Message: check.Reason}
	}

	slot := check.Slot
	next := eq.Clone()
	var evicted []string

	// Left hand is exclusive between shield and non-shield occupants.
	if slot == SlotLeftHand {
		if prev := next[SlotLeftHand]; prev != "" {
			prevItem := lookup(prev)
			prevIsShield := prevItem != nil && prevItem.Type == "shield"
			if (item.Type == "shield") != prevIsShield {
				evicted = append(evicted, prev)
				delete(next, SlotLeftHand)
			}
		}
	}

	if item.TwoHanded {
		if prev := next[SlotRightHand]; prev != "" {
			evicted = append(evicted, prev)
		}
		if prev := next[SlotLeftHand]; prev != "" {
			evicted = append(evicted, prev)
		}
		next[SlotRightHand] = itemId
		next[SlotLeftHand] = itemId
	} else {
		if prev := next[slot]; prev != "" && prev != itemId {
			evicted = append(evicted, prev)
			// A two-handed occupant vacates both hands.
			if prevItem := lookup(prev); prevItem != nil && prevItem.TwoHanded {
				if next[SlotRightHand] == prev {
					delete(next, SlotRightHand)
				}
				if next[SlotLeftHand] == prev {
					delete(next, SlotLeftHand)
				}
			}
		}
		next[slot] = itemId
	}

	return EquipResult{
		Success:   true,
		Equipment: next,
		Evicted:   dedupe(evicted),
		Message:   "Hai indossato " + item.Name + " (" + slot.Italian() + ")",
	}
}

// UnequipResult carries the outcome of an unequip operation.
type UnequipResult struct {
	Success   bool
	Equipment Equipment
	ItemId    string
	Message   string
}

// UnequipItem removes the occupant of a slot. Removing a two-handed
// weapon clears both hand slots.
func UnequipItem(eq Equipment, slot Slot, lookup lookupItem) UnequipResult {
	itemId := eq[slot]
	if itemId == "" {
		return UnequipResult{Equipment: eq, Message: "Niente da rimuovere da " + slot.Italian()}
	}

	next := eq.Clone()
	item := lookup(itemId)
	if item != nil && item.TwoHanded {
		delete(next, SlotRightHand)
		delete(next, SlotLeftHand)
	} else {
		delete(next, slot)
	}

	name := "?"
	if item != nil {
		name = item.Name
	}

	return UnequipResult{
		Success:   true,
		Equipment: next,
		ItemId:    itemId,
		Message:   "Hai rimosso " + name,
	}
}

// StatBreakdown splits a stat into its base and equipment-derived parts.
type StatBreakdown struct {
	Base  int
	Bonus int
}

// EffectiveStats are the totals a player fights with.
type EffectiveStats struct {
	Attack  int
	Defense int
	MaxHp   int

	AttackBreakdown  StatBreakdown
	DefenseBreakdown StatBreakdown
	MaxHpBreakdown   StatBreakdown
}

// CalculateEffectiveStats sums every distinct equipped item's bonuses
// exactly once, even when one item occupies two slots.
func CalculateEffectiveStats(baseAttack, baseDefense, baseMaxHp int, eq Equipment, lookup lookupItem) EffectiveStats {
	var attackBonus, defenseBonus, maxHpBonus int
	seen := map[string]bool{}

	for _, slot := range EquipmentSlots {
		itemId := eq[slot]
		if itemId == "" || seen[itemId] {
			continue
		}
		seen[itemId] = true

		item := lookup(itemId)
		if item == nil || item.Stats == nil {
			continue
		}
		attackBonus += item.Stats.Attack
		defenseBonus += item.Stats.Defense
		maxHpBonus += item.Stats.MaxHp
	}

	return EffectiveStats{
		Attack:  baseAttack + attackBonus,
		Defense: baseDefense + defenseBonus,
		MaxHp:   baseMaxHp + maxHpBonus,

		AttackBreakdown:  StatBreakdown{Base: baseAttack, Bonus: attackBonus},
		DefenseBreakdown: StatBreakdown{Base: baseDefense, Bonus: defenseBonus},
		MaxHpBreakdown:   StatBreakdown{Base: baseMaxHp, Bonus: maxHpBonus},
	}
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
