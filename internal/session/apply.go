package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/roccanera/mud/internal/combat"
	"github.com/roccanera/mud/internal/commands"
	"github.com/roccanera/mud/internal/display"
	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/world"
)

// buildContext snapshots everything a handler may read. Handlers are
// pure; every mutation happens in apply below.
func (s *Session) buildContext() (*commands.Context, error) {
	state := s.mgr.state

	player, ok := state.PlayerSnapshot(s.id)
	if !ok {
		return nil, fmt.Errorf("player state not found for %s", s.id)
	}

	return &commands.Context{
		World:        state,
		PlayerId:     s.id,
		PlayerName:   player.Name,
		RoomId:       player.RoomId,
		Inventory:    player.Inventory,
		Equipment:    player.Equipment,
		MaxWeight:    player.MaxWeight,
		Experience:   player.Experience,
		CurrentHp:    player.CurrentHp,
		Stats:        player.EffectiveStats(state.Catalog().Item),
		OtherPlayers: state.PlayersInRoom(player.RoomId, s.id),
		NPCs:         state.NPCsInRoom(player.RoomId),
		Monsters:     state.MonstersInRoom(player.RoomId),
		InCombat:     s.mgr.combat.PlayerInCombat(s.id),
		GameTime:     s.mgr.clock.TimeInfo(),
	}, nil
}

// apply performs the world mutation and broadcasts a Result calls for.
func (s *Session) apply(ctx context.Context, res commands.Result) error {
	switch res.Type {
	case commands.ResultError, commands.ResultInfo, commands.ResultHelp:
		return s.applyMessage(res)

	case commands.ResultSay:
		return s.applySay(res)

	case commands.ResultLook:
		return s.writeLine(s.renderRoom(res.RoomId))

	case commands.ResultMove:
		return s.applyMove(res)

	case commands.ResultDoor:
		return s.applyDoor(res)

	case commands.ResultInteract:
		return s.applyInteract(res)

	case commands.ResultPickup:
		return s.applyPickup(res)

	case commands.ResultDrop:
		return s.applyDrop(res)

	case commands.ResultConsume:
		return s.applyConsume(res)

	case commands.ResultEquip:
		return s.applyEquip(res)

	case commands.ResultUnequip:
		return s.applyUnequip(res)

	case commands.ResultCombatStart:
		return s.applyCombatStart(res)

	case commands.ResultCombatQueue:
		return s.applyCombatQueue(res)

	case commands.ResultShowStats:
		return s.writeLine(s.renderStats())

	case commands.ResultDebugKill:
		return s.applyDebugKill(res)

	default:
		slog.WarnContext(ctx, "unhandled command result", "type", res.Type)
		return nil
	}
}

func (s *Session) applyMessage(res commands.Result) error {
	if res.Message == "" {
		return nil
	}
	if res.Broadcast != "" {
		s.broadcastToRoom(res.Broadcast)
	}
	return s.writeLine(res.Message)
}

func (s *Session) applySay(res commands.Result) error {
	s.broadcastToRoom(res.Broadcast)
	return s.writeLine(res.Message)
}

func (s *Session) applyMove(res commands.Result) error {
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return fmt.Errorf("player state not found for %s", s.id)
	}

	if s.mgr.combat.PlayerInCombat(s.id) {
		return s.writeLine("Non puoi andartene: sei in combattimento! Usa: fuggi")
	}

	from := player.RoomId
	s.mgr.state.MovePlayer(s.id, res.RoomId)

	s.mgr.pub.SendToRoom(from, fmt.Sprintf("%s se ne va verso %s.", player.Name, res.Direction.Italian()), s.id)
	s.mgr.pub.SendToRoom(res.RoomId, fmt.Sprintf("%s arriva da %s.", player.Name, res.Direction.Opposite().Italian()), s.id)

	return s.writeLine("Sei entrato in:\n\n" + s.renderRoom(res.RoomId))
}

func (s *Session) applyDoor(res commands.Result) error {
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return fmt.Errorf("player state not found for %s", s.id)
	}

	s.mgr.state.SetDoorState(player.RoomId, res.Direction, res.DoorState)
	s.broadcastToRoom(res.Broadcast)
	return s.writeLine(res.Message)
}

func (s *Session) applyInteract(res commands.Result) error {
	first := s.mgr.state.ActivateTrigger(res.TriggerId)

	if err := s.writeLine(res.Message); err != nil {
		return err
	}

	if first && res.TriggerMessage != "" {
		// The reveal goes to the whole room, actor included.
		player, ok := s.mgr.state.PlayerSnapshot(s.id)
		if ok {
			s.mgr.pub.SendToRoom(player.RoomId, res.TriggerMessage)
		}
	}
	return nil
}

func (s *Session) applyPickup(res commands.Result) error {
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return fmt.Errorf("player state not found for %s", s.id)
	}

	// Another player may have grabbed it between evaluate and apply.
	if !s.mgr.state.RemoveItemFromRoom(player.RoomId, res.ItemId) {
		return s.writeLine("Qualcuno è stato più veloce di te.")
	}

	s.mgr.state.WithPlayer(s.id, func(p *world.Player) {
		p.Inventory = append(p.Inventory, res.ItemId)
	})
	s.mgr.respawn.TrackItemPickup(res.ItemId, player.RoomId)

	s.broadcastToRoom(res.Broadcast)
	return s.writeLine(res.Message)
}

func (s *Session) applyDrop(res commands.Result) error {
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return fmt.Errorf("player state not found for %s", s.id)
	}

	var dropped bool
	s.mgr.state.WithPlayer(s.id, func(p *world.Player) {
		if !p.RemoveItem(res.ItemId) {
			return
		}
		dropped = true

		// Dropping something worn takes it off first.
		if slot, equipped := p.Equipment.SlotOf(res.ItemId); equipped {
			s.unequipSlotLocked(p, slot)
		}
	})

	if !dropped {
		return s.writeLine("Non ce l'hai più.")
	}

	s.mgr.state.AddItemToRoom(player.RoomId, res.ItemId)
	s.broadcastToRoom(res.Broadcast)
	return s.writeLine(res.Message)
}

func (s *Session) applyConsume(res commands.Result) error {
	item := s.mgr.state.Catalog().Item(res.ItemId)
	if item == nil {
		return s.writeLine("Errore interno: oggetto non trovato nel registro.")
	}

	var healed int
	var had bool
	s.mgr.state.WithPlayer(s.id, func(p *world.Player) {
		if !p.RemoveItem(res.ItemId) {
			return
		}
		had = true

		if item.Effect != nil && item.Effect.Type == game.EffectHeal {
			maxHp := p.EffectiveStats(s.mgr.state.Catalog().Item).MaxHp
			before := p.CurrentHp
			p.CurrentHp += item.Effect.Value
			if p.CurrentHp > maxHp {
				p.CurrentHp = maxHp
			}
			healed = p.CurrentHp - before
		}
	})

	if !had {
		return s.writeLine("Non ce l'hai più.")
	}

	s.broadcastToRoom(res.Broadcast)

	msg := res.Message
	if healed > 0 {
		msg += fmt.Sprintf("\nRecuperi %d punti ferita.", healed)
	}
	return s.writeLine(msg)
}

func (s *Session) applyEquip(res commands.Result) error {
	lookup := s.mgr.state.Catalog().Item

	var result game.EquipResult
	s.mgr.state.WithPlayer(s.id, func(p *world.Player) {
		oldMax := p.EffectiveStats(lookup).MaxHp

		result = game.EquipItem(p.Equipment, p.Inventory, res.ItemId, res.Slot, lookup)
		if !result.Success {
			return
		}
		p.Equipment = result.Equipment

		adjustHpForMaxChange(p, oldMax, p.EffectiveStats(lookup).MaxHp)
	})

	if !result.Success {
		return s.writeLine(result.Message)
	}

	msg := res.Message
	for _, evictedId := range result.Evicted {
		if evicted := lookup(evictedId); evicted != nil {
			msg += fmt.Sprintf("\nRimuovi %s per fare spazio.", evicted.Name)
		}
	}
	return s.writeLine(msg)
}

func (s *Session) applyUnequip(res commands.Result) error {
	var removed bool
	s.mgr.state.WithPlayer(s.id, func(p *world.Player) {
		if p.Equipment[res.Slot] == "" {
			return
		}
		removed = true
		s.unequipSlotLocked(p, res.Slot)
	})

	if !removed {
		return s.writeLine("Non hai niente da rimuovere lì.")
	}
	return s.writeLine(res.Message)
}

// unequipSlotLocked clears a slot and settles HP against the new max.
// Caller must hold the player inside WithPlayer.
func (s *Session) unequipSlotLocked(p *world.Player, slot game.Slot) {
	lookup := s.mgr.state.Catalog().Item
	oldMax := p.EffectiveStats(lookup).MaxHp

	result := game.UnequipItem(p.Equipment, slot, lookup)
	p.Equipment = result.Equipment

	adjustHpForMaxChange(p, oldMax, p.EffectiveStats(lookup).MaxHp)
}

// adjustHpForMaxChange keeps current HP sensible across equipment
// changes: gains in max HP carry over, losses clamp.
func adjustHpForMaxChange(p *world.Player, oldMax, newMax int) {
	if newMax > oldMax {
		p.CurrentHp += newMax - oldMax
	}
	if p.CurrentHp > newMax {
		p.CurrentHp = newMax
	}
}

func (s *Session) applyCombatStart(res commands.Result) error {
	_, err := s.mgr.combat.StartCombat(s.id, res.TargetId)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, combat.ErrPlayerInCombat):
		return s.writeLine("Sei già in combattimento!")
	case errors.Is(err, combat.ErrMonsterInCombat):
		return s.writeLine("Qualcun altro sta già combattendo contro questo nemico.")
	case errors.Is(err, combat.ErrMonsterDead):
		return s.writeLine("È già morto.")
	case errors.Is(err, combat.ErrNotInRoom):
		return s.writeLine("Non è più qui.")
	default:
		return err
	}
}

func (s *Session) applyCombatQueue(res commands.Result) error {
	var err error
	if res.BonusItemId != "" {
		err = s.mgr.combat.QueueBonusItem(s.id, res.BonusItemId)
	} else {
		err = s.mgr.combat.QueueAction(s.id, combat.QueuedAction{Primary: res.CombatAction})
	}

	if errors.Is(err, combat.ErrNotInCombat) {
		return s.writeLine("Non sei in combattimento.")
	}
	if err != nil {
		return err
	}
	return s.writeLine(res.Message)
}

func (s *Session) applyDebugKill(res commands.Result) error {
	s.mgr.state.SetMonsterHP(res.TargetId, 0)
	s.mgr.respawn.TrackMonsterDefeat(res.TargetId)

	s.broadcastToRoom(res.Broadcast)
	return s.writeLine(res.Message)
}

// broadcastToRoom sends a message to everyone else in the player's
// current room.
func (s *Session) broadcastToRoom(msg string) {
	if msg == "" {
		return
	}
	if player, ok := s.mgr.state.PlayerSnapshot(s.id); ok {
		s.mgr.pub.SendToRoom(player.RoomId, msg, s.id)
	}
}

// renderRoom builds the standard room view with live occupants.
func (s *Session) renderRoom(roomId string) string {
	state := s.mgr.state
	room := state.Catalog().Room(roomId)
	if room == nil {
		return "Stanza non trovata."
	}

	view := display.RoomView{
		Title:       room.Title,
		Description: room.Description,
		Players:     state.PlayersInRoom(roomId, s.id),
	}

	for dirName := range room.Exits {
		view.Exits = append(view.Exits, game.Direction(dirName).Italian())
	}
	// Revealed hidden exits show up like ordinary ones.
	for dirName, hidden := range room.HiddenExits {
		if state.IsTriggered(hidden.RequiredTrigger) {
			view.Exits = append(view.Exits, game.Direction(dirName).Italian())
		}
	}
	sort.Strings(view.Exits)

	for _, itemId := range state.RoomItems(roomId) {
		if item := state.Catalog().Item(itemId); item != nil {
			view.Items = append(view.Items, item.Name)
		}
	}

	for _, m := range state.MonstersInRoom(roomId) {
		view.Monsters = append(view.Monsters, display.MonsterView{
			Name:      m.Name,
			CurrentHp: m.CurrentHp,
			MaxHp:     m.MaxHp,
			Alive:     m.Alive(),
		})
	}

	for _, n := range state.NPCsInRoom(roomId) {
		view.NPCs = append(view.NPCs, n.Name)
	}

	return display.RenderRoom(view)
}

// renderStats builds the character sheet from live stats.
func (s *Session) renderStats() string {
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return "Statistiche non disponibili."
	}

	lookup := s.mgr.state.Catalog().Item
	stats := player.EffectiveStats(lookup)

	view := display.StatsView{
		Name:         player.Name,
		Level:        player.Level(),
		Experience:   player.Experience,
		CurrentHp:    player.CurrentHp,
		MaxHp:        stats.MaxHp,
		Attack:       stats.Attack,
		AttackBase:   stats.AttackBreakdown.Base,
		AttackBonus:  stats.AttackBreakdown.Bonus,
		Defense:      stats.Defense,
		DefenseBase:  stats.DefenseBreakdown.Base,
		DefenseBonus: stats.DefenseBreakdown.Bonus,
	}

	for _, slot := range game.EquipmentSlots {
		entry := display.SlotView{Slot: slot.Italian()}
		if itemId := player.Equipment[slot]; itemId != "" {
			if item := lookup(itemId); item != nil {
				entry.Item = item.Name
			}
		}
		view.Equipment = append(view.Equipment, entry)
	}

	return display.RenderStats(view)
}
