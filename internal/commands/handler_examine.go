package commands

import "fmt"

// examineHandler inspects something by name: an item in the inventory or
// the room first, then an interactable, an NPC, and finally a monster.
func examineHandler() *Handler {
	return &Handler{
		Name:        "esamina",
		Aliases:     []string{"examine", "inspect", "guarda oggetto"},
		RequiresArg: true,
		Description: "Esamina un oggetto in dettaglio",
		Usage:       "esamina <oggetto>",
		Execute: func(ctx *Context, arg string) Result {
			itemId, item := ctx.findInventoryItem(arg)
			location := "(nel tuo inventario)"

			if itemId == "" {
				itemId, item = ctx.findRoomItem(arg)
				location = "(nella stanza)"
			}

			if itemId != "" {
				if item == nil {
					return Errorf("Errore interno: oggetto non trovato nel registro.")
				}
				return Result{
					Type:    ResultInfo,
					Message: fmt.Sprintf("%s %s\n\n%s", item.Name, location, item.Description),
				}
			}

			if room := ctx.Room(); room != nil {
				for name, in := range room.Interactables {
					if nameEquals(name, arg) {
						return Result{
							Type:    ResultInfo,
							Message: fmt.Sprintf("%s (nella stanza)\n\n%s", name, in.Description),
						}
					}
				}
			}

			if npcInfo, found := ctx.findNPC(arg); found {
				msg := npcInfo.Name
				if npc := ctx.Catalog().NPC(npcInfo.Id); npc != nil && npc.Description != "" {
					msg += "\n\n" + npc.Description
				}
				return Result{Type: ResultInfo, Message: msg}
			}

			if mi, found := ctx.findMonster(arg); found {
				if !mi.Alive() {
					return Result{
						Type:    ResultInfo,
						Message: fmt.Sprintf("Il corpo senza vita di %s giace a terra.", mi.Name),
					}
				}
				msg := fmt.Sprintf("%s (%d/%d PF)", mi.Name, mi.CurrentHp, mi.MaxHp)
				if def := ctx.Catalog().Monster(mi.Id); def != nil && def.Description != "" {
					msg += "\n\n" + def.Description
				}
				return Result{Type: ResultInfo, Message: msg}
			}

			return Errorf(fmt.Sprintf("Non riesci a trovare %q qui.", arg))
		},
	}
}
