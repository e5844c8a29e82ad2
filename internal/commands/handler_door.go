package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/game"
)

func openDoorHandler() *Handler {
	return &Handler{
		Name:        "apri porta",
		RequiresArg: true,
		Description: "Apri una porta in una direzione",
		Usage:       "apri porta <direzione>",
		Execute: func(ctx *Context, arg string) Result {
			dir, ok := game.ParseDirection(arg)
			if !ok {
				return Errorf("Direzione non riconosciuta.")
			}

			state, hasDoor := ctx.World.DoorState(ctx.RoomId, dir)
			if !hasDoor {
				return Errorf(fmt.Sprintf("Non c'è nessuna porta a %s.", dir.Italian()))
			}

			if state == game.DoorOpen {
				return Errorf("La porta è già aperta.")
			}

			if state == game.DoorLocked {
				def, _ := ctx.World.DoorDef(ctx.RoomId, dir)
				if def == nil || def.KeyId == "" {
					return Errorf("La porta è chiusa a chiave.")
				}

				hasKey := false
				for _, id := range ctx.Inventory {
					if id == def.KeyId {
						hasKey = true
						break
					}
				}
				if !hasKey {
					keyName := def.KeyId
					if key := ctx.Catalog().Item(def.KeyId); key != nil {
						keyName = key.Name
					}
					return Errorf(fmt.Sprintf("La porta è chiusa a chiave. Ti serve: %s", keyName))
				}
			}

			return Result{
				Type:      ResultDoor,
				Direction: dir,
				DoorState: game.DoorOpen,
				Message:   fmt.Sprintf("Apri la porta a %s.", dir.Italian()),
				Broadcast: fmt.Sprintf("%s apre la porta a %s.", ctx.PlayerName, dir.Italian()),
			}
		},
	}
}

func closeDoorHandler() *Handler {
	return &Handler{
		Name:        "chiudi porta",
		RequiresArg: true,
		Description: "Chiudi una porta in una direzione",
		Usage:       "chiudi porta <direzione>",
		Execute: func(ctx *Context, arg string) Result {
			dir, ok := game.ParseDirection(arg)
			if !ok {
				return Errorf("Direzione non riconosciuta.")
			}

			state, hasDoor := ctx.World.DoorState(ctx.RoomId, dir)
			if !hasDoor {
				return Errorf(fmt.Sprintf("Non c'è nessuna porta a %s.", dir.Italian()))
			}

			if state != game.DoorOpen {
				return Errorf("La porta è già chiusa.")
			}

			return Result{
				Type:      ResultDoor,
				Direction: dir,
				DoorState: game.DoorClosed,
				Message:   fmt.Sprintf("Chiudi la porta a %s.", dir.Italian()),
				Broadcast: fmt.Sprintf("%s chiude la porta a %s.", ctx.PlayerName, dir.Italian()),
			}
		},
	}
}
