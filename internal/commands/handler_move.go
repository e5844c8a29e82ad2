package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/game"
)

// resolveMove checks ordinary exits, then hidden exits gated on an
// active trigger, then any door blocking the passage.
func resolveMove(ctx *Context, dir game.Direction) Result {
	room := ctx.Room()
	if room == nil {
		return Errorf("Stanza attuale non trovata.")
	}

	dest, ok := room.Exit(dir)
	if !ok {
		if hidden, found := room.HiddenExitAt(dir); found && ctx.World.IsTriggered(hidden.RequiredTrigger) {
			dest = hidden.RoomId
		} else {
			return Errorf(fmt.Sprintf("Non puoi andare a %s.", dir.Italian()))
		}
	}

	if state, hasDoor := ctx.World.DoorState(ctx.RoomId, dir); hasDoor && state != game.DoorOpen {
		return Errorf(fmt.Sprintf("La porta a %s è %s.", dir.Italian(), state.Italian()))
	}

	if ctx.Catalog().Room(dest) == nil {
		return Errorf("La stanza di destinazione non esiste.")
	}

	return Result{
		Type:      ResultMove,
		RoomId:    dest,
		Direction: dir,
	}
}

func moveHandler() *Handler {
	return &Handler{
		Name:        "vai",
		Aliases:     []string{"go", "muoviti"},
		RequiresArg: true,
		Description: "Muoviti verso una direzione specifica",
		Usage:       "vai <direzione>",
		Execute: func(ctx *Context, arg string) Result {
			dir, ok := game.ParseDirection(arg)
			if !ok {
				return Errorf("Direzione non riconosciuta.")
			}
			return resolveMove(ctx, dir)
		},
	}
}

// directionHandlers lets players type a bare direction to move.
func directionHandlers() []*Handler {
	dirs := []struct {
		dir     game.Direction
		aliases []string
	}{
		{game.North, []string{"north", "n"}},
		{game.South, []string{"south", "s"}},
		{game.East, []string{"east", "e"}},
		{game.West, []string{"west", "o", "w"}},
		{game.Up, []string{"up", "su"}},
		{game.Down, []string{"down", "giù"}},
	}

	handlers := make([]*Handler, 0, len(dirs))
	for _, d := range dirs {
		dir := d.dir
		handlers = append(handlers, &Handler{
			Name:        dir.Italian(),
			Aliases:     d.aliases,
			Description: fmt.Sprintf("Muoviti verso %s", dir.Italian()),
			Usage:       dir.Italian(),
			Execute: func(ctx *Context, arg string) Result {
				return resolveMove(ctx, dir)
			},
		})
	}
	return handlers
}
