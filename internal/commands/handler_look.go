package commands

func lookHandler() *Handler {
	return &Handler{
		Name:        "guarda",
		Aliases:     []string{"look", "osserva"},
		Description: "Guarda la stanza attuale",
		Usage:       "guarda",
		Execute: func(ctx *Context, arg string) Result {
			// "guarda oggetto <x>" re-routes to esamina via the
			// multi-word pass; a bare look shows the room.
			return Result{Type: ResultLook, RoomId: ctx.RoomId}
		},
	}
}
