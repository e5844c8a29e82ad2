package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/game"
)

func statsHandler() *Handler {
	return &Handler{
		Name:        "statistiche",
		Aliases:     []string{"stats", "scheda", "status"},
		Description: "Visualizza le tue statistiche e equipaggiamento",
		Usage:       "statistiche",
		Execute: func(ctx *Context, arg string) Result {
			return Result{Type: ResultShowStats}
		},
	}
}

func experienceHandler() *Handler {
	return &Handler{
		Name:        "esperienza",
		Aliases:     []string{"exp", "experience"},
		Description: "Mostra i tuoi punti esperienza",
		Usage:       "esperienza",
		Execute: func(ctx *Context, arg string) Result {
			progress := game.GetExperienceProgress(ctx.Experience)

			msg := fmt.Sprintf("Esperienza: livello %d, %d XP totali", progress.Level, progress.TotalExp)
			if progress.HasNext {
				msg += fmt.Sprintf("\nProssimo livello: %d/%d XP (%d%%)",
					progress.ExpInLevel, progress.ExpForNext, progress.Percent)
			} else {
				msg += "\nHai raggiunto il livello massimo."
			}

			return Result{Type: ResultInfo, Message: msg}
		},
	}
}

func timeHandler() *Handler {
	return &Handler{
		Name:        "tempo",
		Aliases:     []string{"ora", "time"},
		Description: "Mostra l'ora attuale del gioco",
		Usage:       "tempo",
		Execute: func(ctx *Context, arg string) Result {
			return Result{
				Type:    ResultInfo,
				Message: fmt.Sprintf("%s - %s", ctx.GameTime.PhaseName, ctx.GameTime.TimeString),
			}
		},
	}
}

func helpHandler(r *Registry) *Handler {
	return &Handler{
		Name:        "aiuto",
		Aliases:     []string{"help", "comandi"},
		Description: "Mostra questo elenco di comandi",
		Usage:       "aiuto",
		Execute: func(ctx *Context, arg string) Result {
			return Result{Type: ResultHelp, Message: r.helpText()}
		},
	}
}
