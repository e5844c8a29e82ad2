package display

import (
	"strings"
	"testing"
)

func TestRenderRoom(t *testing.T) {
	tests := map[string]struct {
		view RoomView
		want []string
	}{
		"bare room": {
			view: RoomView{Title: "Cella", Description: "Quattro mura di pietra."},
			want: []string{"Cella", "Quattro mura di pietra.", "[Nessuna uscita]"},
		},
		"full room": {
			view: RoomView{
				Title:       "Piazza",
				Description: "Una piazza assolata.",
				Exits:       []string{"est", "nord"},
				Items:       []string{"sasso", "boccale"},
				NPCs:        []string{"Oste"},
				Players:     []string{"Mario"},
				Monsters: []MonsterView{
					{Name: "Lupo", CurrentHp: 20, MaxHp: 35, Alive: true},
					{Name: "Ratto", CurrentHp: 0, MaxHp: 10},
				},
			},
			want: []string{
				"[Uscite: est, nord]",
				"[Oggetti: sasso, boccale]",
				"Lupo (20/35 PF) è qui.",
				"Il corpo senza vita di Ratto giace a terra.",
				"[Personaggi: Oste]",
				"[Presenti: Mario]",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := RenderRoom(tt.view)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderStats(t *testing.T) {
	got := RenderStats(StatsView{
		Name:       "Mario",
		Level:      2,
		Experience: 1200,
		CurrentHp:  80,
		MaxHp:      100,
		Attack:     14, AttackBase: 10, AttackBonus: 4,
		Defense: 5, DefenseBase: 5, DefenseBonus: 0,
		Equipment: []SlotView{
			{Slot: "mano destra", Item: "spada corta"},
			{Slot: "mano sinistra"},
		},
	})

	for _, want := range []string{
		"Statistiche di Mario",
		"Livello 2 (1200 XP)",
		"Punti ferita: 80/100",
		"Attacco: 14 (10 base +4 equip.)",
		"mano destra: spada corta",
		"mano sinistra: (vuoto)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestWrapWidth(t *testing.T) {
	long := strings.Repeat("parola ", 30)
	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line exceeds %d columns: %q", DefaultWidth, line)
		}
	}
}
