package display

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs exposes the sprig helpers (join among them) to the
// view templates.
var templateFuncs = sprig.TxtFuncMap()

// MonsterView is one monster line in a room rendering.
type MonsterView struct {
	Name      string
	CurrentHp int
	MaxHp     int
	Alive     bool
}

// RoomView is everything a player sees when looking at a room.
type RoomView struct {
	Title       string
	Description string
	Exits       []string
	Items       []string
	NPCs        []string
	Monsters    []MonsterView
	Players     []string
}

const roomTemplate = `{{ .Title }}

{{ .Description }}
{{ if .Exits }}[Uscite: {{ join ", " .Exits }}]{{ else }}[Nessuna uscita]{{ end }}
{{- if .Items }}
[Oggetti: {{ join ", " .Items }}]
{{- end }}
{{- range .Monsters }}
{{ if .Alive }}{{ .Name }} ({{ .CurrentHp }}/{{ .MaxHp }} PF) è qui.{{ else }}Il corpo senza vita di {{ .Name }} giace a terra.{{ end }}
{{- end }}
{{- if .NPCs }}
[Personaggi: {{ join ", " .NPCs }}]
{{- end }}
{{- if .Players }}
[Presenti: {{ join ", " .Players }}]
{{- end }}`

var roomTmpl = template.Must(template.New("room").Funcs(templateFuncs).Parse(roomTemplate))

// RenderRoom renders the standard room view, word-wrapped for telnet.
func RenderRoom(v RoomView) string {
	var buf bytes.Buffer
	if err := roomTmpl.Execute(&buf, v); err != nil {
		return v.Title
	}
	return Wrap(buf.String())
}

// SlotView is one equipment line in the stats sheet.
type SlotView struct {
	Slot string
	Item string
}

// StatsView is the data behind the character sheet.
type StatsView struct {
	Name       string
	Level      int
	Experience int
	CurrentHp  int
	MaxHp      int

	Attack       int
	AttackBase   int
	AttackBonus  int
	Defense      int
	DefenseBase  int
	DefenseBonus int

	Equipment []SlotView
}

const statsTemplate = `Statistiche di {{ .Name }}
Livello {{ .Level }} ({{ .Experience }} XP)
Punti ferita: {{ .CurrentHp }}/{{ .MaxHp }}
Attacco: {{ .Attack }} ({{ .AttackBase }} base {{ if ge .AttackBonus 0 }}+{{ end }}{{ .AttackBonus }} equip.)
Difesa: {{ .Defense }} ({{ .DefenseBase }} base {{ if ge .DefenseBonus 0 }}+{{ end }}{{ .DefenseBonus }} equip.)
Equipaggiamento:
{{- range .Equipment }}
  {{ .Slot }}: {{ if .Item }}{{ .Item }}{{ else }}(vuoto){{ end }}
{{- end }}`

var statsTmpl = template.Must(template.New("stats").Funcs(templateFuncs).Parse(statsTemplate))

// RenderStats renders the character sheet.
func RenderStats(v StatsView) string {
	var buf bytes.Buffer
	if err := statsTmpl.Execute(&buf, v); err != nil {
		return v.Name
	}
	return Wrap(buf.String())
}
