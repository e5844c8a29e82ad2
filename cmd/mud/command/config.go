package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Listeners []ListenerConfig `json:"listeners"`
	Storage   StorageConfig    `json:"storage"`
	Nats      NatsConfig       `json:"nats"`
	Game      GameConfig       `json:"game"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Game.Validate())

	return el.Err()
}

// GameConfig tunes the simulation. All durations are Go duration
// strings; empty means the built-in default.
type GameConfig struct {
	StartRoom      string `json:"start_room"`
	TurnDuration   string `json:"turn_duration,omitempty"`
	ItemRespawn    string `json:"item_respawn,omitempty"`
	MonsterRespawn string `json:"monster_respawn,omitempty"`
	RespawnSweep   string `json:"respawn_sweep,omitempty"`
}

func (c *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}

	for name, v := range map[string]string{
		"turn_duration":   c.TurnDuration,
		"item_respawn":    c.ItemRespawn,
		"monster_respawn": c.MonsterRespawn,
		"respawn_sweep":   c.RespawnSweep,
	} {
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			el.Add(fmt.Errorf("parsing %s: %w", name, err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("%s must be at least 1 second", name))
		}
	}

	return el.Err()
}

func (c *GameConfig) duration(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
