package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-service"
	"github.com/roccanera/mud/internal/clock"
	"github.com/roccanera/mud/internal/combat"
	"github.com/roccanera/mud/internal/commands"
	"github.com/roccanera/mud/internal/driver"
	"github.com/roccanera/mud/internal/listener"
	"github.com/roccanera/mud/internal/messaging"
	"github.com/roccanera/mud/internal/respawn"
	"github.com/roccanera/mud/internal/session"
	"github.com/roccanera/mud/internal/world"
)

const respawnSweepDefault = 5 * time.Second

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading world catalog: %w", err)
	}
	if catalog.Room(cfg.Game.StartRoom) == nil {
		return nil, fmt.Errorf("start_room %q not found in catalog", cfg.Game.StartRoom)
	}

	state := world.NewState(catalog, cfg.Game.StartRoom)

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	pub := messaging.NewPublisher(natsServer, state)

	var trackerOpts []respawn.TrackerOpt
	if d, ok := cfg.Game.duration(cfg.Game.ItemRespawn); ok {
		trackerOpts = append(trackerOpts, respawn.WithItemDelay(d))
	}
	if d, ok := cfg.Game.duration(cfg.Game.MonsterRespawn); ok {
		trackerOpts = append(trackerOpts, respawn.WithMonsterDelay(d))
	}
	tracker := respawn.NewTracker(state, trackerOpts...)

	var combatOpts []combat.ManagerOpt
	if d, ok := cfg.Game.duration(cfg.Game.TurnDuration); ok {
		combatOpts = append(combatOpts, combat.WithTurnDuration(d))
	}
	combatManager := combat.NewManager(state, pub, tracker, combatOpts...)

	clockManager := clock.NewManager(pub)

	sessions := session.NewManager(
		state,
		commands.NewRegistry(),
		combatManager,
		tracker,
		clockManager,
		pub,
		natsServer,
	)
	connections := listener.NewConnectionManager(sessions)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		worker, err := l.BuildListener(connections)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = worker
	}

	sweep := respawnSweepDefault
	if d, ok := cfg.Game.duration(cfg.Game.RespawnSweep); ok {
		sweep = d
	}

	// Combat and the clock advance every second; respawns are swept
	// less often since delays are measured in minutes.
	combatDriver := driver.NewTickDriver("combat", []driver.Manager{combatManager})
	clockDriver := driver.NewTickDriver("clock", []driver.Manager{clockManager})
	respawnDriver := driver.NewTickDriver("respawn", []driver.Manager{tracker},
		driver.WithTickLength(sweep))

	return service.WorkerList{
		"nats":           natsServer,
		"combat-driver":  combatDriver,
		"clock-driver":   clockDriver,
		"respawn-driver": respawnDriver,
		"listeners":      &listeners,
	}, nil
}
