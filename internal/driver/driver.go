package driver

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultTickLength = time.Second
)

// Manager is anything the driver advances on a fixed interval: the
// combat engine, the game clock, the respawn sweep.
type Manager interface {
	Tick(context.Context) error
}

// TickDriver runs its managers every tickLength until the context is
// canceled. Subsystems with different cadences get their own driver.
type TickDriver struct {
	name       string
	tickLength time.Duration
	managers   []Manager
}

func NewTickDriver(name string, managers []Manager, opts ...TickDriverOpt) *TickDriver {
	d := &TickDriver{
		name:       name,
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *TickDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return fmt.Errorf("%s driver: %w", d.name, err)
			}
		}
	}
}

func (d *TickDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
