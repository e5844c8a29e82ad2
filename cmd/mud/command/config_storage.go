package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/roccanera/mud/internal/game"
	"github.com/roccanera/mud/internal/storage"
)

type StorageConfig struct {
	Rooms    AssetConfig[*game.Room]    `json:"rooms"`
	Items    AssetConfig[*game.Item]    `json:"items"`
	Monsters AssetConfig[*game.Monster] `json:"monsters"`
	NPCs     AssetConfig[*game.NPC]     `json:"npcs"`
}

// BuildCatalog loads every asset directory and verifies that the
// cross-references between them resolve.
func (c *StorageConfig) BuildCatalog() (*game.Catalog, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	monsters, err := c.Monsters.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating monster store: %w", err)
	}
	npcs, err := c.NPCs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}

	catalog := &game.Catalog{
		Rooms:    rooms,
		Items:    items,
		Monsters: monsters,
		NPCs:     npcs,
	}

	if err := catalog.CheckReferences(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return catalog, nil
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Monsters.Validate("monsters"))
	el.Add(c.NPCs.Validate("npcs"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
