// Package catalog reads the menus and tables a fresh installation starts with.
// The menu catalog and the table registry are maintained outside this service;
// the seed file only gives a local or test deployment something to order against.
//
//	menus:
//	  - id: 3f2b6a3e-...
//	    name: Fried chicken
//	    price: "19000"
//	    displayed: true
//	tables:
//	  - id: 8d1c5f1a-...
//	    name: Table 1
//	    occupied: true
//	    numberOfGuests: 4
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/table"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Menus  []menuEntry  `yaml:"menus"`
	Tables []tableEntry `yaml:"tables"`
}

type menuEntry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Price     string `yaml:"price"`
	Displayed bool   `yaml:"displayed"`
}

type tableEntry struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Occupied       bool   `yaml:"occupied"`
	NumberOfGuests int    `yaml:"numberOfGuests"`
}

// LoadFile reads a seed file from disk.
func LoadFile(path string) (commands.SeedCatalogCommand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return commands.SeedCatalogCommand{}, err
	}

	cmd, err := Load(bytes.NewReader(data))
	if err != nil {
		return commands.SeedCatalogCommand{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cmd, nil
}

// Load parses a seed document. Unknown keys are rejected to catch typos.
func Load(r io.Reader) (commands.SeedCatalogCommand, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return commands.SeedCatalogCommand{}, errors.New("seed file is empty")
		}
		return commands.SeedCatalogCommand{}, fmt.Errorf("parsing seed file: %w", err)
	}

	var problems []error

	menus := make([]*menu.Menu, 0, len(file.Menus))
	for i, entry := range file.Menus {
		m, err := entry.toDomain()
		if err != nil {
			problems = append(problems, fmt.Errorf("menus[%d]: %w", i, err))
			continue
		}
		menus = append(menus, m)
	}

	tables := make([]*table.RestaurantTable, 0, len(file.Tables))
	for i, entry := range file.Tables {
		t, err := entry.toDomain()
		if err != nil {
			problems = append(problems, fmt.Errorf("tables[%d]: %w", i, err))
			continue
		}
		tables = append(tables, t)
	}

	if err := errors.Join(problems...); err != nil {
		return commands.SeedCatalogCommand{}, err
	}

	return commands.NewSeedCatalogCommand(menus, tables)
}

func (e menuEntry) toDomain() (*menu.Menu, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.PriceFromString(e.Price)
	if err != nil {
		return nil, err
	}
	return menu.NewMenu(id, e.Name, price, e.Displayed)
}

func (e tableEntry) toDomain() (*table.RestaurantTable, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}
	return table.NewRestaurantTable(id, e.Name, e.Occupied, e.NumberOfGuests)
}
