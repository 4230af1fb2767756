package memory

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// Fixture data loaded when SEED_DATA is enabled. One file per collection,
// each a JSON array; the same files are valid input for the importer CLI.
//
//go:embed seed/*.json
var seedFS embed.FS

// LoadSeed fills the store from the embedded fixtures and reports how many
// records were loaded per collection. Missing files are skipped.
func (s *Store) LoadSeed() (map[string]int, error) {
	loaders := []struct {
		name string
		load func([]byte) (int, error)
	}{
		{s.Customers.Name(), seedInto(s.Customers)},
		{s.Technicians.Name(), seedInto(s.Technicians)},
		{s.Jobs.Name(), seedInto(s.Jobs)},
		{s.Estimates.Name(), seedInto(s.Estimates)},
		{s.ChangeOrders.Name(), seedInto(s.ChangeOrders)},
		{s.Invoices.Name(), seedInto(s.Invoices)},
		{s.Deposits.Name(), seedInto(s.Deposits)},
		{s.PurchaseOrders.Name(), seedInto(s.PurchaseOrders)},
		{s.Inventory.Name(), seedInto(s.Inventory)},
		{s.Vendors.Name(), seedInto(s.Vendors)},
		{s.TaxZones.Name(), seedInto(s.TaxZones)},
	}

	counts := make(map[string]int, len(loaders))
	for _, l := range loaders {
		raw, err := seedFS.ReadFile("seed/" + l.name + ".json")
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return counts, fmt.Errorf("read seed %s: %w", l.name, err)
		}
		n, err := l.load(raw)
		if err != nil {
			return counts, fmt.Errorf("load seed %s: %w", l.name, err)
		}
		counts[l.name] = n
	}
	return counts, nil
}

func seedInto[T any](c *Collection[T]) func([]byte) (int, error) {
	return func(raw []byte) (int, error) {
		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return 0, err
		}
		return len(records), c.Seed(records...)
	}
}
