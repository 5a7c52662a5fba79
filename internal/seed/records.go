// Package seed loads the initial network from a file, an object store or Postgres.
//
// Files hold one row per location and item:
//
//	location_id,location_name,kind,address,x,y,item_name,stock,demand,optimal
//
// Location attributes are taken from the first row of each location; rows keep their
// order, so locations and items appear in the order they are first listed.
package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
)

// Columns is the header written by WriteCSV and expected by the parsers
var Columns = []string{"location_id", "location_name", "kind", "address", "x", "y", "item_name", "stock", "demand", "optimal"}

var requiredColumns = []string{"location_id", "kind"}

func parseRecords(records [][]string) ([]domain.Location, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty seed", domain.ErrInvalidSeed)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrInvalidSeed, name)
		}
	}

	var locations []domain.Location
	index := make(map[string]int)

	for n, record := range records[1:] {
		row := n + 2
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		id := get("location_id")
		if id == "" && isBlank(record) {
			continue
		}

		i, seen := index[id]
		if !seen {
			loc, err := locationFrom(get, row)
			if err != nil {
				return nil, err
			}
			index[id] = len(locations)
			locations = append(locations, loc)
			i = len(locations) - 1
		}

		item := get("item_name")
		if item == "" {
			continue
		}
		line, err := lineFrom(get, row)
		if err != nil {
			return nil, err
		}
		locations[i].Inventory = append(locations[i].Inventory, line)
	}

	if err := inventory.Validate(locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func locationFrom(get func(string) string, row int) (domain.Location, error) {
	kind, ok := domain.ParseLocationKind(get("kind"))
	if !ok {
		return domain.Location{}, fmt.Errorf("%w: row %d: unknown kind %q", domain.ErrInvalidSeed, row, get("kind"))
	}
	x, err := parseFloat(get("x"), "x", row)
	if err != nil {
		return domain.Location{}, err
	}
	y, err := parseFloat(get("y"), "y", row)
	if err != nil {
		return domain.Location{}, err
	}

	name := get("location_name")
	if name == "" {
		name = get("location_id")
	}
	return domain.Location{
		ID:      get("location_id"),
		Name:    name,
		Kind:    kind,
		Address: get("address"),
		X:       x,
		Y:       y,
	}, nil
}

func lineFrom(get func(string) string, row int) (domain.InventoryLine, error) {
	line := domain.InventoryLine{ItemName: get("item_name")}
	fields := []struct {
		name string
		dst  *int
	}{
		{"stock", &line.Stock},
		{"demand", &line.Demand},
		{"optimal", &line.Optimal},
	}
	for _, f := range fields {
		v, err := parseInt(get(f.name), f.name, row)
		if err != nil {
			return domain.InventoryLine{}, err
		}
		*f.dst = v
	}
	return line, nil
}

func parseInt(raw, column string, row int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// spreadsheets often export integers as "12.0"
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("%w: row %d: %s %q is not an integer", domain.ErrInvalidSeed, row, column, raw)
		}
		v = int(f)
	}
	return v, nil
}

func parseFloat(raw, column string, row int) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %s %q is not a number", domain.ErrInvalidSeed, row, column, raw)
	}
	return v, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// toRecords flattens locations back into rows under Columns
func toRecords(locations []domain.Location) [][]string {
	records := [][]string{Columns}
	for _, loc := range locations {
		base := []string{
			loc.ID,
			loc.Name,
			string(loc.Kind),
			loc.Address,
			strconv.FormatFloat(loc.X, 'f', -1, 64),
			strconv.FormatFloat(loc.Y, 'f', -1, 64),
		}
		if len(loc.Inventory) == 0 {
			records = append(records, append(append([]string(nil), base...), "", "", "", ""))
			continue
		}
		for _, line := range loc.Inventory {
			records = append(records, append(append([]string(nil), base...),
				line.ItemName,
				strconv.Itoa(line.Stock),
				strconv.Itoa(line.Demand),
				strconv.Itoa(line.Optimal),
			))
		}
	}
	return records
}
