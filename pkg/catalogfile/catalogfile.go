package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const CurrentVersion = "1"

func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &snap, nil
}

// Save writes snap as indented JSON, creating parent directories.
func Save(path string, snap *Snapshot) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Validate returns one message per problem found: duplicate ids or names,
// blank names or cuisines, and out-of-range numbers.
func Validate(snap *Snapshot) []string {
	var problems []string
	ids := make(map[int]bool)
	names := make(map[string]bool)

	for i, e := range snap.Restaurants {
		where := fmt.Sprintf("restaurants[%d]", i)
		if ids[e.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate id %d", where, e.ID))
		}
		ids[e.ID] = true

		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			problems = append(problems, where+": name is empty")
		case names[name]:
			problems = append(problems, fmt.Sprintf("%s: duplicate name %q", where, name))
		}
		names[name] = true

		if strings.TrimSpace(e.Cuisine) == "" {
			problems = append(problems, where+": cuisine is empty")
		}
		if e.Price < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative price %v", where, e.Price))
		}
		if e.Rating < 0 || e.Rating > 5 {
			problems = append(problems, fmt.Sprintf("%s: rating %v outside 0-5", where, e.Rating))
		}
		if e.DeliveryTime < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative delivery time %d", where, e.DeliveryTime))
		}
	}
	return problems
}
