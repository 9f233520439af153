package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Archetype is one of the four fixed fighter types.
type Archetype int

const (
	ArchetypePotato Archetype = iota
	ArchetypeBroccoli
	ArchetypeEggplant
	ArchetypeYam
	ArchetypeCount // Must be last - used for array sizing
)

var archetypeNames = [ArchetypeCount]string{
	ArchetypePotato:   "potato",
	ArchetypeBroccoli: "broccoli",
	ArchetypeEggplant: "eggplant",
	ArchetypeYam:      "yam",
}

func (a Archetype) String() string {
	if a < 0 || a >= ArchetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// ParseArchetype maps a lowercase name ("potato", "yam", ...) to its Archetype.
func ParseArchetype(name string) (Archetype, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range archetypeNames {
		if s == n {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown archetype %q", name)
}

func (a *Archetype) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseArchetype(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// CharacterStats are the base stats of one archetype.
type CharacterStats struct {
	Archetype Archetype `yaml:"archetype"`
	Name      string    `yaml:"name"`
	SciName   string    `yaml:"sci_name"`
	Health    int       `yaml:"health"`
	Strength  int       `yaml:"strength"`
	Speed     float64   `yaml:"speed"`
	Abilities string    `yaml:"abilities"`
}

// CharacterTable is the read-only archetype -> stats mapping.
type CharacterTable struct {
	stats [ArchetypeCount]CharacterStats
}

// Stats returns the base stats of an archetype.
func (t *CharacterTable) Stats(a Archetype) CharacterStats {
	if a < 0 || a >= ArchetypeCount {
		return CharacterStats{}
	}
	return t.stats[a]
}

type characterFile struct {
	Characters []CharacterStats `yaml:"characters"`
}

//go:embed characters.yaml
var defaultCharacters []byte

// Characters is the table loaded at process start from the embedded file.
var Characters *CharacterTable

func init() {
	table, err := ParseCharacters(defaultCharacters)
	if err != nil {
		panic("failed to load embedded character table: " + err.Error())
	}
	Characters = table
}

// ParseCharacters decodes and validates a character table. Every archetype
// must appear exactly once.
func ParseCharacters(data []byte) (*CharacterTable, error) {
	var file characterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: unmarshal characters: %w", err)
	}

	var seen [ArchetypeCount]bool
	table := &CharacterTable{}
	for _, c := range file.Characters {
		if seen[c.Archetype] {
			return nil, fmt.Errorf("config: duplicate archetype %s", c.Archetype)
		}
		if c.Health <= 0 || c.Strength <= 0 || c.Speed <= 0 {
			return nil, fmt.Errorf("config: %s: health, strength and speed must be positive", c.Archetype)
		}
		if c.Strength > MaxPowerPunchDamage {
			return nil, fmt.Errorf("config: %s: strength %d exceeds max power punch damage %d",
				c.Archetype, c.Strength, MaxPowerPunchDamage)
		}
		if c.Name == "" {
			c.Name = archetypeNames[c.Archetype]
		}
		seen[c.Archetype] = true
		table.stats[c.Archetype] = c
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("config: missing archetype %s", Archetype(i))
		}
	}
	return table, nil
}

// LoadCharacterFile reads a character table from disk.
func LoadCharacterFile(path string) (*CharacterTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return ParseCharacters(data)
}
