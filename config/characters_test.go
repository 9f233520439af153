package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCharacterTable(t *testing.T) {
	require.NotNil(t, Characters)

	for a := ArchetypePotato; a < ArchetypeCount; a++ {
		stats := Characters.Stats(a)
		assert.Equal(t, a, stats.Archetype)
		assert.Positive(t, stats.Health, a.String())
		assert.Positive(t, stats.Strength, a.String())
		assert.Less(t, stats.Strength, MaxPowerPunchDamage, a.String())
		assert.NotEmpty(t, stats.SciName, a.String())
	}
}

func TestParseArchetype(t *testing.T) {
	a, err := ParseArchetype(" Broccoli ")
	require.NoError(t, err)
	assert.Equal(t, ArchetypeBroccoli, a)

	_, err = ParseArchetype("carrot")
	assert.Error(t, err)

	assert.Equal(t, "unknown", Archetype(42).String())
}

func TestParseCharactersRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing archetype", `
characters:
  - {archetype: potato, health: 100, strength: 8, speed: 200}
`},
		{"duplicate archetype", `
characters:
  - {archetype: potato, health: 100, strength: 8, speed: 200}
  - {archetype: potato, health: 100, strength: 8, speed: 200}
`},
		{"unknown archetype", `
characters:
  - {archetype: carrot, health: 100, strength: 8, speed: 200}
`},
		{"zero health", `
characters:
  - {archetype: potato, health: 0, strength: 8, speed: 200}
  - {archetype: broccoli, health: 100, strength: 8, speed: 200}
  - {archetype: eggplant, health: 100, strength: 8, speed: 200}
  - {archetype: yam, health: 100, strength: 8, speed: 200}
`},
		{"strength above power punch", `
characters:
  - {archetype: potato, health: 100, strength: 50, speed: 200}
  - {archetype: broccoli, health: 100, strength: 8, speed: 200}
  - {archetype: eggplant, health: 100, strength: 8, speed: 200}
  - {archetype: yam, health: 100, strength: 8, speed: 200}
`},
		{"not yaml", `characters: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCharacters([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCharacterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.yaml")
	body := `
characters:
  - {archetype: potato, health: 120, strength: 10, speed: 200}
  - {archetype: broccoli, health: 80, strength: 6, speed: 300}
  - {archetype: eggplant, health: 100, strength: 8, speed: 250}
  - {archetype: yam, health: 100, strength: 8, speed: 260}
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	table, err := LoadCharacterFile(path)
	require.NoError(t, err)
	assert.Equal(t, 120, table.Stats(ArchetypePotato).Health)
	assert.Equal(t, "potato", table.Stats(ArchetypePotato).Name)

	_, err = LoadCharacterFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
