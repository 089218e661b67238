package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
)

func sqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "adventurer.db"))
	t.Setenv("SPELL_SOURCE", "content")
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOOT_SEED", "7")
	t.Setenv("OTEL_ENDPOINT", "")
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	a := &app{}
	t.Cleanup(func() { a.close(context.Background()) })

	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCLI_CharacterLifecycle(t *testing.T) {
	sqliteEnv(t)

	created := run(t, "create", "--name", "Brom", "--class", "fighter", "--mechanics")
	assert.Contains(t, created, "Created Brom the Fighter")

	listed := run(t, "list")
	fields := strings.Fields(listed)
	require.NotEmpty(t, fields)
	id := fields[0]

	actions := run(t, "actions", id)
	assert.Contains(t, actions, "Longsword")
	assert.Contains(t, actions, "Power Attack")

	acted := run(t, "act", id, "second", "wind")
	assert.Contains(t, acted, "Brom uses Second Wind")
	assert.Contains(t, acted, "0 uses remaining")

	again := run(t, "act", id, "Second Wind")
	assert.Contains(t, again, "Cannot Second Wind: No uses remaining")

	rested := run(t, "rest", id)
	assert.Contains(t, rested, "Second Wind (1/1)")

	run(t, "defeat", id, "no_loot")
	assert.Contains(t, run(t, "delete", id), "Deleted")
	assert.Contains(t, run(t, "list"), "No characters.")
}

func TestCLI_LevelUpWizard(t *testing.T) {
	sqliteEnv(t)

	run(t, "create", "--name", "Ilsa", "--class", "wizard")
	id := strings.Fields(run(t, "list"))[0]

	preview := run(t, "levelup", id, "2", "--preview")
	assert.Contains(t, preview, "Choose up to 1 level 1 spells")
	assert.Contains(t, preview, "magic_missile")

	leveled := run(t, "levelup", id, "2", "--spell", "shield")
	assert.Contains(t, leveled, "Ilsa reached level 2")
	assert.Contains(t, leveled, "level1: 3/3")
	assert.Contains(t, leveled, "shield")
}

func TestCLI_LootAndSpells(t *testing.T) {
	sqliteEnv(t)

	tables := run(t, "loot")
	assert.Contains(t, tables, "bandit_loot")

	rolls := strings.Split(strings.TrimSpace(run(t, "loot", "skeleton_loot", "--rolls", "3")), "\n")
	assert.Len(t, rolls, 3)

	spells := run(t, "spells", "cleric")
	assert.Contains(t, spells, "sacred_flame")
	assert.Contains(t, run(t, "spells", "rogue"), "has no level 0 spells")
}

func TestFindAction(t *testing.T) {
	available := []action.Action{
		action.Attack{Base: action.Base{Name: "Longsword"}},
		action.UseAbility{Base: action.Base{Name: "Second Wind"}, AbilityName: "Second Wind"},
	}

	got, ok := findAction(available, " second WIND ")
	require.True(t, ok)
	assert.Equal(t, action.KindUseAbility, got.Kind())

	_, ok = findAction(available, "Fireball")
	assert.False(t, ok)
}
