package characters_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/testutils"
)

// stepClock advances a millisecond per call so creation order is stable
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

func repositories(t *testing.T) map[string]characters.Repository {
	t.Helper()

	client, _ := testutils.CreateMiniRedisClient(t)

	sqliteRepo, err := characters.OpenSQLite(filepath.Join(t.TempDir(), "characters.db"), newStepClock())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteRepo.Close() })

	return map[string]characters.Repository{
		"memory": characters.NewInMemoryRepositoryWithClock(newStepClock()),
		"redis":  characters.NewRedis(&characters.RedisConfig{Client: client, Clock: newStepClock()}),
		"sqlite": sqliteRepo,
	}
}

func TestRepository(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			wizard := testutils.CreateTestWizard("wiz-1", 2)
			wizard.KnownSpells = []string{"fire_bolt"}
			wizard.AddItem(equipment.ItemTypeItem, "arrow", 20)

			t.Run("create and get", func(t *testing.T) {
				require.NoError(t, repo.Create(ctx, wizard))
				assert.False(t, wizard.CreatedAt.IsZero())

				got, err := repo.Get(ctx, "wiz-1")
				require.NoError(t, err)
				assert.Equal(t, wizard.Name, got.Name)
				assert.Equal(t, character.ClassWizard, got.Class)
				assert.Equal(t, []string{"fire_bolt"}, got.KnownSpells)
				assert.Equal(t, wizard.Resources, got.Resources)
				assert.Equal(t, wizard.Inventory, got.Inventory)
				require.NotNil(t, got.Equipment.Weapon)
				assert.Equal(t, wizard.Equipment.Weapon.Damage, got.Equipment.Weapon.Damage)
				assert.True(t, wizard.CreatedAt.Equal(got.CreatedAt))
			})

			t.Run("duplicate create", func(t *testing.T) {
				err := repo.Create(ctx, testutils.CreateTestWizard("wiz-1", 2))
				assert.True(t, rpgerr.IsAlreadyExists(err))
			})

			t.Run("get returns a copy", func(t *testing.T) {
				got, err := repo.Get(ctx, "wiz-1")
				require.NoError(t, err)
				got.Resources.UseSpellSlot(1)

				again, err := repo.Get(ctx, "wiz-1")
				require.NoError(t, err)
				pool, _ := again.Resources.Slot(1)
				assert.Equal(t, 2, pool.Current)
			})

			t.Run("update", func(t *testing.T) {
				got, err := repo.Get(ctx, "wiz-1")
				require.NoError(t, err)
				createdAt := got.CreatedAt

				got.Level = 2
				got.Gold = 17
				require.True(t, got.Resources.UseSpellSlot(1))
				require.NoError(t, repo.Update(ctx, got))

				again, err := repo.Get(ctx, "wiz-1")
				require.NoError(t, err)
				assert.Equal(t, 2, again.Level)
				assert.Equal(t, 17, again.Gold)
				pool, _ := again.Resources.Slot(1)
				assert.Equal(t, 1, pool.Current)
				assert.True(t, createdAt.Equal(again.CreatedAt))
				assert.True(t, again.UpdatedAt.After(createdAt))

				err = repo.Update(ctx, testutils.CreateTestFighter("ghost"))
				assert.True(t, rpgerr.IsNotFound(err))
			})

			t.Run("list in creation order", func(t *testing.T) {
				require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("fig-1")))
				require.NoError(t, repo.Create(ctx, testutils.CreateTestRogue("rog-1")))

				list, err := repo.List(ctx)
				require.NoError(t, err)
				ids := make([]string, 0, len(list))
				for _, c := range list {
					ids = append(ids, c.ID)
				}
				assert.Equal(t, []string{"wiz-1", "fig-1", "rog-1"}, ids)
			})

			t.Run("delete", func(t *testing.T) {
				require.NoError(t, repo.Delete(ctx, "fig-1"))

				_, err := repo.Get(ctx, "fig-1")
				assert.True(t, rpgerr.IsNotFound(err))
				assert.True(t, rpgerr.IsNotFound(repo.Delete(ctx, "fig-1")))

				list, err := repo.List(ctx)
				require.NoError(t, err)
				assert.Len(t, list, 2)
			})

			t.Run("validation", func(t *testing.T) {
				assert.True(t, rpgerr.IsInvalidArgument(repo.Create(ctx, nil)))
				_, err := repo.Get(ctx, "")
				assert.True(t, rpgerr.IsInvalidArgument(err))
				assert.True(t, rpgerr.IsInvalidArgument(repo.Delete(ctx, "")))
			})
		})
	}
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := characters.OpenSQLite(" ", nil)
	assert.True(t, rpgerr.IsInvalidArgument(err))
}
