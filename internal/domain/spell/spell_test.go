package spell_test

import (
	"testing"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	"github.com/stretchr/testify/assert"
)

func TestSpell_RequiresSlot(t *testing.T) {
	cantrip := &spell.Spell{ID: "fire_bolt", Level: 0}
	leveled := &spell.Spell{ID: "magic_missile", Level: 1}

	assert.True(t, cantrip.IsCantrip())
	assert.False(t, cantrip.RequiresSlot())
	assert.False(t, leveled.IsCantrip())
	assert.True(t, leveled.RequiresSlot())
}

func TestEffect_Kind(t *testing.T) {
	tests := []struct {
		effect spell.Effect
		want   spell.EffectKind
	}{
		{effect: spell.DamageEffect{Dice: dice.MustParse("1d10"), DamageType: "fire"}, want: spell.EffectKindDamage},
		{effect: spell.HealEffect{Dice: dice.MustParse("1d8")}, want: spell.EffectKindHeal},
		{effect: spell.BuffEffect{Stat: "attack", Bonus: 1, Rounds: 10}, want: spell.EffectKindBuff},
		{effect: spell.ConditionEffect{Condition: "asleep", Rounds: 10}, want: spell.EffectKindCondition},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.effect.Kind())
		})
	}
}
