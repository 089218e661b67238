package content

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/loot"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
)

const (
	spellsFile  = "spells.yaml"
	classesFile = "classes.yaml"
	lootFile    = "loot.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// LoadDefault loads the tables compiled into the binary
func LoadDefault() (*Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded content: %w", err)
	}
	return Load(sub)
}

// LoadDir loads tables from spells.yaml, classes.yaml and loot.yaml in dir
func LoadDir(dir string) (*Tables, error) {
	return Load(os.DirFS(dir))
}

// Load decodes the three content documents from fsys
func Load(fsys fs.FS) (*Tables, error) {
	var spellsDoc spellsDocument
	if err := decodeFile(fsys, spellsFile, &spellsDoc); err != nil {
		return nil, err
	}
	var classesDoc classesDocument
	if err := decodeFile(fsys, classesFile, &classesDoc); err != nil {
		return nil, err
	}
	var lootDoc lootDocument
	if err := decodeFile(fsys, lootFile, &lootDoc); err != nil {
		return nil, err
	}

	t := &Tables{
		spells:  make(map[string]spell.Spell, len(spellsDoc.Spells)),
		classes: make(map[character.Class]*ClassTemplate, len(classesDoc.Classes)),
		loot:    make(map[string]loot.Table, len(lootDoc.Tables)),
	}

	for _, doc := range spellsDoc.Spells {
		s, err := doc.toSpell()
		if err != nil {
			return nil, err
		}
		if _, dup := t.spells[s.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate spell %q", spellsFile, s.ID)
		}
		t.spells[s.ID] = s
	}

	for name, doc := range classesDoc.Classes {
		class, ok := character.ParseClass(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown class %q", classesFile, name)
		}
		tmpl, err := doc.toTemplate(class, t.spells)
		if err != nil {
			return nil, err
		}
		t.classes[class] = tmpl
	}

	for _, doc := range lootDoc.Tables {
		if doc.ID == "" {
			return nil, fmt.Errorf("%s: loot table without id", lootFile)
		}
		if _, dup := t.loot[doc.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate loot table %q", lootFile, doc.ID)
		}
		table, err := doc.toTable()
		if err != nil {
			return nil, err
		}
		t.loot[doc.ID] = table
	}

	return t, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

type spellsDocument struct {
	Spells []spellDoc `yaml:"spells"`
}

type spellDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Level       int             `yaml:"level"`
	School      spell.School    `yaml:"school"`
	Target      targetDoc       `yaml:"target"`
	Effect      effectDoc       `yaml:"effect"`
	SavingThrow *savingThrowDoc `yaml:"saving_throw"`
	Description string          `yaml:"description"`
}

type targetDoc struct {
	Shape spell.Shape `yaml:"shape"`
	Size  int         `yaml:"size"`
	Count int         `yaml:"count"`
}

type savingThrowDoc struct {
	Ability   string            `yaml:"ability"`
	OnSuccess spell.SaveOutcome `yaml:"on_success"`
}

type effectDoc struct {
	Kind       spell.EffectKind `yaml:"kind"`
	Dice       string           `yaml:"dice"`
	DamageType string           `yaml:"damage_type"`
	Stat       string           `yaml:"stat"`
	Bonus      int              `yaml:"bonus"`
	Rounds     int              `yaml:"rounds"`
	Condition  string           `yaml:"condition"`
}

func (d spellDoc) toSpell() (spell.Spell, error) {
	if d.ID == "" {
		return spell.Spell{}, fmt.Errorf("%s: spell without id", spellsFile)
	}

	effect, err := d.Effect.toEffect()
	if err != nil {
		return spell.Spell{}, fmt.Errorf("%s: spell %q: %w", spellsFile, d.ID, err)
	}

	name := d.Name
	if name == "" {
		name = displayName(d.ID)
	}

	s := spell.Spell{
		ID:          d.ID,
		Name:        name,
		Level:       d.Level,
		School:      d.School,
		Target:      spell.Target(d.Target),
		Effect:      effect,
		Description: d.Description,
	}
	if d.SavingThrow != nil {
		s.SavingThrow = &spell.SavingThrow{Ability: d.SavingThrow.Ability, OnSuccess: d.SavingThrow.OnSuccess}
	}
	return s, nil
}

func (d effectDoc) toEffect() (spell.Effect, error) {
	switch d.Kind {
	case spell.EffectKindDamage:
		expr, err := dice.Parse(d.Dice)
		if err != nil {
			return nil, err
		}
		return spell.DamageEffect{Dice: expr, DamageType: d.DamageType}, nil
	case spell.EffectKindHeal:
		expr, err := dice.Parse(d.Dice)
		if err != nil {
			return nil, err
		}
		return spell.HealEffect{Dice: expr}, nil
	case spell.EffectKindBuff:
		return spell.BuffEffect{Stat: d.Stat, Bonus: d.Bonus, Rounds: d.Rounds}, nil
	case spell.EffectKindCondition:
		return spell.ConditionEffect{Condition: d.Condition, Rounds: d.Rounds}, nil
	}
	return nil, fmt.Errorf("unknown effect kind %q", d.Kind)
}

type classesDocument struct {
	Classes map[string]classDoc `yaml:"classes"`
}

type classDoc struct {
	StartingWeapon *weaponDoc         `yaml:"starting_weapon"`
	Abilities      []abilityDoc       `yaml:"abilities"`
	AttackVariants []attackVariantDoc `yaml:"attack_variants"`
	SpellSlots     []slotStepDoc      `yaml:"spell_slots"`
	Spells         map[int][]string   `yaml:"spells"`
	Progression    []progressionDoc   `yaml:"progression"`
}

type weaponDoc struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Damage     string `yaml:"damage"`
	DamageType string `yaml:"damage_type"`
}

type abilityDoc struct {
	Name        string                `yaml:"name"`
	Type        character.AbilityType `yaml:"type"`
	MaxUses     int                   `yaml:"max_uses"`
	Description string                `yaml:"description"`
}

type attackVariantDoc struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	AttackModifier int    `yaml:"attack_modifier"`
	DamageModifier int    `yaml:"damage_modifier"`
}

type slotStepDoc struct {
	FromLevel int            `yaml:"from_level"`
	Slots     map[string]int `yaml:"slots"`
}

type progressionDoc struct {
	Level         int `yaml:"level"`
	SpellsToLearn int `yaml:"spells_to_learn"`
	SpellLevel    int `yaml:"spell_level"`
}

func (d classDoc) toTemplate(class character.Class, spells map[string]spell.Spell) (*ClassTemplate, error) {
	tmpl := &ClassTemplate{
		Class:       class,
		SpellLists:  make(map[int][]string, len(d.Spells)),
		Progression: make(map[int]ProgressionStep, len(d.Progression)),
	}

	if w := d.StartingWeapon; w != nil {
		expr, err := dice.Parse(w.Damage)
		if err != nil {
			return nil, fmt.Errorf("%s: %s starting weapon: %w", classesFile, class, err)
		}
		name := w.Name
		if name == "" {
			name = displayName(w.ID)
		}
		tmpl.StartingWeapon = &equipment.Weapon{ID: w.ID, Name: name, Damage: expr, DamageType: w.DamageType}
	}

	for _, a := range d.Abilities {
		switch a.Type {
		case character.AbilityTypeEncounter, character.AbilityTypeAtWill:
		default:
			return nil, fmt.Errorf("%s: %s ability %q: unknown type %q", classesFile, class, a.Name, a.Type)
		}
		tmpl.Abilities = append(tmpl.Abilities, character.Ability{
			Name:        a.Name,
			Type:        a.Type,
			MaxUses:     a.MaxUses,
			CurrentUses: a.MaxUses,
			Description: a.Description,
		})
	}

	for _, v := range d.AttackVariants {
		tmpl.AttackVariants = append(tmpl.AttackVariants, AttackVariant(v))
	}

	for _, s := range d.SpellSlots {
		tmpl.SlotSteps = append(tmpl.SlotSteps, SlotStep(s))
	}
	slices.SortFunc(tmpl.SlotSteps, func(a, b SlotStep) int {
		return cmp.Compare(a.FromLevel, b.FromLevel)
	})

	for tier, ids := range d.Spells {
		for _, id := range ids {
			s, ok := spells[id]
			if !ok {
				return nil, fmt.Errorf("%s: %s spell list references unknown spell %q", classesFile, class, id)
			}
			if s.Level != tier {
				return nil, fmt.Errorf("%s: %s lists %q as tier %d but it is level %d", classesFile, class, id, tier, s.Level)
			}
		}
		tmpl.SpellLists[tier] = ids
	}

	for _, p := range d.Progression {
		tmpl.Progression[p.Level] = ProgressionStep{SpellsToLearn: p.SpellsToLearn, SpellLevel: p.SpellLevel}
	}

	return tmpl, nil
}

type lootDocument struct {
	Tables []lootTableDoc `yaml:"tables"`
}

type lootTableDoc struct {
	ID      string         `yaml:"id"`
	Entries []lootEntryDoc `yaml:"entries"`
}

type lootEntryDoc struct {
	Type      loot.EntryType `yaml:"type"`
	Chance    float64        `yaml:"chance"`
	GoldRange *goldRangeDoc  `yaml:"gold_range"`
	ItemID    string         `yaml:"item_id"`
	Quantity  int            `yaml:"quantity"`
}

type goldRangeDoc struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (d lootTableDoc) toTable() (loot.Table, error) {
	table := loot.Table{ID: d.ID, Entries: make([]loot.Entry, 0, len(d.Entries))}
	for i, e := range d.Entries {
		if e.Chance < 0 || e.Chance > 1 {
			return loot.Table{}, fmt.Errorf("%s: %s entry %d: chance %v outside [0,1]", lootFile, d.ID, i, e.Chance)
		}

		entry := loot.Entry{Type: e.Type, Chance: e.Chance, ItemID: e.ItemID, Quantity: e.Quantity}
		switch e.Type {
		case loot.EntryTypeGold:
			if e.GoldRange == nil || e.GoldRange.Min > e.GoldRange.Max {
				return loot.Table{}, fmt.Errorf("%s: %s entry %d: gold needs a gold_range with min <= max", lootFile, d.ID, i)
			}
			entry.GoldRange = &loot.GoldRange{Min: e.GoldRange.Min, Max: e.GoldRange.Max}
		case loot.EntryTypeItem, loot.EntryTypeWeapon, loot.EntryTypeArmor:
			if e.ItemID == "" {
				return loot.Table{}, fmt.Errorf("%s: %s entry %d: %s needs an item_id", lootFile, d.ID, i, e.Type)
			}
		default:
			return loot.Table{}, fmt.Errorf("%s: %s entry %d: unknown type %q", lootFile, d.ID, i, e.Type)
		}
		table.Entries = append(table.Entries, entry)
	}
	return table, nil
}
