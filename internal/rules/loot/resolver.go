// Package loot rolls loot tables. Every entry is an independent trial, so a
// single roll can produce nothing, one drop or several.
package loot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	lootdomain "github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/loot"
)

// NoLootMessage is the message for an empty roll
const NoLootMessage = "No loot dropped."

// Tables looks loot tables up by id
type Tables interface {
	LootTable(id string) (lootdomain.Table, bool)
}

// Config holds the resolver dependencies
type Config struct {
	Tables Tables

	// Source defaults to a clock-seeded random source
	Source dice.Source
	Logger *slog.Logger
}

// Resolver rolls drops from loot tables
type Resolver struct {
	tables Tables
	source dice.Source
	logger *slog.Logger
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil || cfg.Tables == nil {
		panic("loot: tables are required")
	}

	r := &Resolver{
		tables: cfg.Tables,
		source: cfg.Source,
		logger: cfg.Logger,
	}
	if r.source == nil {
		r.source = dice.NewRandomSource(0)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// RollLoot rolls every entry of a table in order. Unknown tables yield no drops.
func (r *Resolver) RollLoot(tableID string) []lootdomain.Drop {
	table, ok := r.tables.LootTable(tableID)
	if !ok {
		r.logger.Warn("loot table not found", "table_id", tableID)
		return []lootdomain.Drop{}
	}

	drops := []lootdomain.Drop{}
	for _, entry := range table.Entries {
		// inclusive: a sample equal to the chance fires
		if r.source.Float64() > entry.Chance {
			continue
		}

		if drop, ok := r.resolve(entry); ok {
			drops = append(drops, drop)
		}
	}

	return drops
}

// resolve turns a fired entry into a drop; entries missing their data drop nothing
func (r *Resolver) resolve(entry lootdomain.Entry) (lootdomain.Drop, bool) {
	if entry.Type == lootdomain.EntryTypeGold {
		if entry.GoldRange == nil {
			return lootdomain.Drop{}, false
		}
		return lootdomain.Drop{
			Type:   lootdomain.EntryTypeGold,
			Amount: dice.IntBetween(r.source, entry.GoldRange.Min, entry.GoldRange.Max),
		}, true
	}

	if _, ok := entry.Type.ItemType(); !ok || entry.ItemID == "" {
		return lootdomain.Drop{}, false
	}

	quantity := entry.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return lootdomain.Drop{
		Type:     entry.Type,
		ItemID:   entry.ItemID,
		Quantity: quantity,
	}, true
}

// FormatLootMessage renders drops as "Obtained: 12 gold, 20x arrow, dagger"
func FormatLootMessage(drops []lootdomain.Drop) string {
	if len(drops) == 0 {
		return NoLootMessage
	}

	parts := make([]string, 0, len(drops))
	for _, drop := range drops {
		switch {
		case drop.IsGold():
			parts = append(parts, fmt.Sprintf("%d gold", drop.Amount))
		case drop.Quantity > 1:
			parts = append(parts, fmt.Sprintf("%dx %s", drop.Quantity, drop.ItemID))
		default:
			parts = append(parts, drop.ItemID)
		}
	}

	return "Obtained: " + strings.Join(parts, ", ")
}
