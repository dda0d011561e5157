// Package engine computes derived statistics for entities in the
// object-definition tree: attribute resolution with level scaling and
// boosts, modifier aggregation across mutations and equipment, and the
// catalog of named derived properties.
package engine

import (
	"log/slog"

	"github.com/hindren/qudprops/internal/blueprint"
	qerr "github.com/hindren/qudprops/internal/errors"
	"github.com/hindren/qudprops/internal/rules"
)

// Config holds the engine dependencies.
type Config struct {
	// Store resolves entity fields and references. Required.
	Store blueprint.Store

	// Logger receives reports of malformed or inconsistent definition
	// data. Defaults to slog.Default().
	Logger *slog.Logger

	// Tables overrides the stock data tables. Defaults to
	// rules.DefaultTables().
	Tables *rules.Tables
}

// Engine answers derived-property queries. All methods are pure reads
// over immutable entity data; an Engine is safe for concurrent use.
type Engine struct {
	store  blueprint.Store
	log    *slog.Logger
	tables rules.Tables
}

// New creates an engine from the given config.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil || cfg.Store == nil {
		return nil, qerr.InvalidArgument("engine requires a store")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	tables := rules.DefaultTables()
	if cfg.Tables != nil {
		tables = *cfg.Tables
	}

	return &Engine{
		store:  cfg.Store,
		log:    log,
		tables: tables,
	}, nil
}

// CharacterClass is the three-way classification many properties branch
// on.
type CharacterClass int

const (
	// NotCharacter covers takeable items, gases, and projectiles.
	NotCharacter CharacterClass = iota

	// ActiveCharacter has both combat and decision-making capability.
	ActiveCharacter

	// InactiveCharacter is stationary scenery that still benefits from
	// combat stats: immobile, lacking combat or a brain.
	InactiveCharacter
)

// Classify determines whether the entity behaves as a character. An
// entity that is flagged non-takeable and is not a gas counts as some
// kind of character; it is active only when it has both a Combat part
// and a Brain part.
func (g *Engine) Classify(e *blueprint.Entity) CharacterClass {
	takeable, ok := g.part(e, "Physics", "Takeable")
	if !ok || (takeable != "false" && takeable != "False") {
		return NotCharacter
	}
	if g.store.IsFieldPresent(e, blueprint.GroupPart, "Gas") {
		return NotCharacter
	}

	if g.partPresent(e, "Combat") && g.partPresent(e, "Brain") {
		return ActiveCharacter
	}
	return InactiveCharacter
}

// IsCharacter reports whether the entity is an active or inactive
// character.
func (g *Engine) IsCharacter(e *blueprint.Entity) bool {
	return g.Classify(e) != NotCharacter
}
