// Package lootsort provides a high-level façade over the display refresh
// engine and its collaborators (world, settings, museum tracker, comparator
// registry and logging). Most applications interact with this package by:
//  1. Creating a LootSort via New() or FromFixture()
//  2. Optionally registering custom comparators
//  3. Calling Refresh with the inventory slots and ground stacks to display
//
// Every collaborator defaults to an in-memory implementation; hosts embedding
// the engine in a real game runtime supply their own resolver and oracle
// through Options.
package lootsort

import (
	"github.com/hupe1980/lootsort/comparator"
	"github.com/hupe1980/lootsort/core"
	"github.com/hupe1980/lootsort/engine"
	"github.com/hupe1980/lootsort/item"
	"github.com/hupe1980/lootsort/logging"
	"github.com/hupe1980/lootsort/museum"
	"github.com/hupe1980/lootsort/settings"
	"github.com/hupe1980/lootsort/world"
)

// Options configures the LootSort instance.
type Options struct {
	// World resolves handles and answers ownership questions (defaults to an
	// empty in-memory world).
	World *world.World

	// Settings (defaults to settings.DefaultSettings)
	Settings core.SettingsProvider

	// Museum (defaults to an empty in-memory tracker)
	Museum core.MuseumTracker

	// Registry (defaults to the builtin comparators)
	Registry *comparator.Registry

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// LootSort is the high-level façade aggregating the engine and its services.
type LootSort struct {
	opts   Options
	engine *engine.Engine
}

// New creates a LootSort with optional overrides. Any unset collaborator is
// replaced by its in-memory default.
func New(optFns ...func(o *Options)) *LootSort {
	opts := Options{
		World:    world.New(),
		Settings: settings.NewStatic(settings.DefaultSettings()),
		Museum:   museum.NewInMemoryTracker(),
		Registry: comparator.NewRegistry(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := engine.New(func(o *engine.Options) {
		o.Registry = opts.Registry
		o.Settings = opts.Settings
		o.Logger = opts.Logger
		o.Services = item.Services{
			Resolver:   opts.World,
			Oracle:     opts.World,
			Pickpocket: opts.World,
			Museum:     opts.Museum,
		}
	})

	return &LootSort{opts: opts, engine: e}
}

// FromFixture creates a LootSort over the fixture's world and returns it
// together with the request describing the fixture's slots and stacks.
func FromFixture(fx *world.Fixture, optFns ...func(o *Options)) (*LootSort, engine.Request) {
	fns := append([]func(o *Options){func(o *Options) { o.World = fx.World }}, optFns...)
	return New(fns...), RequestFromFixture(fx)
}

// RequestFromFixture converts a fixture into a refresh request.
func RequestFromFixture(fx *world.Fixture) engine.Request {
	req := engine.Request{Stealing: fx.Stealing}
	for _, slot := range fx.Inventory {
		req.Inventory = append(req.Inventory, engine.InventoryItem{Entry: slot.Object, Count: slot.Count})
	}
	for _, st := range fx.Ground {
		req.Ground = append(req.Ground, engine.GroundStack{Handles: st.Handles, Count: st.Count})
	}
	return req
}

// RegisterComparator makes c selectable by name in the sort order.
func (l *LootSort) RegisterComparator(c comparator.Comparator) error {
	return l.opts.Registry.Register(c)
}

// Comparators returns the selectable comparator names.
func (l *LootSort) Comparators() []string { return l.opts.Registry.Names() }

// World returns the world the façade resolves handles in.
func (l *LootSort) World() *world.World { return l.opts.World }

// Engine returns the underlying engine.
func (l *LootSort) Engine() *engine.Engine { return l.engine }

// Refresh builds, sorts and renders one loot view.
func (l *LootSort) Refresh(req engine.Request) (*engine.View, error) {
	return l.engine.Refresh(req)
}
