package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/lootsort/comparator"
	"github.com/hupe1980/lootsort/core"
	"github.com/hupe1980/lootsort/item"
	"github.com/hupe1980/lootsort/logging"
	"github.com/hupe1980/lootsort/settings"
)

// DefaultOrder names the fixed entry ordering used when no sort order is
// configured.
const DefaultOrder = "default"

// Options configures an Engine.
type Options struct {
	// Registry resolves configured comparator names. Defaults to a registry
	// seeded with the builtins.
	Registry *comparator.Registry

	// Settings is read once per refresh. Defaults to settings.DefaultSettings.
	Settings core.SettingsProvider

	// Services are handed to every entry the engine builds.
	Services item.Services

	// Logger defaults to a NoOpLogger.
	Logger logging.Logger

	// NewID generates refresh identifiers. Defaults to random UUIDs.
	NewID func() string

	// Now is the clock used for refresh durations.
	Now func() time.Time
}

// Engine builds sorted loot views.
type Engine struct {
	registry *comparator.Registry
	settings core.SettingsProvider
	services item.Services
	logger   logging.Logger
	newID    func() string
	now      func() time.Time
}

// New creates an Engine with in-memory defaults for everything not set by
// optFns.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Registry: comparator.NewRegistry(),
		Settings: settings.NewStatic(settings.DefaultSettings()),
		Logger:   logging.NoOpLogger{},
		NewID:    uuid.NewString,
		Now:      time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		opts.Registry = comparator.NewRegistry()
	}
	if opts.Settings == nil {
		opts.Settings = settings.NewStatic(settings.DefaultSettings())
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		registry: opts.Registry,
		settings: opts.Settings,
		services: opts.Services,
		logger:   logging.OrNoOp(opts.Logger),
		newID:    opts.NewID,
		now:      opts.Now,
	}
}

// Registry returns the comparator registry the engine resolves names in.
func (e *Engine) Registry() *comparator.Registry { return e.registry }

// Settings returns the current settings snapshot.
func (e *Engine) Settings() core.Settings { return e.settings.Settings() }

// InventoryItem is one container slot to display.
type InventoryItem struct {
	Entry core.InventoryEntry
	Count int
}

// GroundStack is a pile of world references shown as one row.
type GroundStack struct {
	Handles []core.RefHandle
	Count   int
}

// Request describes the objects of one refresh.
type Request struct {
	Inventory []InventoryItem
	Ground    []GroundStack
	// Stealing is true while looting a container the player does not own.
	Stealing bool
}

// View is the result of a refresh: entries in display order and the records
// rendered from them, index for index.
type View struct {
	ID         string
	Comparator string
	Entries    []*item.Entry
	Records    []item.Record
}

// Refresh builds, sorts and renders the entries of req.
//
// Contract:
//   - settings are read exactly once
//   - inventory entries precede ground entries before sorting; the sort is
//     stable, so ties keep that order
//   - an unknown comparator name fails the refresh with a
//     *comparator.LookupError and nothing is rendered
func (e *Engine) Refresh(req Request) (*View, error) {
	start := e.now()
	id := e.newID()
	s := e.settings.Settings()

	entries := e.Entries(req)

	name, err := e.Sort(entries, s.SortOrder)
	if err != nil {
		e.logComparatorMissing(id, err)
		return nil, err
	}

	records := make([]item.Record, len(entries))
	for i, en := range entries {
		records[i] = en.Render(s)
	}

	e.logRefresh(id, logging.RefreshStats{
		Entries:    len(entries),
		Inventory:  len(req.Inventory),
		Ground:     len(req.Ground),
		Comparator: name,
		Duration:   e.now().Sub(start),
	})

	return &View{ID: id, Comparator: name, Entries: entries, Records: records}, nil
}

// Entries wraps every slot and stack of req, inventory first.
func (e *Engine) Entries(req Request) []*item.Entry {
	entries := make([]*item.Entry, 0, len(req.Inventory)+len(req.Ground))
	for _, it := range req.Inventory {
		entries = append(entries, item.NewInventoryEntry(e.services, it.Count, req.Stealing, it.Entry))
	}
	for _, st := range req.Ground {
		entries = append(entries, item.NewGroundEntry(e.services, st.Count, req.Stealing, st.Handles))
	}
	return entries
}

// Sort orders entries in place by the named comparators and returns the
// name of the applied ordering. An empty order applies the fixed entry
// order.
func (e *Engine) Sort(entries []*item.Entry, order []string) (string, error) {
	if len(order) == 0 {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Less(entries[j]) })
		return DefaultOrder, nil
	}

	chain, err := e.registry.ResolveChain(order)
	if err != nil {
		return "", err
	}
	sort.SliceStable(entries, comparator.Less(chain, entries))
	return chain.Name(), nil
}

func (e *Engine) logRefresh(id string, stats logging.RefreshStats) {
	if sl, ok := e.logger.(*logging.StructuredLogger); ok {
		sl.WithRefresh(id).LogRefresh(stats)
		return
	}
	e.logger.Info("Refresh completed",
		"refresh_id", id,
		"entries", stats.Entries,
		"comparator", stats.Comparator,
		"duration", stats.Duration,
	)
}

func (e *Engine) logComparatorMissing(id string, err error) {
	name := ""
	var le *comparator.LookupError
	if errors.As(err, &le) {
		name = le.Name
	}
	if sl, ok := e.logger.(*logging.StructuredLogger); ok {
		sl.WithRefresh(id).LogComparatorMissing(name, err)
		return
	}
	e.logger.Error("Comparator lookup failed", "refresh_id", id, "comparator", name, "error", err)
}
