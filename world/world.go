// Package world is an in-memory stand-in for the host game runtime. A World
// resolves reference handles, answers ownership and crime questions for the
// player and estimates pickpocket chances. It backs the CLI, the examples and
// tests; production hosts implement the core collaborator interfaces
// directly.
package world

import (
	"math"
	"sync"

	"github.com/hupe1980/lootsort/core"
)

// World holds placed references keyed by handle.
//
// Concurrency: protected by RWMutex. Destroying a reference invalidates its
// handle; handles are never reused.
type World struct {
	mu             sync.RWMutex
	refs           map[core.RefHandle]*Object
	next           core.RefHandle
	player         core.FormID
	pickpocketBase int
}

var (
	_ core.ObjectResolver      = (*World)(nil)
	_ core.OwnershipOracle     = (*World)(nil)
	_ core.PickpocketEstimator = (*World)(nil)
)

// Options configures a World.
type Options struct {
	// Player is the player's identifier; core.NoFormID means no player.
	Player core.FormID
	// PickpocketBase is the chance before weight and value penalties. Zero
	// disables estimates.
	PickpocketBase int
}

// New creates an empty world.
func New(optFns ...func(o *Options)) *World {
	opts := Options{Player: DefaultPlayer}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &World{
		refs:           make(map[core.RefHandle]*Object),
		player:         opts.Player,
		pickpocketBase: opts.PickpocketBase,
	}
}

// DefaultPlayer is the player's reference identifier in the base game.
const DefaultPlayer core.FormID = 0x14

// Place puts obj into the world and returns its handle.
func (w *World) Place(obj *Object) core.RefHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	w.refs[w.next] = obj
	return w.next
}

// Destroy removes the reference behind h. It reports whether h was live.
func (w *World) Destroy(h core.RefHandle) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.refs[h]; !ok {
		return false
	}
	delete(w.refs, h)
	return true
}

// Resolve returns the live reference behind h.
func (w *World) Resolve(h core.RefHandle) (core.Reference, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	obj, ok := w.refs[h]
	if !ok {
		return nil, false
	}
	return obj, true
}

// Len returns the number of live references.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.refs)
}

// Player returns the player identifier.
func (w *World) Player() (core.FormID, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.player, w.player != core.NoFormID
}

// SetPlayer replaces the player identifier; core.NoFormID removes the player.
func (w *World) SetPlayer(id core.FormID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.player = id
}

// IsOwnedBy reports whether actor owns entry. Entries without ownership data
// and entries not created by this package answer defaultOwned.
func (w *World) IsOwnedBy(entry core.InventoryEntry, actor core.FormID, defaultOwned bool) bool {
	obj, ok := entry.(*Object)
	if !ok || obj.Owner == core.NoFormID {
		return defaultOwned
	}
	return obj.Owner == actor
}

// IsCrimeToActivate reports whether taking ref is theft.
func (w *World) IsCrimeToActivate(ref core.Reference) bool {
	obj, ok := ref.(*Object)
	return ok && obj.Crime
}

// PickpocketChance estimates the chance of lifting count units of obj: the
// configured base minus one point per unit of total weight (rounded up) and
// one point per ten gold of total value, clamped to 0-100.
func (w *World) PickpocketChance(obj core.ItemObject, count int) (int, bool) {
	w.mu.RLock()
	base := w.pickpocketBase
	w.mu.RUnlock()
	if base <= 0 || obj == nil {
		return 0, false
	}

	weight := int(math.Ceil(obj.Weight() * float64(count)))
	value := obj.GoldValue() * count / 10
	chance := base - weight - value
	switch {
	case chance < 0:
		chance = 0
	case chance > 100:
		chance = 100
	}
	return chance, true
}
