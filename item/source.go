package item

import "github.com/hupe1980/lootsort/core"

// Source is the backing of an Entry: either InventorySource or GroundSource.
type Source interface {
	source()
}

// InventorySource backs an entry with one inventory slot. Attributes are
// read directly from the slot.
type InventorySource struct {
	Entry core.InventoryEntry
}

// GroundSource backs an entry with a stack of world references. Handles are
// resolved fresh on every derivation; handles that no longer resolve are
// skipped.
type GroundSource struct {
	Handles []core.RefHandle
}

func (InventorySource) source() {}
func (GroundSource) source()    {}

var (
	_ Source = InventorySource{}
	_ Source = GroundSource{}
)

// each resolves the handles in order and calls fn with every live
// reference until fn returns true. It reports whether fn stopped the scan.
func (g GroundSource) each(r core.ObjectResolver, fn func(core.Reference) bool) bool {
	if r == nil {
		return false
	}
	for _, h := range g.Handles {
		ref, ok := r.Resolve(h)
		if !ok || ref == nil {
			continue
		}
		if fn(ref) {
			return true
		}
	}
	return false
}
