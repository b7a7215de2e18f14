package core

// RefHandle is an opaque handle to a placed world reference. A handle may
// outlive the object it points to; resolve it through an ObjectResolver
// every time the object is needed.
type RefHandle uint32

// ItemObject is the read contract shared by inventory entries and world
// references. Implementations are owned by the host; lootsort only observes
// them for the lifetime of one display refresh.
type ItemObject interface {
	// Base returns the base form, or nil when it no longer exists.
	Base() Descriptor
	// DisplayName returns the display name; empty when the object has none.
	DisplayName() string
	// GoldValue returns the per-unit value.
	GoldValue() int
	// Weight returns the per-unit weight.
	Weight() float64
	// EnchantmentCharge returns the remaining charge when the object carries one.
	EnchantmentCharge() (float64, bool)
	IsEnchanted() bool
	IsQuestItem() bool
}

// InventoryEntry is one slot in a container's inventory.
type InventoryEntry interface {
	ItemObject
}

// Reference is a live object placed in the world.
type Reference interface {
	ItemObject
}
