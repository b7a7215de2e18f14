// Package item builds the sortable, renderable entries shown in a loot list.
//
// An Entry wraps one logical item backed by either a single inventory slot
// or a stack of world references lying on the ground. Every derived
// attribute (name, value, weight, flags, category) is computed on first
// access and cached for the lifetime of the Entry; entries are snapshots
// rebuilt on every display refresh, never updated in place.
//
// Entries carry no synchronization and must not be shared across goroutines.
package item
