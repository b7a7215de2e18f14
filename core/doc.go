// Package core provides the foundational domain types and collaborator
// interfaces used by lootsort. It defines the boundary between the item
// classification engine and the host game runtime:
//
//   - Forms (FormID, FormType) and the closed Descriptor variant set
//   - Live objects (ItemObject, InventoryEntry, Reference) and handles
//   - Collaborators the engine consumes but never implements: ObjectResolver,
//     OwnershipOracle, PickpocketEstimator, MuseumTracker, SettingsProvider
//
// The package intentionally keeps behavior out of scope. Classification lives
// in package category, attribute derivation and caching in package item, and
// the concrete in-memory host in package world.
package core
