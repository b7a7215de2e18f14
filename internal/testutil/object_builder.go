package testutil

import "github.com/hupe1980/lootsort/core"

// Object is a plain in-memory core.ItemObject. It satisfies both
// core.InventoryEntry and core.Reference.
type Object struct {
	Form      core.Descriptor
	Name      string
	Value     int
	Mass      float64
	Charge    *float64
	Enchanted bool
	Quest     bool
}

var (
	_ core.InventoryEntry = (*Object)(nil)
	_ core.Reference      = (*Object)(nil)
)

func (o *Object) Base() core.Descriptor { return o.Form }
func (o *Object) DisplayName() string   { return o.Name }
func (o *Object) GoldValue() int        { return o.Value }
func (o *Object) Weight() float64       { return o.Mass }
func (o *Object) IsEnchanted() bool     { return o.Enchanted }
func (o *Object) IsQuestItem() bool     { return o.Quest }

func (o *Object) EnchantmentCharge() (float64, bool) {
	if o.Charge == nil {
		return 0, false
	}
	return *o.Charge, true
}

// ObjectBuilder provides a fluent helper for constructing test objects.
// Example:
//
//	obj := NewObjectBuilder().Misc(0x1234).Name("Goblet").Value(5).Weight(1).Build()
//
// The default object is a misc item with identifier 0x800 and no name.
type ObjectBuilder struct {
	obj Object
}

// NewObjectBuilder creates a builder for a nameless misc object.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{obj: Object{Form: core.Misc{Form: core.Form{ID: 0x800}}}}
}

// Base sets the base form (chainable).
func (b *ObjectBuilder) Base(d core.Descriptor) *ObjectBuilder { b.obj.Form = d; return b }

// Misc sets a misc base form with the given identifier and keywords (chainable).
func (b *ObjectBuilder) Misc(id core.FormID, keywords ...core.FormID) *ObjectBuilder {
	b.obj.Form = core.Misc{Form: core.Form{ID: id, Keywords: keywords}}
	return b
}

// Book sets a book base form (chainable).
func (b *ObjectBuilder) Book(id core.FormID, read bool) *ObjectBuilder {
	b.obj.Form = core.Book{Form: core.Form{ID: id}, Read: read}
	return b
}

// Name sets the display name (chainable).
func (b *ObjectBuilder) Name(n string) *ObjectBuilder { b.obj.Name = n; return b }

// Value sets the per-unit value (chainable).
func (b *ObjectBuilder) Value(v int) *ObjectBuilder { b.obj.Value = v; return b }

// Weight sets the per-unit weight (chainable).
func (b *ObjectBuilder) Weight(w float64) *ObjectBuilder { b.obj.Mass = w; return b }

// Charge sets the remaining enchantment charge (chainable).
func (b *ObjectBuilder) Charge(c float64) *ObjectBuilder { b.obj.Charge = &c; return b }

// Enchanted marks the object enchanted (chainable).
func (b *ObjectBuilder) Enchanted() *ObjectBuilder { b.obj.Enchanted = true; return b }

// Quest marks the object as a quest item (chainable).
func (b *ObjectBuilder) Quest() *ObjectBuilder { b.obj.Quest = true; return b }

// Build returns a fresh copy of the configured object.
func (b *ObjectBuilder) Build() *Object {
	o := b.obj
	return &o
}
