package world

import "github.com/hupe1980/lootsort/core"

// Object is one item instance: an inventory slot or a placed reference.
// It satisfies both core.InventoryEntry and core.Reference.
type Object struct {
	Form      core.Descriptor
	Name      string
	Value     int
	Mass      float64
	Charge    *float64
	Enchanted bool
	Quest     bool
	// Owner is the legal owner; core.NoFormID means no ownership data.
	Owner core.FormID
	// Crime marks a placed reference whose activation is theft.
	Crime bool
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

// Slot is one inventory slot of a container.
type Slot struct {
	Object *Object
	Count  int
}

// Stack is a logical pile of placed references shown as one row.
type Stack struct {
	Handles []core.RefHandle
	Count   int
}
