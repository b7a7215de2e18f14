package core

// Descriptor is the closed set of base-form shapes the classifier understands.
// Each variant embeds Form; the set is sealed by an unexported method so a
// type switch over the variants below is exhaustive.
type Descriptor interface {
	FormID() FormID
	FormType() FormType
	HasKeyword(kw FormID) bool

	descriptor()
}

// BipedSlot is a bit set of body slots an armor form occupies.
type BipedSlot uint32

const (
	SlotHead BipedSlot = 1 << iota
	SlotHair
	SlotBody
	SlotHands
	SlotForearms
	SlotAmulet
	SlotRing
	SlotFeet
	SlotCalves
	SlotShield
	SlotTail
	SlotLongHair
	SlotCirclet
	SlotEars
)

// Has reports whether any of the slots in mask are occupied.
func (s BipedSlot) Has(mask BipedSlot) bool { return s&mask != 0 }

// ArmorType is the armor weight class.
type ArmorType uint8

const (
	ArmorTypeClothing ArmorType = iota
	ArmorTypeLight
	ArmorTypeHeavy
)

// WeaponKind is the animation type of a weapon form.
type WeaponKind uint8

const (
	WeaponHandToHand WeaponKind = iota
	WeaponOneHandSword
	WeaponOneHandDagger
	WeaponOneHandAxe
	WeaponOneHandMace
	WeaponTwoHandSword
	WeaponTwoHandAxe
	WeaponBow
	WeaponStaff
	WeaponCrossbow
)

// SoulLevel is a soul size, used both for gem capacity and contained soul.
type SoulLevel uint8

const (
	SoulNone SoulLevel = iota
	SoulPetty
	SoulLesser
	SoulCommon
	SoulGreater
	SoulGrand
)

// ActorValue names the actor value a magic effect is keyed on.
type ActorValue uint16

const (
	ActorValueNone ActorValue = iota
	ActorValueHealth
	ActorValueMagicka
	ActorValueStamina
	ActorValueResistFire
	ActorValueResistFrost
	ActorValueResistShock
	ActorValueAlteration
	ActorValueConjuration
	ActorValueDestruction
	ActorValueIllusion
	ActorValueRestoration
	ActorValueSpeedMult
	ActorValueCarryWeight
)

// MagicEffect is the part of a magic effect the classifier reads.
type MagicEffect struct {
	// Skill is the associated magic skill; ActorValueNone when unset.
	Skill ActorValue
	// PrimaryValue is the primary actor value the effect modifies.
	PrimaryValue ActorValue
}

// BookSubtypeRecipe marks notes and recipes in the book subtype byte.
const BookSubtypeRecipe uint8 = 0xFF

// Scroll is a scroll form.
type Scroll struct{ Form }

// Armor is an armor or clothing form.
type Armor struct {
	Form
	Type  ArmorType
	Slots BipedSlot
}

// Book is a book form. Read reflects the host's read flag on the base form.
type Book struct {
	Form
	Subtype uint8
	Read    bool
}

// Ingredient is an alchemy ingredient form.
type Ingredient struct{ Form }

// Light is a carriable light (torches).
type Light struct{ Form }

// Misc is a miscellaneous item form.
type Misc struct{ Form }

// Weapon is a weapon form.
type Weapon struct {
	Form
	Kind WeaponKind
}

// Ammo is an arrow or bolt form.
type Ammo struct {
	Form
	Bolt bool
}

// Key is a key form.
type Key struct{ Form }

// Alchemy is a potion, poison or food form.
type Alchemy struct {
	Form
	Food             bool
	Poison           bool
	ConsumptionSound FormID
	// CostliestEffect is the result of the host's costliest-effect query,
	// nil when the item has no effect with a base effect.
	CostliestEffect *MagicEffect
}

// SoulGem is a soul gem form.
type SoulGem struct {
	Form
	Capacity  SoulLevel
	Contained SoulLevel
}

// Note is a note form.
type Note struct{ Form }

// Other is any base form whose type is not listed above. Type records the
// host's tag for diagnostics only.
type Other struct {
	Form
	Type FormType
}

func (Scroll) FormType() FormType     { return FormTypeScroll }
func (Armor) FormType() FormType      { return FormTypeArmor }
func (Book) FormType() FormType       { return FormTypeBook }
func (Ingredient) FormType() FormType { return FormTypeIngredient }
func (Light) FormType() FormType      { return FormTypeLight }
func (Misc) FormType() FormType       { return FormTypeMisc }
func (Weapon) FormType() FormType     { return FormTypeWeapon }
func (Ammo) FormType() FormType       { return FormTypeAmmo }
func (Key) FormType() FormType        { return FormTypeKey }
func (Alchemy) FormType() FormType    { return FormTypeAlchemy }
func (SoulGem) FormType() FormType    { return FormTypeSoulGem }
func (Note) FormType() FormType       { return FormTypeNote }
func (o Other) FormType() FormType    { return o.Type }

func (Scroll) descriptor()     {}
func (Armor) descriptor()      {}
func (Book) descriptor()       {}
func (Ingredient) descriptor() {}
func (Light) descriptor()      {}
func (Misc) descriptor()       {}
func (Weapon) descriptor()     {}
func (Ammo) descriptor()       {}
func (Key) descriptor()        {}
func (Alchemy) descriptor()    {}
func (SoulGem) descriptor()    {}
func (Note) descriptor()       {}
func (Other) descriptor()      {}
