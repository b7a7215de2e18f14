// Package category classifies base forms into fine-grained category codes and
// holds the static per-code tables (icon label, priority family) the display
// layer and the comparators read.
//
// Classification is a pure, total function: Classify never fails and always
// returns the same code for the same descriptor.
package category

// Code is a fine-grained item category. Numeric values are stable and index
// the icon-label table.
type Code uint32

// Invalid is never produced by Classify; it marks an uninitialized code.
const Invalid Code = ^Code(0)

const (
	None Code = iota

	DefaultWeapon
	WeaponSword
	WeaponGreatSword
	WeaponDaedra
	WeaponDagger
	WeaponWarAxe
	WeaponBattleAxe
	WeaponMace
	WeaponHammer
	WeaponStaff
	WeaponBow
	WeaponArrow
	WeaponPickAxe
	WeaponWoodAxe
	WeaponCrossbow
	WeaponBolt

	DefaultArmor

	LightArmorBody
	LightArmorHead
	LightArmorHands
	LightArmorForearms
	LightArmorFeet
	LightArmorCalves
	LightArmorShield
	LightArmorMask

	ArmorBody
	ArmorHead
	ArmorHands
	ArmorForearms
	ArmorFeet
	ArmorCalves
	ArmorShield
	ArmorMask
	ArmorBracer
	ArmorDaedra

	ClothingBody
	ClothingRobe
	ClothingHead
	ClothingPants
	ClothingHands
	ClothingForearms
	ClothingFeet
	ClothingCalves
	ClothingShoes
	ClothingShield
	ClothingMask

	ArmorAmulet
	ArmorRing
	Circlet

	DefaultScroll
	DefaultBook
	DefaultBookRead
	BookTome
	BookTomeRead
	BookJournal
	BookNote
	BookMap

	DefaultFood
	FoodWine
	FoodBeer

	DefaultIngredient

	DefaultKey
	KeyHouse

	DefaultPotion
	PotionHealth
	PotionStam
	PotionMagic
	PotionPoison
	PotionFrost
	PotionFire
	PotionShock

	DefaultMisc
	MiscArtifact
	MiscClutter
	MiscLockPick
	MiscSoulGem

	SoulGemEmpty
	SoulGemPartial
	SoulGemFull
	SoulGemGrandEmpty
	SoulGemGrandPartial
	SoulGemGrandFull
	SoulGemAzura

	MiscGem
	MiscOre
	MiscIngot
	MiscHide
	MiscStrips
	MiscLeather
	MiscWood
	MiscRemains
	MiscTrollSkull
	MiscTorch
	MiscGoldSack
	MiscGold
	MiscDragonClaw

	codeCount
)

// Count is the number of defined codes, None included.
const Count = int(codeCount)

// Valid reports whether c indexes the category tables.
func (c Code) Valid() bool { return c < codeCount }

// Label returns the icon label for the code; see Lookup.
func (c Code) Label() string { return Lookup(c).Label }

// String returns the icon label, which doubles as the debug name.
func (c Code) String() string {
	if c == Invalid {
		return "invalid"
	}
	return c.Label()
}
