package category

import "github.com/hupe1980/lootsort/core"

type slotOffset int

const (
	offsetBody slotOffset = iota
	offsetHead
	offsetHands
	offsetForearms
	offsetFeet
	offsetCalves
	offsetShield
	offsetMask

	offsetCount
)

// slotPrecedence lists body-slot groups in match order. Only the first
// group the armor occupies counts.
var slotPrecedence = []struct {
	slots  core.BipedSlot
	offset slotOffset
}{
	{core.SlotBody | core.SlotTail, offsetBody},
	{core.SlotHead | core.SlotHair | core.SlotLongHair, offsetHead},
	{core.SlotHands, offsetHands},
	{core.SlotForearms, offsetForearms},
	{core.SlotFeet, offsetFeet},
	{core.SlotCalves, offsetCalves},
	{core.SlotShield, offsetShield},
}

type armorFamily int

const (
	familyNone armorFamily = iota
	familyLight
	familyHeavy
	familyClothing
	familyAccessory
)

// familyCodes maps the slot-table families to codes by offset.
var familyCodes = map[armorFamily][offsetCount]Code{
	familyLight: {
		LightArmorBody, LightArmorHead, LightArmorHands, LightArmorForearms,
		LightArmorFeet, LightArmorCalves, LightArmorShield, LightArmorMask,
	},
	familyHeavy: {
		ArmorBody, ArmorHead, ArmorHands, ArmorForearms,
		ArmorFeet, ArmorCalves, ArmorShield, ArmorMask,
	},
	familyClothing: {
		ClothingBody, ClothingHead, ClothingHands, ClothingForearms,
		ClothingFeet, ClothingCalves, ClothingShield, ClothingMask,
	},
}

// armorFamilyOf picks the code family. Untyped armor tagged with the jewelry
// vendor keyword goes through the clothing slot table; armor tagged with the
// clothing vendor keyword is classified by its accessory slot only.
func armorFamilyOf(a core.Armor) armorFamily {
	switch {
	case a.Type == core.ArmorTypeLight:
		return familyLight
	case a.Type == core.ArmorTypeHeavy:
		return familyHeavy
	case a.HasKeyword(KeywordVendorItemJewelry):
		return familyClothing
	case a.HasKeyword(KeywordVendorItemClothing):
		return familyAccessory
	default:
		return familyNone
	}
}

func classifyArmor(a core.Armor) Code {
	family := armorFamilyOf(a)
	switch family {
	case familyNone:
		return DefaultArmor
	case familyAccessory:
		return classifyAccessory(a.Slots)
	}

	offset, ok := armorSlotOffset(a.Slots)
	if !ok {
		return DefaultArmor
	}
	if offset == offsetHead && family != familyClothing && IsMask(a.ID) {
		offset = offsetMask
	}
	return familyCodes[family][offset]
}

func armorSlotOffset(slots core.BipedSlot) (slotOffset, bool) {
	for _, p := range slotPrecedence {
		if slots.Has(p.slots) {
			return p.offset, true
		}
	}
	return 0, false
}

func classifyAccessory(slots core.BipedSlot) Code {
	switch {
	case slots.Has(core.SlotAmulet):
		return ArmorAmulet
	case slots.Has(core.SlotRing):
		return ArmorRing
	case slots.Has(core.SlotCirclet):
		return Circlet
	default:
		return DefaultArmor
	}
}
