package category

import (
	"testing"

	"github.com/hupe1980/lootsort/core"
	"github.com/stretchr/testify/assert"
)

func form(id core.FormID, keywords ...core.FormID) core.Form {
	return core.Form{ID: id, Keywords: keywords}
}

func TestClassify_FixedCodes(t *testing.T) {
	tests := []struct {
		name string
		in   core.Descriptor
		want Code
	}{
		{"nil descriptor", nil, None},
		{"scroll", core.Scroll{Form: form(0x100)}, DefaultScroll},
		{"ingredient", core.Ingredient{Form: form(0x101)}, DefaultIngredient},
		{"light", core.Light{Form: form(0x102)}, MiscTorch},
		{"key", core.Key{Form: form(0x103)}, DefaultKey},
		{"arrow", core.Ammo{Form: form(0x104)}, WeaponArrow},
		{"bolt", core.Ammo{Form: form(0x105), Bolt: true}, WeaponBolt},
		{"note form", core.Note{Form: form(0x106)}, None},
		{"other form", core.Other{Form: form(0x107), Type: core.FormTypeNone}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_Armor(t *testing.T) {
	tests := []struct {
		name string
		in   core.Armor
		want Code
	}{
		{"light body", core.Armor{Form: form(0x200), Type: core.ArmorTypeLight, Slots: core.SlotBody}, LightArmorBody},
		{"light tail counts as body", core.Armor{Form: form(0x200), Type: core.ArmorTypeLight, Slots: core.SlotTail}, LightArmorBody},
		{"light head", core.Armor{Form: form(0x200), Type: core.ArmorTypeLight, Slots: core.SlotHead}, LightArmorHead},
		{"light mask", core.Armor{Form: form(MaskRangeStart), Type: core.ArmorTypeLight, Slots: core.SlotHead}, LightArmorMask},
		{"mask range end is exclusive", core.Armor{Form: form(MaskRangeEnd), Type: core.ArmorTypeLight, Slots: core.SlotHair}, LightArmorHead},
		{"mask range without head stays body", core.Armor{Form: form(MaskRangeStart), Type: core.ArmorTypeLight, Slots: core.SlotBody}, LightArmorBody},
		{"heavy long hair", core.Armor{Form: form(0x201), Type: core.ArmorTypeHeavy, Slots: core.SlotLongHair}, ArmorHead},
		{"heavy mask", core.Armor{Form: form(MaskRangeStart + 1), Type: core.ArmorTypeHeavy, Slots: core.SlotHead}, ArmorMask},
		{"heavy hands", core.Armor{Form: form(0x202), Type: core.ArmorTypeHeavy, Slots: core.SlotHands}, ArmorHands},
		{"heavy forearms", core.Armor{Form: form(0x203), Type: core.ArmorTypeHeavy, Slots: core.SlotForearms}, ArmorForearms},
		{"heavy feet", core.Armor{Form: form(0x204), Type: core.ArmorTypeHeavy, Slots: core.SlotFeet}, ArmorFeet},
		{"heavy calves", core.Armor{Form: form(0x205), Type: core.ArmorTypeHeavy, Slots: core.SlotCalves}, ArmorCalves},
		{"heavy shield", core.Armor{Form: form(0x206), Type: core.ArmorTypeHeavy, Slots: core.SlotShield}, ArmorShield},
		{"body wins over hands", core.Armor{Form: form(0x207), Type: core.ArmorTypeHeavy, Slots: core.SlotHands | core.SlotBody}, ArmorBody},
		{"head wins over feet", core.Armor{Form: form(0x208), Type: core.ArmorTypeLight, Slots: core.SlotFeet | core.SlotHead}, LightArmorHead},
		{"light without known slot", core.Armor{Form: form(0x209), Type: core.ArmorTypeLight, Slots: core.SlotEars}, DefaultArmor},
		{"clothing body", core.Armor{Form: form(0x20A, KeywordVendorItemJewelry), Slots: core.SlotBody}, ClothingBody},
		{"clothing feet", core.Armor{Form: form(0x20B, KeywordVendorItemJewelry), Slots: core.SlotFeet}, ClothingFeet},
		{"clothing never becomes a mask", core.Armor{Form: form(MaskRangeStart, KeywordVendorItemJewelry), Slots: core.SlotHead}, ClothingHead},
		{"accessory amulet", core.Armor{Form: form(0x20C, KeywordVendorItemClothing), Slots: core.SlotAmulet}, ArmorAmulet},
		{"accessory ring", core.Armor{Form: form(0x20D, KeywordVendorItemClothing), Slots: core.SlotRing}, ArmorRing},
		{"accessory circlet", core.Armor{Form: form(0x20E, KeywordVendorItemClothing), Slots: core.SlotCirclet}, Circlet},
		{"accessory bypasses slot table", core.Armor{Form: form(0x20F, KeywordVendorItemClothing), Slots: core.SlotBody}, DefaultArmor},
		{"clothing table wins over accessory", core.Armor{Form: form(0x210, KeywordVendorItemClothing, KeywordVendorItemJewelry), Slots: core.SlotRing | core.SlotBody}, ClothingBody},
		{"light type wins over keywords", core.Armor{Form: form(0x211, KeywordVendorItemClothing), Type: core.ArmorTypeLight, Slots: core.SlotBody}, LightArmorBody},
		{"no family", core.Armor{Form: form(0x212), Slots: core.SlotBody}, DefaultArmor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_ArmorKeywordIdentifiers(t *testing.T) {
	assert.Equal(t, ClothingBody, Classify(core.Armor{Form: form(0x300, 0x08F95A), Slots: core.SlotBody}))
	assert.Equal(t, ArmorRing, Classify(core.Armor{Form: form(0x301, 0x08F95B), Slots: core.SlotRing}))
	assert.Equal(t, DefaultArmor, Classify(core.Armor{Form: form(0x302, 0x08F95B), Slots: core.SlotBody}))
}

func TestClassify_Book(t *testing.T) {
	assert.Equal(t, BookNote, Classify(core.Book{Form: form(0x300), Subtype: core.BookSubtypeRecipe}))
	assert.Equal(t, BookNote, Classify(core.Book{Form: form(0x301, KeywordVendorItemRecipe)}))
	assert.Equal(t, BookNote, Classify(core.Book{Form: form(0x302, KeywordVendorItemRecipe, KeywordVendorItemSpellTome)}))
	assert.Equal(t, BookTome, Classify(core.Book{Form: form(0x303, KeywordVendorItemSpellTome)}))
	assert.Equal(t, DefaultBook, Classify(core.Book{Form: form(0x304), Read: true}))
}

func TestClassify_Weapon(t *testing.T) {
	tests := map[core.WeaponKind]Code{
		core.WeaponOneHandSword:  WeaponSword,
		core.WeaponOneHandDagger: WeaponDagger,
		core.WeaponOneHandAxe:    WeaponWarAxe,
		core.WeaponOneHandMace:   WeaponMace,
		core.WeaponTwoHandSword:  WeaponGreatSword,
		core.WeaponTwoHandAxe:    WeaponBattleAxe,
		core.WeaponBow:           WeaponBow,
		core.WeaponStaff:         WeaponStaff,
		core.WeaponCrossbow:      WeaponCrossbow,
		core.WeaponHandToHand:    DefaultWeapon,
		core.WeaponKind(200):     DefaultWeapon,
	}

	for kind, want := range tests {
		assert.Equal(t, want, Classify(core.Weapon{Form: form(0x400), Kind: kind}), "kind %d", kind)
	}

	_, ok := WeaponCode(core.WeaponHandToHand)
	assert.False(t, ok)
	c, ok := WeaponCode(core.WeaponBow)
	assert.True(t, ok)
	assert.Equal(t, WeaponBow, c)
}

func TestClassify_Alchemy(t *testing.T) {
	effect := func(skill, primary core.ActorValue) *core.MagicEffect {
		return &core.MagicEffect{Skill: skill, PrimaryValue: primary}
	}

	tests := []struct {
		name string
		in   core.Alchemy
		want Code
	}{
		{"food", core.Alchemy{Food: true}, DefaultFood},
		{"wine", core.Alchemy{Food: true, ConsumptionSound: SoundPotionUse}, FoodWine},
		{"food wins over poison", core.Alchemy{Food: true, Poison: true}, DefaultFood},
		{"poison", core.Alchemy{Poison: true, CostliestEffect: effect(core.ActorValueHealth, core.ActorValueNone)}, PotionPoison},
		{"no effect", core.Alchemy{}, DefaultPotion},
		{"health by skill", core.Alchemy{CostliestEffect: effect(core.ActorValueHealth, core.ActorValueStamina)}, PotionHealth},
		{"primary value when skill unset", core.Alchemy{CostliestEffect: effect(core.ActorValueNone, core.ActorValueMagicka)}, PotionMagic},
		{"stamina", core.Alchemy{CostliestEffect: effect(core.ActorValueStamina, core.ActorValueNone)}, PotionStam},
		{"fire", core.Alchemy{CostliestEffect: effect(core.ActorValueNone, core.ActorValueResistFire)}, PotionFire},
		{"frost", core.Alchemy{CostliestEffect: effect(core.ActorValueNone, core.ActorValueResistFrost)}, PotionFrost},
		{"shock", core.Alchemy{CostliestEffect: effect(core.ActorValueNone, core.ActorValueResistShock)}, PotionShock},
		{"skill set but unmapped", core.Alchemy{CostliestEffect: effect(core.ActorValueAlteration, core.ActorValueHealth)}, DefaultPotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_SoulGem(t *testing.T) {
	gem := func(id core.FormID, capacity, contained core.SoulLevel) core.SoulGem {
		return core.SoulGem{Form: form(id), Capacity: capacity, Contained: contained}
	}

	assert.Equal(t, SoulGemEmpty, Classify(gem(0x500, core.SoulCommon, core.SoulNone)))
	assert.Equal(t, SoulGemPartial, Classify(gem(0x500, core.SoulCommon, core.SoulLesser)))
	assert.Equal(t, SoulGemFull, Classify(gem(0x500, core.SoulCommon, core.SoulCommon)))
	assert.Equal(t, SoulGemFull, Classify(gem(0x500, core.SoulCommon, core.SoulGreater)))
	assert.Equal(t, SoulGemGrandEmpty, Classify(gem(0x501, core.SoulGrand, core.SoulNone)))
	assert.Equal(t, SoulGemGrandPartial, Classify(gem(0x501, core.SoulGrand, core.SoulPetty)))
	assert.Equal(t, SoulGemGrandFull, Classify(gem(0x501, core.SoulGrand, core.SoulGrand)))
	assert.Equal(t, SoulGemAzura, Classify(gem(FormAzurasStar, core.SoulGrand, core.SoulGrand)))
	assert.Equal(t, SoulGemAzura, Classify(gem(FormBlackStar, core.SoulGrand, core.SoulNone)))
}

func TestClassify_Misc(t *testing.T) {
	misc := func(id core.FormID, keywords ...core.FormID) core.Misc {
		return core.Misc{Form: form(id, keywords...)}
	}

	tests := []struct {
		name string
		in   core.Misc
		want Code
	}{
		{"lockpick", misc(FormLockpick), MiscLockPick},
		{"gold", misc(FormGold), MiscGold},
		{"leather", misc(FormLeather), MiscLeather},
		{"strips", misc(FormLeatherStrips), MiscStrips},
		{"identifier wins over keyword", misc(FormLeather, KeywordVendorItemAnimalHide), MiscLeather},
		{"hide", misc(0x600, KeywordVendorItemAnimalHide), MiscHide},
		{"artifact", misc(0x601, KeywordVendorItemDaedricArtifact), MiscArtifact},
		{"gem", misc(0x602, KeywordVendorItemGem), MiscGem},
		{"remains", misc(0x603, KeywordVendorItemAnimalPart), MiscRemains},
		{"ingot", misc(0x604, KeywordVendorItemOreIngot), MiscIngot},
		{"clutter", misc(0x605, KeywordVendorItemClutter), MiscClutter},
		{"firewood", misc(0x606, KeywordVendorItemFirewood), MiscWood},
		{"hide wins over clutter", misc(0x607, KeywordVendorItemClutter, KeywordVendorItemAnimalHide), MiscHide},
		{"keyword wins over claw", misc(FormGoldenClaw, KeywordVendorItemClutter), MiscClutter},
		{"tool keyword is default", misc(0x608, KeywordVendorItemTool), DefaultMisc},
		{"plain", misc(0x609), DefaultMisc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}

	claws := DragonClaws()
	assert.Len(t, claws, 11)
	for _, id := range claws {
		assert.Equal(t, MiscDragonClaw, Classify(misc(id)), "claw %#x", id)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []core.Descriptor{
		nil,
		core.Armor{Form: form(MaskRangeStart), Type: core.ArmorTypeHeavy, Slots: core.SlotHead | core.SlotHands},
		core.Misc{Form: form(FormIronClaw)},
		core.Alchemy{CostliestEffect: &core.MagicEffect{PrimaryValue: core.ActorValueHealth}},
		core.SoulGem{Form: form(0x1), Capacity: core.SoulPetty, Contained: core.SoulPetty},
		core.Weapon{Form: form(0x2), Kind: core.WeaponStaff},
	}

	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(in))
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "lightarmor_mask", Label(core.Armor{Form: form(MaskRangeStart), Type: core.ArmorTypeLight, Slots: core.SlotHead}))
	assert.Equal(t, "none", Label(nil))
}
