package category

import "github.com/hupe1980/lootsort/core"

// Keywords the classifier tests for. Values are base-game form identifiers.
const (
	// KeywordVendorItemJewelry routes untyped armor to the clothing codes.
	KeywordVendorItemJewelry core.FormID = 0x08F95A
	// KeywordVendorItemClothing routes untyped armor to the amulet, ring and
	// circlet codes.
	KeywordVendorItemClothing core.FormID = 0x08F95B
	// KeywordVendorItemRecipe tags cooking and alchemy recipes.
	KeywordVendorItemRecipe core.FormID = 0x0F5CB0
	// KeywordVendorItemSpellTome tags spell tomes.
	KeywordVendorItemSpellTome core.FormID = 0x0937A5

	// KeywordVendorItemAnimalHide tags pelts and hides.
	KeywordVendorItemAnimalHide core.FormID = 0x0914EA
	// KeywordVendorItemDaedricArtifact tags daedric artifacts kept as misc items.
	KeywordVendorItemDaedricArtifact core.FormID = 0x0917E8
	// KeywordVendorItemGem tags cut and uncut gems.
	KeywordVendorItemGem core.FormID = 0x0914ED
	// KeywordVendorItemTool tags tools. Listed for completeness; it maps to
	// the default misc code.
	KeywordVendorItemTool core.FormID = 0x0914EE
	// KeywordVendorItemAnimalPart tags claws, teeth and other remains.
	KeywordVendorItemAnimalPart core.FormID = 0x0914EB
	// KeywordVendorItemOreIngot tags ores and ingots.
	KeywordVendorItemOreIngot core.FormID = 0x0914EC
	// KeywordVendorItemClutter tags generic clutter.
	KeywordVendorItemClutter core.FormID = 0x0914E9
	// KeywordVendorItemFirewood tags firewood.
	KeywordVendorItemFirewood core.FormID = 0x0BECD7
)

// Misc items recognized by exact identifier.
const (
	// FormLockpick is the lockpick.
	FormLockpick core.FormID = 0x00000A
	// FormGold is the gold coin (Gold001).
	FormGold core.FormID = 0x00000F
	// FormLeather is a sheet of leather (Leather01).
	FormLeather core.FormID = 0x0DB5D2
	// FormLeatherStrips is a bundle of leather strips.
	FormLeatherStrips core.FormID = 0x0800E4
)

// Dragon claws, the keys to the Nordic puzzle doors.
const (
	FormRubyDragonClaw     core.FormID = 0x04B56C
	FormIvoryDragonClaw    core.FormID = 0x0AB7BB
	FormGlassClaw          core.FormID = 0x07C260
	FormEbonyClaw          core.FormID = 0x05AF48
	FormEmeraldDragonClaw  core.FormID = 0x0ED417
	FormDiamondClaw        core.FormID = 0x0AB375
	FormIronClaw           core.FormID = 0x08CDFA
	FormCoralDragonClaw    core.FormID = 0x0B634C
	FormGoldenClawBleak    core.FormID = 0x0999E7 // from the Bleak Falls Barrow quest line
	FormSapphireDragonClaw core.FormID = 0x0663D7
	FormGoldenClaw         core.FormID = 0x039647 // from the Riverwood trader quest
)

// dragonClaws is the closed list matched by the misc cascade.
var dragonClaws = map[core.FormID]struct{}{
	FormRubyDragonClaw:     {},
	FormIvoryDragonClaw:    {},
	FormGlassClaw:          {},
	FormEbonyClaw:          {},
	FormEmeraldDragonClaw:  {},
	FormDiamondClaw:        {},
	FormIronClaw:           {},
	FormCoralDragonClaw:    {},
	FormGoldenClawBleak:    {},
	FormSapphireDragonClaw: {},
	FormGoldenClaw:         {},
}

// DragonClaws returns the identifiers of all recognized dragon claws.
func DragonClaws() []core.FormID {
	ids := make([]core.FormID, 0, len(dragonClaws))
	for id := range dragonClaws {
		ids = append(ids, id)
	}
	return ids
}

// Soul gems recognized by exact identifier.
const (
	// FormAzurasStar is Azura's Star (DA01SoulGemAzurasStar).
	FormAzurasStar core.FormID = 0x063B27
	// FormBlackStar is the Black Star (DA01SoulGemBlackStar).
	FormBlackStar core.FormID = 0x063B29
)

// SoundPotionUse is the consumption sound (ITMPotionUse) that marks drinks
// such as wine among food items.
const SoundPotionUse core.FormID = 0x0B6435

// Mask identifier range: head-slot armors in [MaskRangeStart, MaskRangeEnd)
// are the dragon priest masks.
const (
	MaskRangeStart core.FormID = 0x061C8B
	MaskRangeEnd   core.FormID = 0x061CD7
)

// IsMask reports whether id falls inside the dragon priest mask range.
func IsMask(id core.FormID) bool {
	return id >= MaskRangeStart && id < MaskRangeEnd
}
