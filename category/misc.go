package category

import "github.com/hupe1980/lootsort/core"

type miscRule struct {
	match func(core.Misc) bool
	code  Code
}

func isForm(id core.FormID) func(core.Misc) bool {
	return func(m core.Misc) bool { return m.ID == id }
}

func hasKeyword(kw core.FormID) func(core.Misc) bool {
	return func(m core.Misc) bool { return m.HasKeyword(kw) }
}

func isDragonClaw(m core.Misc) bool {
	_, ok := dragonClaws[m.ID]
	return ok
}

// miscCascade is evaluated in order; the first matching rule wins. Exact
// identifiers come before keywords, and keywords before the claw list.
var miscCascade = []miscRule{
	{isForm(FormLockpick), MiscLockPick},
	{isForm(FormGold), MiscGold},
	{isForm(FormLeather), MiscLeather},
	{isForm(FormLeatherStrips), MiscStrips},
	{hasKeyword(KeywordVendorItemAnimalHide), MiscHide},
	{hasKeyword(KeywordVendorItemDaedricArtifact), MiscArtifact},
	{hasKeyword(KeywordVendorItemGem), MiscGem},
	{hasKeyword(KeywordVendorItemAnimalPart), MiscRemains},
	{hasKeyword(KeywordVendorItemOreIngot), MiscIngot},
	{hasKeyword(KeywordVendorItemClutter), MiscClutter},
	{hasKeyword(KeywordVendorItemFirewood), MiscWood},
	{isDragonClaw, MiscDragonClaw},
}

func classifyMisc(m core.Misc) Code {
	for _, r := range miscCascade {
		if r.match(m) {
			return r.code
		}
	}
	return DefaultMisc
}
