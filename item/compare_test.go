package item

import (
	"sort"
	"testing"

	"github.com/hupe1980/lootsort/category"
	"github.com/hupe1980/lootsort/core"
	"github.com/hupe1980/lootsort/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func inv(b *testutil.ObjectBuilder) *Entry {
	return NewInventoryEntry(Services{}, 1, false, b.Build())
}

func TestCompare_FixedOrder(t *testing.T) {
	quest := inv(testutil.NewObjectBuilder().Misc(0x900).Name("Amulet of Kings").Quest())
	key := inv(testutil.NewObjectBuilder().Base(core.Key{Form: core.Form{ID: 0x901}}).Name("Cell Key"))
	note := inv(testutil.NewObjectBuilder().Base(core.Note{Form: core.Form{ID: 0x902}}).Name("Letter"))
	book := inv(testutil.NewObjectBuilder().Book(0x903, false).Name("Tome"))
	gold := inv(testutil.NewObjectBuilder().Misc(category.FormGold).Name("Gold").Value(1))
	ammo := inv(testutil.NewObjectBuilder().Base(core.Ammo{Form: core.Form{ID: 0x904}}).Name("Iron Arrow"))
	pick := inv(testutil.NewObjectBuilder().Misc(category.FormLockpick).Name("Lockpick"))
	rich := inv(testutil.NewObjectBuilder().Misc(0x905).Name("Zircon").Value(500))
	poorA := inv(testutil.NewObjectBuilder().Misc(0x906).Name("apple").Value(1))
	poorB := inv(testutil.NewObjectBuilder().Misc(0x907).Name("Banana").Value(1))
	twinLow := inv(testutil.NewObjectBuilder().Misc(0x908).Name("Rock").Value(0))
	twinHigh := inv(testutil.NewObjectBuilder().Misc(0x909).Name("rock").Value(0))

	want := []*Entry{quest, key, note, book, gold, ammo, pick, rich, poorA, poorB, twinLow, twinHigh}

	got := []*Entry{twinHigh, poorB, pick, rich, note, twinLow, gold, quest, book, poorA, ammo, key}
	sort.SliceStable(got, func(i, j int) bool { return got[i].Less(got[j]) })

	assert.Equal(t, want, got)
}

func TestCompare_StrictTotalOrder(t *testing.T) {
	var entries []*Entry
	names := []string{"b", "A", "a", "", "c"}
	for i := 0; i < 20; i++ {
		b := testutil.NewObjectBuilder().
			Misc(core.FormID(0x1000 + i)).
			Name(names[i%len(names)]).
			Value(i % 3)
		if i%7 == 0 {
			b = b.Quest()
		}
		entries = append(entries, inv(b))
	}

	for _, a := range entries {
		assert.Equal(t, 0, a.Compare(a), "irreflexive")
		for _, b := range entries {
			if a == b {
				continue
			}
			ab, ba := a.Compare(b), b.Compare(a)
			assert.NotZero(t, ab)
			assert.Equal(t, -ab, ba, "antisymmetric")

			for _, c := range entries {
				if a.Less(b) && b.Less(c) {
					assert.True(t, a.Less(c), "transitive")
				}
			}
		}
	}
}
