package comparator

import (
	"cmp"
	"math"

	"github.com/hupe1980/lootsort/internal/util"
	"github.com/hupe1980/lootsort/item"
)

// Builtin comparator names. Each has a mirrored variant named with a
// "Desc" suffix, e.g. "byValueDesc".
const (
	ByName             = "byName"
	ByCount            = "byCount"
	ByValue            = "byValue"
	ByWeight           = "byWeight"
	ByCategory         = "byCategory"
	ByRead             = "byRead"
	ByEnchanted        = "byEnchanted"
	ByPickpocketChance = "byPickpocketChance"
	ByPriority         = "byPriority"
	ByValuePerWeight   = "byValuePerWeight"
	ByStolen           = "byStolen"
)

// DescSuffix marks the mirrored variant of a builtin.
const DescSuffix = "Desc"

// dimensions lists the ascending builtins in registration order.
var dimensions = []struct {
	name string
	fn   func(a, b *item.Entry) int
}{
	{ByName, func(a, b *item.Entry) int { return util.CompareFold(a.DisplayName(), b.DisplayName()) }},
	{ByCount, func(a, b *item.Entry) int { return cmp.Compare(a.Count(), b.Count()) }},
	{ByValue, func(a, b *item.Entry) int { return cmp.Compare(a.Value(), b.Value()) }},
	{ByWeight, func(a, b *item.Entry) int { return cmp.Compare(a.Weight(), b.Weight()) }},
	{ByCategory, func(a, b *item.Entry) int { return cmp.Compare(a.Category(), b.Category()) }},
	{ByRead, func(a, b *item.Entry) int { return compareBool(a.IsRead(), b.IsRead()) }},
	{ByEnchanted, func(a, b *item.Entry) int { return compareBool(a.IsEnchanted(), b.IsEnchanted()) }},
	{ByPickpocketChance, func(a, b *item.Entry) int { return cmp.Compare(a.PickpocketChance(), b.PickpocketChance()) }},
	{ByPriority, func(a, b *item.Entry) int { return cmp.Compare(a.Priority(), b.Priority()) }},
	{ByValuePerWeight, func(a, b *item.Entry) int { return cmp.Compare(ValuePerWeight(a), ValuePerWeight(b)) }},
	{ByStolen, func(a, b *item.Entry) int { return compareBool(a.IsStolen(), b.IsStolen()) }},
}

// Builtins returns the ascending and mirrored builtin comparators.
func Builtins() []Comparator {
	out := make([]Comparator, 0, 2*len(dimensions))
	for _, d := range dimensions {
		asc := New(d.name, d.fn)
		out = append(out, asc, Descending(d.name+DescSuffix, asc))
	}
	return out
}

// ValuePerWeight returns the entry's value divided by its weight. A
// weightless entry with positive value ranks above every finite ratio, one
// with zero value ties at 0 and one with negative value ranks below all.
func ValuePerWeight(e *item.Entry) float64 {
	v, w := e.Value(), e.Weight()
	if w <= 0 {
		switch {
		case v > 0:
			return math.Inf(1)
		case v < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}
	return float64(v) / w
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
