package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareFold(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"iron sword", "Iron Sword", 0},
		{"APPLE", "banana", -1},
		{"banana", "Apple", 1},
		{"Iron", "iron dagger", -1},
		{"iron dagger", "IRON", 1},
		// letters fold to lower case, so '_' (0x5F) sorts before them.
		{"a_b", "aab", -1},
		{"Élan", "élan", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareFold(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareFold(tt.b, tt.a))
		})
	}
}
