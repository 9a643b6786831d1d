package grocery_test

import (
	"testing"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"integer", "2", 2},
		{"decimal", "1.5", 1.5},
		{"simple fraction", "1/2", 0.5},
		{"unreduced fraction", "2/4", 0.5},
		{"mixed number", "1 1/2", 1.5},
		{"composite", "2 1/4 1/4", 2.5},
		{"zero denominator skipped", "1 1/0", 1},
		{"bad numerator skipped", "2 x/3", 2},
		{"garbage", "abc", 0},
		{"range keeps first number", "1-2", 1},
		{"glyph", "½", 0.5},
		{"glyph after digit", "1½", 1.5},
		{"surrounding space", "  3  ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, grocery.ParseQuantity(tt.in), 1e-9)
		})
	}
}

func TestParseQuantityNeverReturnsNaN(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "1e400", "0/0", "/", "//"} {
		got := grocery.ParseQuantity(in)
		assert.False(t, got != got, "NaN for %q", in)
	}
}
