package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{"markdown header", "## Ingredients", KindHeader},
		{"colon header", "Ingredients:", KindHeader},
		{"bulleted item", "- 2 cups flour", KindBulleted},
		{"star bullet", "* mix gently", KindBulleted},
		{"numbered item", "1. Mix the batter", KindNumbered},
		{"paren numbered item", "2) Heat the pan", KindNumbered},
		{"measurement line", "2 cups flour", KindMeasurement},
		{"fraction measurement", "1/2 tsp salt", KindMeasurement},
		{"key value", "Prep time: 10 minutes", KindKeyValue},
		{"plain prose", "Serve warm with syrup", KindPlain},
		{"empty", "   ", KindPlain},
		{"bare bullet", "- ", KindBulleted},
		{"bare dash", "-", KindBulleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestSplitQuantity(t *testing.T) {
	tests := []struct {
		line     string
		quantity string
		rest     string
	}{
		{"2 cups flour", "2", "cups flour"},
		{"1/2 tsp salt", "1/2", "tsp salt"},
		{"1 / 2 cup milk", "1/2", "cup milk"},
		{"2.5 cups water", "2.5", "cups water"},
		{"salt to taste", "", "salt to taste"},
	}

	for _, tt := range tests {
		quantity, rest := SplitQuantity(tt.line)
		assert.Equal(t, tt.quantity, quantity, tt.line)
		assert.Equal(t, tt.rest, rest, tt.line)
	}
}

func TestSplitUnit(t *testing.T) {
	unit, rest := SplitUnit("cups all-purpose flour")
	assert.Equal(t, "cups", unit)
	assert.Equal(t, "all-purpose flour", rest)

	unit, rest = SplitUnit("eggs, beaten")
	assert.Empty(t, unit)
	assert.Equal(t, "eggs, beaten", rest)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Bold line", Normalize("**Bold** line"))
	assert.Equal(t, "Mix the batter", Normalize("1. Mix the batter"))
	assert.Equal(t, "2 cups flour", Normalize("- 2 cups flour"))
	assert.Equal(t, "Ingredients", Normalize("## Ingredients"))
	assert.Empty(t, Normalize("- "))
	assert.Empty(t, Normalize("-"))
}

func TestIsMeasurementLine(t *testing.T) {
	assert.True(t, IsMeasurementLine("2 cups flour"))
	assert.True(t, IsMeasurementLine("- 1/2 tsp vanilla"))
	assert.False(t, IsMeasurementLine("2 eggs"))
	assert.False(t, IsMeasurementLine("Mix everything"))
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
