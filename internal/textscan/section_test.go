package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = Table{Sections: []SectionSpec{
	{Name: "ingredients", Synonyms: []string{"ingredients", "what you need"}},
	{Name: "instructions", Synonyms: []string{"instructions", "directions"}},
}}

func TestSectionByHeader(t *testing.T) {
	lines := []string{
		"Pancakes",
		"Ingredients:",
		"- 2 cups flour",
		"",
		"- 2 eggs",
		"Instructions:",
		"1. Mix",
	}

	got := testTable.Section(lines, "ingredients")
	assert.Equal(t, []string{"- 2 cups flour", "- 2 eggs"}, got)

	got = testTable.Section(lines, "instructions")
	assert.Equal(t, []string{"1. Mix"}, got)
}

func TestSectionSynonymsAndCase(t *testing.T) {
	lines := []string{"## What You Need", "- flour", "DIRECTIONS", "mix it"}

	got := testTable.Section(lines, "ingredients")
	assert.Equal(t, []string{"- flour"}, got)
}

func TestSectionMissing(t *testing.T) {
	got := testTable.Section([]string{"just some text"}, "ingredients")
	assert.Empty(t, got)

	got = testTable.Section([]string{"Ingredients:"}, "unknown")
	assert.Empty(t, got)
}

func TestSectionWithFallback(t *testing.T) {
	fb := Fallback{
		Match: func(line string) bool {
			return IsMeasurementLine(line) || IsListItem(line)
		},
	}

	// No header anywhere: the fallback collects measurement-shaped lines.
	lines := []string{"Grab these:", "2 cups oats", "1/2 cup honey", "Then mix well and chill."}
	got := testTable.SectionWithFallback(lines, "ingredients", fb)
	assert.Equal(t, []string{"2 cups oats", "1/2 cup honey"}, got)

	// A header always outranks the fallback.
	lines = []string{"2 cups sugar", "Ingredients:", "- flour"}
	got = testTable.SectionWithFallback(lines, "ingredients", fb)
	assert.Equal(t, []string{"- flour"}, got)
}

func TestSectionWithFallbackStop(t *testing.T) {
	instructions, ok := testTable.Spec("instructions")
	assert.True(t, ok)

	fb := Fallback{
		Match: IsListItem,
		Stop:  instructions.Matches,
	}

	lines := []string{"- flour", "Directions:", "- this is a step, not an ingredient"}
	got := testTable.SectionWithFallback(lines, "ingredients", fb)
	assert.Equal(t, []string{"- flour"}, got)
}

func TestExtractTitle(t *testing.T) {
	cfg := TitleConfig{
		Prefixes: []string{"title", "recipe"},
		Excluded: testTable.SectionNames(),
	}

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"explicit prefix", []string{"Title: Fluffy Pancakes"}, "Fluffy Pancakes"},
		{"prefix beats header", []string{"# Notes", "Recipe: Chili"}, "Chili"},
		{"markdown header", []string{"## Best Pancakes", "- flour"}, "Best Pancakes"},
		{"header skips section names", []string{"## Ingredients", "Fluffy Pancakes"}, "Fluffy Pancakes"},
		{"plain line", []string{"Fluffy Pancakes", "Ingredients:"}, "Fluffy Pancakes"},
		{"measurement is not a title", []string{"2 cups flour", "Banana Bread"}, "Banana Bread"},
		{"nothing usable", []string{"Ingredients:", "- flour"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.lines, cfg))
		})
	}
}
