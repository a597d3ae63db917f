package recipe

import (
	"regexp"
	"strings"
	"time"

	"github.com/wellfed/extraction/internal/textscan"
)

// Section names recognized in recipe documents.
const (
	SectionIngredients  = "ingredients"
	SectionInstructions = "instructions"
	SectionNotes        = "notes"
	SectionNutrition    = "nutrition"
)

// Sections is the recipe section vocabulary. Any section's start synonym
// terminates any other section during the walk.
var Sections = textscan.Table{Sections: []textscan.SectionSpec{
	{Name: SectionIngredients, Synonyms: []string{
		"ingredients", "ingredient list", "what you need", "what you'll need", "what you will need", "shopping list",
	}},
	{Name: SectionInstructions, Synonyms: []string{
		"instructions", "directions", "method", "steps", "preparation", "how to make it", "how to make",
	}},
	{Name: SectionNotes, Synonyms: []string{
		"notes", "tips", "chef's notes", "serving suggestions",
	}},
	{Name: SectionNutrition, Synonyms: []string{
		"nutrition", "nutrition facts", "nutritional information", "nutrition information",
	}},
}}

var titleConfig = textscan.TitleConfig{
	Prefixes: []string{"title", "recipe", "recipe name", "dish"},
	Excluded: Sections.SectionNames(),
}

var (
	parenNotesRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)

	// Unmarked instruction lines shorter than this are treated as stray
	// fragments, not steps.
	minInstructionLen = 20
)

// Parse extracts a structured recipe from free-form text. It never fails:
// missing pieces surface in MissingFields and later in the validation
// report, not as errors.
func Parse(text string) *ExtractedRecipe {
	lines := textscan.SplitLines(text)

	rec := &ExtractedRecipe{
		OriginalText: text,
		ExtractedAt:  time.Now().UTC(),
		Title:        textscan.ExtractTitle(lines, titleConfig),
	}

	for _, line := range Sections.SectionWithFallback(lines, SectionIngredients, ingredientFallback()) {
		if ing, ok := ParseIngredientLine(line); ok {
			rec.Ingredients = append(rec.Ingredients, ing)
		}
	}

	rec.Instructions = parseInstructions(Sections.Section(lines, SectionInstructions))
	rec.Metadata = extractMetadata(text)
	rec.Nutrition = extractNutrition(text)
	rec.Tags = extractTags(text)

	rec.finalize()
	return rec
}

// ingredientFallback recovers the ingredient section by content shape when
// no header is present: measurement-shaped or list-marked lines, stopping
// early if an instructions-like header appears first. Headers and key:value
// metadata lines never qualify.
func ingredientFallback() textscan.Fallback {
	instructions, _ := Sections.Spec(SectionInstructions)
	return textscan.Fallback{
		Match: func(line string) bool {
			switch textscan.Classify(line) {
			case textscan.KindBulleted, textscan.KindNumbered, textscan.KindMeasurement:
				return true
			default:
				return false
			}
		},
		Stop: instructions.Matches,
	}
}

// ParseIngredientLine applies the ingredient line grammar
// `^<quantity> <unit>? <item...>` to one raw line. The boolean result is
// false when the line yields no usable item; blank ingredients are never
// emitted.
func ParseIngredientLine(raw string) (Ingredient, bool) {
	line := textscan.Normalize(raw)
	if line == "" {
		return Ingredient{}, false
	}

	quantity, rest := textscan.SplitQuantity(line)
	var unit string
	if quantity != "" {
		unit, rest = textscan.SplitUnit(rest)
	}

	item := rest
	if quantity == "" && unit == "" {
		// No measurement at all: the whole line is the item. Handles lines
		// like "Salt and pepper to taste".
		item = line
	}

	item, notes := splitNotes(item)
	item = strings.TrimSpace(strings.Trim(item, ",.;"))
	if item == "" {
		return Ingredient{}, false
	}

	return Ingredient{
		Item:     item,
		Quantity: quantity,
		Unit:     strings.ToLower(unit),
		Notes:    notes,
	}, true
}

// splitNotes extracts preparation notes: a trailing parenthetical wins,
// otherwise everything after the first comma.
func splitNotes(item string) (string, string) {
	if m := parenNotesRe.FindStringSubmatch(item); m != nil {
		rest := strings.TrimSpace(strings.TrimSuffix(item, m[0]))
		return rest, strings.TrimSpace(m[1])
	}
	if i := strings.Index(item, ","); i >= 0 {
		return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:])
	}
	return item, ""
}

// parseInstructions turns section lines into sequential steps. Numbered and
// bulleted lines are always steps; unmarked lines qualify only when long
// enough to be prose. Step numbers are assigned by position, so numbering in
// the source may restart or skip without producing gaps here.
func parseInstructions(lines []string) []Instruction {
	var out []Instruction
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		text := textscan.Normalize(trimmed)
		if text == "" {
			continue
		}
		if !textscan.IsListItem(trimmed) && len(text) < minInstructionLen {
			continue
		}
		out = append(out, Instruction{Step: len(out) + 1, Text: text})
	}
	return out
}
