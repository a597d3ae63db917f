package recipe

import (
	"strings"

	"github.com/wellfed/extraction/internal/domain/shared"
)

// Validation messages. Errors block saving; warnings are soft UI hints.
const (
	errMissingTitle       = "recipe title is missing"
	errPlaceholderTitle   = "recipe title looks like a placeholder"
	errNoIngredients      = "no ingredients were found"
	errNoInstructions     = "no instructions were found"
	warnSingleIngredient  = "only one ingredient was detected"
	warnSingleInstruction = "only one instruction step was detected"
	warnNoServings        = "servings were not detected"
	warnNoTimeInfo        = "no prep, cook, or total time was detected"
	warnNoNutrition       = "no nutrition information was found"
)

// placeholderTitles are generic strings that signal title extraction latched
// onto boilerplate rather than a real name.
var placeholderTitles = map[string]bool{
	"recipe":          true,
	"untitled":        true,
	"untitled recipe": true,
	"my recipe":       true,
	"new recipe":      true,
}

// Validate checks an assembled extraction against the minimum-completeness
// gate and scores it against the fixed rubric. It is state-free: the record
// is not modified and identical input always yields an identical report.
func Validate(r *ExtractedRecipe) shared.ValidationReport {
	var errs, warns []string

	titleOK := true
	switch {
	case strings.TrimSpace(r.Title) == "":
		errs = append(errs, errMissingTitle)
		titleOK = false
	case placeholderTitles[strings.ToLower(strings.TrimSpace(r.Title))]:
		errs = append(errs, errPlaceholderTitle)
		titleOK = false
	}

	switch len(r.Ingredients) {
	case 0:
		errs = append(errs, errNoIngredients)
	case 1:
		warns = append(warns, warnSingleIngredient)
	}

	switch len(r.Instructions) {
	case 0:
		errs = append(errs, errNoInstructions)
	case 1:
		warns = append(warns, warnSingleInstruction)
	}

	if r.Metadata.Servings == "" {
		warns = append(warns, warnNoServings)
	}
	if !r.Metadata.HasTimeInfo() {
		warns = append(warns, warnNoTimeInfo)
	}
	if r.Nutrition == nil {
		warns = append(warns, warnNoNutrition)
	}

	rubric := []shared.RubricItem{
		{Name: FieldTitle, Weight: 2, Met: titleOK},
		{Name: FieldIngredients, Weight: 2, Met: len(r.Ingredients) >= 2},
		{Name: FieldInstructions, Weight: 2, Met: len(r.Instructions) >= 2},
		{Name: FieldServings, Weight: 1, Met: r.Metadata.Servings != ""},
		{Name: FieldTime, Weight: 1, Met: r.Metadata.HasTimeInfo()},
		{Name: FieldNutrition, Weight: 1, Met: r.Nutrition != nil},
		{Name: "tags", Weight: 1, Met: len(r.Tags) > 0},
	}

	return shared.NewReport(errs, warns, rubric)
}
