package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeRecipe() *ExtractedRecipe {
	r := &ExtractedRecipe{
		Title: "Classic Pancakes",
		Ingredients: []Ingredient{
			{Item: "flour", Quantity: "2", Unit: "cups"},
			{Item: "milk", Quantity: "1.5", Unit: "cups"},
		},
		Instructions: []Instruction{
			{Step: 1, Text: "Whisk everything together."},
			{Step: 2, Text: "Cook until golden."},
		},
		Metadata: Metadata{
			PrepTime: "10 minutes",
			Servings: "4",
		},
		Nutrition: &Nutrition{Calories: 350},
		Tags:      []string{"baked"},
	}
	r.finalize()
	return r
}

func TestValidateCompleteRecipe(t *testing.T) {
	report := Validate(completeRecipe())

	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 100, report.Completeness)
}

func TestValidateMissingTitle(t *testing.T) {
	r := completeRecipe()
	r.Title = ""
	r.finalize()

	report := Validate(r)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors, errMissingTitle)
	// Title carries weight 2 of 10.
	assert.Equal(t, 80, report.Completeness)
}

func TestValidatePlaceholderTitle(t *testing.T) {
	r := completeRecipe()
	r.Title = "Untitled Recipe"

	report := Validate(r)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors, errPlaceholderTitle)
}

func TestValidateWarningsDoNotInvalidate(t *testing.T) {
	r := completeRecipe()
	r.Metadata.Servings = ""
	r.Metadata.PrepTime = ""
	r.Nutrition = nil
	r.finalize()

	report := Validate(r)

	assert.True(t, report.IsValid)
	assert.Contains(t, report.Warnings, warnNoServings)
	assert.Contains(t, report.Warnings, warnNoTimeInfo)
	assert.Contains(t, report.Warnings, warnNoNutrition)
	// Three weight-1 items dropped from a total of 10.
	assert.Equal(t, 70, report.Completeness)
}

func TestValidateSingleItemsWarn(t *testing.T) {
	r := completeRecipe()
	r.Ingredients = r.Ingredients[:1]
	r.Instructions = r.Instructions[:1]

	report := Validate(r)

	assert.True(t, report.IsValid)
	assert.Contains(t, report.Warnings, warnSingleIngredient)
	assert.Contains(t, report.Warnings, warnSingleInstruction)
	// Both weight-2 rubric items require at least two entries.
	assert.Equal(t, 60, report.Completeness)
}

func TestValidateEmptyRecipe(t *testing.T) {
	r := &ExtractedRecipe{}
	r.finalize()

	report := Validate(r)

	assert.False(t, report.IsValid)
	assert.Len(t, report.Errors, 3)
	assert.Equal(t, 0, report.Completeness)
	assert.False(t, r.IsComplete)
	assert.Equal(t,
		[]string{FieldTitle, FieldIngredients, FieldInstructions, FieldServings, FieldTime, FieldNutrition},
		r.MissingFields)
}
