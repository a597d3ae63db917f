// Package recipe contains the recipe extraction domain: typed records
// extracted from free-form chat text plus the line grammars, metadata
// extractors, classifiers, and validator that produce them.
//
// Everything here is deterministic and side-effect-free. Malformed input
// never causes an error; unparseable lines are skipped and the gaps show up
// in MissingFields and the validation report instead.
package recipe

import "time"

// Difficulty is the coarse recipe difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Ingredient is one parsed ingredient line. Quantity is kept as the raw
// numeric-or-fraction string so ratios like "1/2" round-trip losslessly.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Instruction is one parsed instruction step. Step numbers are assigned by
// the parser, 1-based and gap-free, regardless of the source numbering.
type Instruction struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// Metadata holds the optional scalar attributes scraped from anywhere in the
// document. Time values stay free-form strings ("1 hour 20 minutes") and
// servings may be a range ("4-6").
type Metadata struct {
	PrepTime   string     `json:"prepTime,omitempty"`
	CookTime   string     `json:"cookTime,omitempty"`
	TotalTime  string     `json:"totalTime,omitempty"`
	Servings   string     `json:"servings,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Cuisine    string     `json:"cuisine,omitempty"`
	Course     string     `json:"course,omitempty"`
}

// HasTimeInfo reports whether any time field was captured.
func (m Metadata) HasTimeInfo() bool {
	return m.PrepTime != "" || m.CookTime != "" || m.TotalTime != ""
}

// Nutrition holds per-recipe nutrition figures stated in the text. Each
// field is filled from the first textual match only.
type Nutrition struct {
	Calories int     `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sugar    float64 `json:"sugar,omitempty"`
}

// ExtractedRecipe is the immutable result of one extraction run. It has no
// persistence identity; the caller assigns IDs when storing.
type ExtractedRecipe struct {
	Title        string        `json:"title"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []Instruction `json:"instructions"`
	Metadata     Metadata      `json:"metadata"`
	Nutrition    *Nutrition    `json:"nutrition,omitempty"`
	Tags         []string      `json:"tags,omitempty"`

	// OriginalText is the verbatim input, kept for audit and re-parsing.
	OriginalText string    `json:"originalText"`
	ExtractedAt  time.Time `json:"extractedAt"`

	IsComplete    bool     `json:"isComplete"`
	MissingFields []string `json:"missingFields"`
}

// Field names reported in MissingFields, in rubric order.
const (
	FieldTitle        = "title"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
	FieldServings     = "servings"
	FieldTime         = "time"
	FieldNutrition    = "nutrition"
)

// finalize computes MissingFields and the derived IsComplete flag. They are
// never set independently.
func (r *ExtractedRecipe) finalize() {
	var missing []string
	if r.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if len(r.Ingredients) == 0 {
		missing = append(missing, FieldIngredients)
	}
	if len(r.Instructions) == 0 {
		missing = append(missing, FieldInstructions)
	}
	if r.Metadata.Servings == "" {
		missing = append(missing, FieldServings)
	}
	if !r.Metadata.HasTimeInfo() {
		missing = append(missing, FieldTime)
	}
	if r.Nutrition == nil {
		missing = append(missing, FieldNutrition)
	}
	r.MissingFields = missing
	r.IsComplete = len(missing) == 0
}
