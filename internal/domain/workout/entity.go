// Package workout contains the workout extraction domain: the exercise line
// grammar, document-wide metadata extraction, category voting, and the
// validator for workout plans written as free-form chat text.
package workout

import "time"

// Difficulty is the coarse workout difficulty level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Intensity is the per-exercise effort level.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Category is the coarse workout classification assigned by keyword voting.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryHIIT        Category = "hiit"
	CategoryFlexibility Category = "flexibility"
	CategoryMixed       Category = "mixed"
)

// Exercise is one parsed exercise line. Reps stays a string so ranges like
// "8-10" and the literal "to failure" survive unchanged. Duration and Reps
// are mutually exclusive within one parse: when reps matched, duration is
// not also taken from the same line.
type Exercise struct {
	Name       string    `json:"name"`
	Sets       int       `json:"sets,omitempty"`
	Reps       string    `json:"reps,omitempty"`
	Weight     string    `json:"weight,omitempty"`
	WeightUnit string    `json:"weightUnit,omitempty"`
	Duration   string    `json:"duration,omitempty"`
	Intensity  Intensity `json:"intensity,omitempty"`
	Rest       string    `json:"rest,omitempty"`
}

// HasDetails reports whether any quantitative detail was parsed.
func (e Exercise) HasDetails() bool {
	return e.Sets > 0 || e.Reps != "" || e.Duration != ""
}

// Metadata holds the optional plan-level attributes scraped from anywhere in
// the document.
type Metadata struct {
	EstimatedDuration  string     `json:"estimatedDuration,omitempty"`
	Difficulty         Difficulty `json:"difficulty,omitempty"`
	TargetMuscleGroups []string   `json:"targetMuscleGroups,omitempty"`
	Equipment          []string   `json:"equipment,omitempty"`
	WarmupNotes        string     `json:"warmupNotes,omitempty"`
	CooldownNotes      string     `json:"cooldownNotes,omitempty"`
}

// ExtractedWorkout is the immutable result of one extraction run.
type ExtractedWorkout struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
	Metadata  Metadata   `json:"metadata"`
	Category  Category   `json:"category,omitempty"`

	OriginalText string    `json:"originalText"`
	ExtractedAt  time.Time `json:"extractedAt"`

	IsComplete    bool     `json:"isComplete"`
	MissingFields []string `json:"missingFields"`
}

// Field names reported in MissingFields, in rubric order.
const (
	FieldTitle      = "title"
	FieldExercises  = "exercises"
	FieldDuration   = "duration"
	FieldDifficulty = "difficulty"
)

// finalize computes MissingFields and the derived IsComplete flag.
func (w *ExtractedWorkout) finalize() {
	var missing []string
	if w.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if len(w.Exercises) == 0 {
		missing = append(missing, FieldExercises)
	}
	if w.Metadata.EstimatedDuration == "" {
		missing = append(missing, FieldDuration)
	}
	if w.Metadata.Difficulty == "" {
		missing = append(missing, FieldDifficulty)
	}
	w.MissingFields = missing
	w.IsComplete = len(missing) == 0
}
