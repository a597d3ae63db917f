package workout

import (
	"strings"

	"github.com/wellfed/extraction/internal/domain/shared"
)

// Validation messages. Errors block saving; warnings are soft UI hints.
const (
	errMissingTitle     = "workout title is missing"
	errPlaceholderTitle = "workout title looks like a placeholder"
	errNoExercises      = "no exercises were found"
	warnSingleExercise  = "only one exercise was detected"
	warnNoDetails       = "no exercise has sets, reps, or a duration"
	warnNoDuration      = "workout duration was not detected"
	warnNoDifficulty    = "difficulty level was not detected"
	warnNoMuscleGroups  = "no target muscle groups were detected"
)

var placeholderTitles = map[string]bool{
	"workout":          true,
	"untitled":         true,
	"untitled workout": true,
	"my workout":       true,
	"new workout":      true,
	"routine":          true,
}

// Validate checks an assembled workout against the minimum-completeness gate
// and scores it against the fixed rubric. State-free and deterministic.
func Validate(w *ExtractedWorkout) shared.ValidationReport {
	var errs, warns []string

	titleOK := true
	switch {
	case strings.TrimSpace(w.Title) == "":
		errs = append(errs, errMissingTitle)
		titleOK = false
	case placeholderTitles[strings.ToLower(strings.TrimSpace(w.Title))]:
		errs = append(errs, errPlaceholderTitle)
		titleOK = false
	}

	switch len(w.Exercises) {
	case 0:
		errs = append(errs, errNoExercises)
	case 1:
		warns = append(warns, warnSingleExercise)
	}

	detailed := false
	for _, ex := range w.Exercises {
		if ex.HasDetails() {
			detailed = true
			break
		}
	}
	if len(w.Exercises) > 0 && !detailed {
		warns = append(warns, warnNoDetails)
	}

	if w.Metadata.EstimatedDuration == "" {
		warns = append(warns, warnNoDuration)
	}
	if w.Metadata.Difficulty == "" {
		warns = append(warns, warnNoDifficulty)
	}
	if len(w.Metadata.TargetMuscleGroups) == 0 {
		warns = append(warns, warnNoMuscleGroups)
	}

	rubric := []shared.RubricItem{
		{Name: FieldTitle, Weight: 2, Met: titleOK},
		{Name: FieldExercises, Weight: 2, Met: len(w.Exercises) >= 2},
		{Name: "details", Weight: 2, Met: detailed},
		{Name: FieldDuration, Weight: 1, Met: w.Metadata.EstimatedDuration != ""},
		{Name: FieldDifficulty, Weight: 1, Met: w.Metadata.Difficulty != ""},
		{Name: "muscleGroups", Weight: 1, Met: len(w.Metadata.TargetMuscleGroups) > 0},
		{Name: "equipment", Weight: 1, Met: len(w.Metadata.Equipment) > 0},
	}

	return shared.NewReport(errs, warns, rubric)
}
