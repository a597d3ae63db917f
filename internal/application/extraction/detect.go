package extraction

import (
	"strings"

	"github.com/wellfed/extraction/internal/ports/inbound"
)

// Detection signals. Each distinct signal present in the text counts once;
// repeats of the same word do not accumulate. The threshold keeps short
// conversational messages ("I ran to the store") from tripping the filter.
const detectThreshold = 2

var recipeSignals = []string{
	"ingredient", "recipe", "preheat", "bake", "simmer", "saute", "sauté",
	"whisk", "dice", "mince", "marinate", "tablespoon", "teaspoon", "tbsp",
	"tsp", "cup of", "cups", "oven", "skillet", "servings", "prep time",
	"cook time", "garnish", "season to taste", "stir",
}

var workoutSignals = []string{
	"workout", "exercise", "reps", "sets", "warm-up", "warmup", "cool-down",
	"cooldown", "cardio", "squat", "deadlift", "bench press", "push-up",
	"pushup", "pull-up", "burpee", "plank", "dumbbell", "barbell", "rest",
	"muscle", "hiit", "stretch",
}

// Detect is the cheap pre-filter run before any full extraction. It counts
// distinct signals per domain; a domain qualifies at two or more, and when
// both qualify the higher count wins. Ties and sub-threshold counts come
// back unknown so callers can fall through to the generic chat path.
func Detect(text string) inbound.ContentType {
	lower := strings.ToLower(text)

	recipeHits := countSignals(lower, recipeSignals)
	workoutHits := countSignals(lower, workoutSignals)

	switch {
	case recipeHits < detectThreshold && workoutHits < detectThreshold:
		return inbound.ContentTypeUnknown
	case recipeHits > workoutHits:
		return inbound.ContentTypeRecipe
	case workoutHits > recipeHits:
		return inbound.ContentTypeWorkout
	default:
		return inbound.ContentTypeUnknown
	}
}

func countSignals(lower string, signals []string) int {
	n := 0
	for _, s := range signals {
		if strings.Contains(lower, s) {
			n++
		}
	}
	return n
}
