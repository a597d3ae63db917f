package workout

import "strings"

// categoryBuckets are the four fixed voting buckets. Keyword hits are
// counted across the whole document; the bucket with the most hits wins.
var categoryBuckets = []struct {
	category Category
	keywords []string
}{
	{CategoryStrength, []string{
		"squat", "deadlift", "bench press", "press", "curl", "row", "lunge",
		"push-up", "pushup", "pull-up", "pullup", "barbell", "dumbbell", "weight", "strength",
	}},
	{CategoryCardio, []string{
		"run", "running", "jog", "jogging", "sprint", "bike", "cycling", "swim",
		"swimming", "rowing", "jump rope", "treadmill", "cardio", "aerobic",
	}},
	{CategoryHIIT, []string{
		"hiit", "interval", "tabata", "circuit", "burpee", "amrap", "emom", "high-intensity",
	}},
	{CategoryFlexibility, []string{
		"stretch", "stretching", "yoga", "mobility", "foam roll", "flexibility", "cool-down stretch",
	}},
}

// ClassifyCategory votes across the four buckets. When the top two buckets
// land within one hit of each other the result is mixed: ambiguity is
// reported rather than resolved by an arbitrary winner. A document with no
// hits at all is likewise mixed.
func ClassifyCategory(text string) Category {
	lower := strings.ToLower(text)

	best, bestCount, secondCount := CategoryMixed, 0, 0
	for _, b := range categoryBuckets {
		count := 0
		for _, k := range b.keywords {
			count += countKeyword(lower, k)
		}
		switch {
		case count > bestCount:
			secondCount = bestCount
			best, bestCount = b.category, count
		case count > secondCount:
			secondCount = count
		}
	}

	if bestCount-secondCount <= 1 {
		return CategoryMixed
	}
	return best
}

func countKeyword(lower, keyword string) int {
	if strings.ContainsAny(keyword, " -") {
		return strings.Count(lower, keyword)
	}
	if re := wordRes[keyword]; re != nil {
		return len(re.FindAllStringIndex(lower, -1))
	}
	return strings.Count(lower, keyword)
}
