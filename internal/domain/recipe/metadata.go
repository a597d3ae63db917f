package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// Metadata and nutrition extraction scans the entire document, not any
// bounded section, so figures stated before or after the main sections are
// still captured. Each numeric field takes the first textual match only.

// durationPat matches free-form durations like "10 minutes", "1 hour 20
// minutes", "45 mins". Values are kept verbatim, never normalized.
const durationPat = `\d+\s*(?:hours?|hrs?|minutes?|mins?|seconds?|secs?)(?:\s+(?:and\s+)?\d+\s*(?:minutes?|mins?))?`

var (
	prepTimeRe  = regexp.MustCompile(`(?i)prep(?:aration)?\s*time\s*:?\s*(` + durationPat + `)`)
	cookTimeRe  = regexp.MustCompile(`(?i)cook(?:ing)?\s*time\s*:?\s*(` + durationPat + `)`)
	totalTimeRe = regexp.MustCompile(`(?i)total\s*time\s*:?\s*(` + durationPat + `)`)
	servingsRe  = regexp.MustCompile(`(?i)(?:servings?|serves|yields?|makes)\s*:?\s*(\d+(?:\s*-\s*\d+)?)`)

	difficultyKVRe = regexp.MustCompile(`(?i)difficulty\s*:?\s*([a-z]+)`)
	cuisineKVRe    = regexp.MustCompile(`(?i)cuisine\s*:?\s*([a-z]+)`)
	courseKVRe     = regexp.MustCompile(`(?i)course\s*:?\s*([a-z ]+?)(?:[.\n,]|$)`)

	difficultyWords = map[string]Difficulty{
		"easy": DifficultyEasy, "simple": DifficultyEasy, "beginner": DifficultyEasy,
		"medium": DifficultyMedium, "moderate": DifficultyMedium, "intermediate": DifficultyMedium,
		"hard": DifficultyHard, "difficult": DifficultyHard, "advanced": DifficultyHard, "challenging": DifficultyHard,
	}
)

func extractMetadata(text string) Metadata {
	md := Metadata{
		PrepTime:  firstGroup(prepTimeRe, text),
		CookTime:  firstGroup(cookTimeRe, text),
		TotalTime: firstGroup(totalTimeRe, text),
		Servings:  compactRange(firstGroup(servingsRe, text)),
	}

	if w := strings.ToLower(firstGroup(difficultyKVRe, text)); w != "" {
		md.Difficulty = difficultyWords[w]
	}
	if md.Difficulty == "" {
		md.Difficulty = difficultyFromKeywords(text)
	}

	if c := strings.ToLower(firstGroup(cuisineKVRe, text)); c != "" && isKnownCuisine(c) {
		md.Cuisine = c
	}
	if md.Cuisine == "" {
		md.Cuisine = classifyCuisine(text)
	}

	if c := strings.ToLower(strings.TrimSpace(firstGroup(courseKVRe, text))); c != "" && isKnownCourse(c) {
		md.Course = c
	}
	if md.Course == "" {
		md.Course = classifyCourse(text)
	}

	return md
}

// difficultyAnyRe covers the unambiguous difficulty words for the keyword
// fallback. Bare "medium" and "hard" are deliberately excluded: they appear
// in cooking prose ("medium heat", "hard boil") far more often than as
// difficulty statements. The explicit "Difficulty:" field still accepts them.
var difficultyAnyRe = regexp.MustCompile(`(?i)\b(easy|simple|beginner|moderate|intermediate|difficult|advanced|challenging)\b`)

// difficultyFromKeywords picks the difficulty word appearing earliest in the
// document when no explicit difficulty field exists.
func difficultyFromKeywords(text string) Difficulty {
	if m := difficultyAnyRe.FindStringSubmatch(text); m != nil {
		return difficultyWords[strings.ToLower(m[1])]
	}
	return ""
}

var (
	caloriesRe = regexp.MustCompile(`(?i)(?:calories|kcal)\s*:?\s*(\d+)|(\d+)\s*(?:kcal|calories)\b`)
	proteinRe  = regexp.MustCompile(`(?i)protein\s*:?\s*(\d+(?:\.\d+)?)\s*g?\b`)
	carbsRe    = regexp.MustCompile(`(?i)carb(?:ohydrate)?s?\s*:?\s*(\d+(?:\.\d+)?)\s*g?\b`)
	fatRe      = regexp.MustCompile(`(?i)\bfat\s*:?\s*(\d+(?:\.\d+)?)\s*g?\b`)
	fiberRe    = regexp.MustCompile(`(?i)fib(?:er|re)\s*:?\s*(\d+(?:\.\d+)?)\s*g?\b`)
	sugarRe    = regexp.MustCompile(`(?i)sugars?\s*:?\s*(\d+(?:\.\d+)?)\s*g?\b`)
)

// extractNutrition returns nil when no nutrition figure appears anywhere in
// the text. Duplicate mentions are not aggregated; the first match wins.
func extractNutrition(text string) *Nutrition {
	var n Nutrition
	found := false

	if m := caloriesRe.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if v, err := strconv.Atoi(raw); err == nil {
			n.Calories = v
			found = true
		}
	}

	for _, f := range []struct {
		re  *regexp.Regexp
		dst *float64
	}{
		{proteinRe, &n.Protein},
		{carbsRe, &n.Carbs},
		{fatRe, &n.Fat},
		{fiberRe, &n.Fiber},
		{sugarRe, &n.Sugar},
	} {
		if g := firstGroup(f.re, text); g != "" {
			if v, err := strconv.ParseFloat(g, 64); err == nil {
				*f.dst = v
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return &n
}

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// compactRange normalizes "4 - 6" to "4-6" while leaving plain numbers
// untouched.
func compactRange(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " - ")), "")
}
