package workout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wellfed/extraction/internal/textscan"
)

// Section names recognized in workout documents.
const (
	SectionExercises = "exercises"
	SectionWarmup    = "warmup"
	SectionCooldown  = "cooldown"
	SectionNotes     = "notes"
)

// Sections is the workout section vocabulary.
var Sections = textscan.Table{Sections: []textscan.SectionSpec{
	{Name: SectionExercises, Synonyms: []string{
		"exercises", "exercise list", "workout", "main workout", "the workout", "routine", "main set", "circuit",
	}},
	{Name: SectionWarmup, Synonyms: []string{
		"warm-up", "warmup", "warm up",
	}},
	{Name: SectionCooldown, Synonyms: []string{
		"cool-down", "cooldown", "cool down", "stretching", "cool down and stretch",
	}},
	{Name: SectionNotes, Synonyms: []string{
		"notes", "tips", "form tips", "form cues",
	}},
}}

var titleConfig = textscan.TitleConfig{
	Prefixes: []string{"title", "workout", "workout name", "routine", "plan"},
	Excluded: Sections.SectionNames(),
}

const durationPat = `\d+\s*(?:hours?|hrs?|minutes?|mins?|seconds?|secs?)`

var (
	setsRe      = regexp.MustCompile(`(?i)(\d+)\s*sets?\b`)
	repsRe      = regexp.MustCompile(`(?i)\b(\d+(?:\s*-\s*\d+)?)\s*reps?\b`)
	toFailureRe = regexp.MustCompile(`(?i)\bto failure\b`)
	durationRe  = regexp.MustCompile(`(?i)\b(` + durationPat + `)\b`)
	restKVRe    = regexp.MustCompile(`(?i)rest\s*:?\s*(` + durationPat + `)`)
	restParenRe = regexp.MustCompile(`(?i)\(\s*rest\s+([^)]+)\)`)
	weightRe    = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(lbs?|pounds?|kgs?|kilograms?)\b`)
	intensityRe = regexp.MustCompile(`(?i)\b(light|low|moderate|medium|intense|high)\b`)

	// Content shape of an exercise line when no header exists.
	exercisePatternRe = regexp.MustCompile(`(?i)\d+\s*(?:sets?|reps?|seconds?|secs?|minutes?|mins?)\b`)

	// Key:value lines owned by plan metadata, never exercises.
	planKeyRe = regexp.MustCompile(`(?i)^\s*(?:estimated\s+duration|duration|total time|workout time|time needed|difficulty|level|rest|warm[- ]?up|cool[- ]?down|notes?|equipment|focus|target)\s*:`)
)

var intensityWords = map[string]Intensity{
	"light": IntensityLow, "low": IntensityLow,
	"moderate": IntensityMedium, "medium": IntensityMedium,
	"intense": IntensityHigh, "high": IntensityHigh,
}

// Parse extracts a structured workout plan from free-form text. Like the
// recipe parser it never fails; gaps surface in MissingFields and the
// validation report.
func Parse(text string) *ExtractedWorkout {
	lines := textscan.SplitLines(text)

	w := &ExtractedWorkout{
		OriginalText: text,
		ExtractedAt:  time.Now().UTC(),
		Title:        textscan.ExtractTitle(lines, titleConfig),
	}

	for _, line := range Sections.SectionWithFallback(lines, SectionExercises, exerciseFallback()) {
		if ex, ok := ParseExerciseLine(line); ok {
			w.Exercises = append(w.Exercises, ex)
		}
	}

	w.Metadata = extractMetadata(text, lines)
	w.Category = ClassifyCategory(text)

	w.finalize()
	return w
}

// exerciseFallback recovers exercises by content shape. List-marked lines
// always qualify; key:value lines qualify only when they carry a sets/reps
// pattern and their key is not plan metadata, so "Duration: 30 minutes"
// stays out of the exercise list.
func exerciseFallback() textscan.Fallback {
	return textscan.Fallback{
		Match: func(line string) bool {
			switch textscan.Classify(line) {
			case textscan.KindBulleted, textscan.KindNumbered:
				return true
			case textscan.KindKeyValue:
				return !planKeyRe.MatchString(line) && exercisePatternRe.MatchString(line)
			default:
				return exercisePatternRe.MatchString(line)
			}
		},
	}
}

// ParseExerciseLine applies the exercise line grammar to one raw line. The
// line splits on the first ":" or spaced "-" into name and details; without
// a separator the whole line is the name. Names shorter than 3 characters
// after trimming are parsing noise and rejected.
func ParseExerciseLine(raw string) (Exercise, bool) {
	line := textscan.Normalize(raw)
	if line == "" {
		return Exercise{}, false
	}

	name, details := splitNameDetails(line)
	ex := Exercise{Name: strings.TrimSpace(name)}
	if len(ex.Name) < 3 {
		return Exercise{}, false
	}
	if details == "" {
		return ex, true
	}

	// Rest is pulled out first and removed so its duration figure cannot be
	// mistaken for the exercise duration.
	details = extractRest(&ex, details)

	if m := setsRe.FindStringSubmatch(details); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			ex.Sets = v
		}
	}

	switch {
	case repsRe.MatchString(details):
		ex.Reps = compactRange(repsRe.FindStringSubmatch(details)[1])
	case toFailureRe.MatchString(details):
		ex.Reps = "to failure"
	default:
		// Duration is assigned only when reps did not match on this line.
		if m := durationRe.FindStringSubmatch(details); m != nil {
			ex.Duration = normalizeSpaces(m[1])
		}
	}

	if m := intensityRe.FindStringSubmatch(details); m != nil {
		ex.Intensity = intensityWords[strings.ToLower(m[1])]
	}

	if m := weightRe.FindStringSubmatch(details); m != nil {
		ex.Weight = m[1]
		ex.WeightUnit = canonicalWeightUnit(m[2])
	}

	return ex, true
}

// splitNameDetails splits on the first ":" or, failing that, the first
// dash surrounded by spaces. Requiring spaces around the dash keeps
// hyphenated names like "Push-ups" intact.
func splitNameDetails(line string) (name, details string) {
	if i := strings.Index(line, ":"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	if i := strings.Index(line, " - "); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+3:])
	}
	return line, ""
}

// extractRest fills Rest from either "rest: <duration>" or a parenthetical
// "(rest <duration>)" and returns the details with the matched text removed.
func extractRest(ex *Exercise, details string) string {
	if m := restParenRe.FindStringSubmatch(details); m != nil {
		ex.Rest = normalizeSpaces(m[1])
		return strings.Replace(details, m[0], "", 1)
	}
	if m := restKVRe.FindStringSubmatch(details); m != nil {
		ex.Rest = normalizeSpaces(m[1])
		return strings.Replace(details, m[0], "", 1)
	}
	return details
}

func canonicalWeightUnit(u string) string {
	switch strings.ToLower(u) {
	case "lb", "lbs", "pound", "pounds":
		return "lbs"
	default:
		return "kg"
	}
}

func compactRange(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " - ")), "")
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
