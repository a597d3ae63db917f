package workout

import (
	"regexp"
	"strings"

	"github.com/wellfed/extraction/internal/textscan"
)

// Plan-level metadata is scraped from the whole document. Section-bound
// pieces (warm-up and cool-down notes) fall back to key:value lines when no
// section header exists.

const fullDurationPat = `\d+\s*(?:hours?|hrs?|minutes?|mins?)(?:\s+(?:and\s+)?\d+\s*(?:minutes?|mins?))?`

var (
	durationKVRe = regexp.MustCompile(`(?i)(?:estimated\s+)?(?:duration|total time|workout time|time needed)\s*:?\s*(` + fullDurationPat + `)`)
	minuteAdjRe  = regexp.MustCompile(`(?i)\b(\d+)[- ]minute\b`)
	levelKVRe    = regexp.MustCompile(`(?i)(?:difficulty|level)\s*:?\s*([a-z]+)`)
	levelAnyRe   = regexp.MustCompile(`(?i)\b(beginner|novice|intermediate|advanced|expert)\b`)
	warmupKVRe   = regexp.MustCompile(`(?i)warm[- ]?up\s*:\s*([^\n]+)`)
	cooldownKVRe = regexp.MustCompile(`(?i)cool[- ]?down\s*:\s*([^\n]+)`)
)

var difficultyWords = map[string]Difficulty{
	"beginner": DifficultyBeginner, "novice": DifficultyBeginner, "easy": DifficultyBeginner,
	"intermediate": DifficultyIntermediate, "moderate": DifficultyIntermediate, "medium": DifficultyIntermediate,
	"advanced": DifficultyAdvanced, "expert": DifficultyAdvanced, "hard": DifficultyAdvanced,
}

// muscleGroups maps canonical group names to their signature keywords, in
// reporting order.
var muscleGroups = []struct {
	name     string
	keywords []string
}{
	{"chest", []string{"chest", "pecs", "pectoral"}},
	{"back", []string{"back", "lats", "latissimus"}},
	{"shoulders", []string{"shoulder", "delts", "deltoid"}},
	{"arms", []string{"arms", "biceps", "triceps", "forearm"}},
	{"legs", []string{"legs", "quads", "quadriceps", "hamstring", "calf", "calves"}},
	{"glutes", []string{"glutes", "gluteal"}},
	{"core", []string{"core", "abs", "abdominal", "obliques"}},
	{"full body", []string{"full body", "full-body", "total body", "whole body"}},
}

var equipmentItems = []struct {
	name     string
	keywords []string
}{
	{"dumbbells", []string{"dumbbell"}},
	{"barbell", []string{"barbell"}},
	{"kettlebell", []string{"kettlebell"}},
	{"resistance bands", []string{"resistance band"}},
	{"pull-up bar", []string{"pull-up bar", "pullup bar", "chin-up bar"}},
	{"bench", []string{"bench"}},
	{"treadmill", []string{"treadmill"}},
	{"jump rope", []string{"jump rope", "skipping rope"}},
	{"mat", []string{"yoga mat", "exercise mat"}},
	{"bodyweight", []string{"bodyweight", "body weight", "no equipment"}},
}

func extractMetadata(text string, lines []string) Metadata {
	lower := strings.ToLower(text)

	md := Metadata{
		EstimatedDuration:  extractDuration(text),
		Difficulty:         extractDifficulty(text),
		TargetMuscleGroups: matchVocabulary(lower, muscleGroups),
		Equipment:          matchVocabulary(lower, equipmentItems),
		WarmupNotes:        sectionNotes(lines, SectionWarmup, warmupKVRe, text),
		CooldownNotes:      sectionNotes(lines, SectionCooldown, cooldownKVRe, text),
	}
	return md
}

func extractDuration(text string) string {
	if m := durationKVRe.FindStringSubmatch(text); m != nil {
		return normalizeSpaces(m[1])
	}
	// Adjectival form: "a 45-minute full body workout".
	if m := minuteAdjRe.FindStringSubmatch(text); m != nil {
		return m[1] + " minutes"
	}
	return ""
}

func extractDifficulty(text string) Difficulty {
	if m := levelKVRe.FindStringSubmatch(text); m != nil {
		if d, ok := difficultyWords[strings.ToLower(m[1])]; ok {
			return d
		}
	}
	if m := levelAnyRe.FindStringSubmatch(text); m != nil {
		return difficultyWords[strings.ToLower(m[1])]
	}
	return ""
}

// sectionNotes joins the lines of a dedicated section, falling back to a
// single key:value line anywhere in the document.
func sectionNotes(lines []string, section string, kvRe *regexp.Regexp, text string) string {
	if found := Sections.Section(lines, section); len(found) > 0 {
		cleaned := make([]string, 0, len(found))
		for _, l := range found {
			if t := textscan.Normalize(l); t != "" {
				cleaned = append(cleaned, t)
			}
		}
		return strings.Join(cleaned, "; ")
	}
	if m := kvRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func matchVocabulary(lower string, vocab []struct {
	name     string
	keywords []string
}) []string {
	var out []string
	for _, entry := range vocab {
		for _, k := range entry.keywords {
			if containsWord(lower, k) {
				out = append(out, entry.name)
				break
			}
		}
	}
	return out
}

// containsWord matches whole words; multi-word keywords use substring
// containment since their length makes accidental matches unlikely.
func containsWord(lower, keyword string) bool {
	if strings.ContainsAny(keyword, " -") {
		return strings.Contains(lower, keyword)
	}
	re := wordRes[keyword]
	if re == nil {
		return strings.Contains(lower, keyword)
	}
	return re.MatchString(lower)
}

// wordRes precompiles a boundary-anchored pattern per single-word keyword.
// An optional trailing "s" lets "squats" count toward "squat".
var wordRes = func() map[string]*regexp.Regexp {
	out := map[string]*regexp.Regexp{}
	add := func(words []string) {
		for _, w := range words {
			if !strings.ContainsAny(w, " -") && out[w] == nil {
				out[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `s?\b`)
			}
		}
	}
	for _, g := range muscleGroups {
		add(g.keywords)
	}
	for _, e := range equipmentItems {
		add(e.keywords)
	}
	for _, b := range categoryBuckets {
		add(b.keywords)
	}
	return out
}()
