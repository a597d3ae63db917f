package textscan

import "strings"

// TitleConfig controls title extraction for one domain.
type TitleConfig struct {
	// Prefixes are explicit lowercase title markers such as "title" or
	// "recipe"; a line "Title: Pancakes" yields "Pancakes".
	Prefixes []string
	// Excluded holds lowercase header names (section synonyms) that must not
	// be mistaken for a title.
	Excluded []string
}

// ExtractTitle applies the title strategies in strict order and returns the
// first hit: an explicit prefix line, then the first markdown header not
// naming an excluded section, then the first short plain line. An empty
// string means no strategy matched.
func ExtractTitle(lines []string, cfg TitleConfig) string {
	if t := titleFromPrefix(lines, cfg.Prefixes); t != "" {
		return t
	}
	if t := titleFromHeader(lines, cfg.Excluded); t != "" {
		return t
	}
	return titleFromPlainLine(lines, cfg.Excluded)
}

func titleFromPrefix(lines []string, prefixes []string) string {
	for _, line := range lines {
		normalized := Normalize(line)
		lower := strings.ToLower(normalized)
		for _, p := range prefixes {
			if strings.HasPrefix(lower, p+":") {
				// A bare "Workout:" header has no remainder and is not a
				// title; keep scanning.
				if rest := strings.TrimSpace(normalized[len(p)+1:]); rest != "" {
					return rest
				}
			}
		}
	}
	return ""
}

func titleFromHeader(lines []string, excluded []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !markdownHdrRe.MatchString(trimmed) {
			continue
		}
		text := Normalize(trimmed)
		if text == "" || isExcluded(text, excluded) {
			continue
		}
		return strings.TrimSuffix(text, ":")
	}
	return ""
}

func titleFromPlainLine(lines []string, excluded []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) >= 80 {
			continue
		}
		if IsListItem(trimmed) || looksLikeHeader(trimmed) || markdownHdrRe.MatchString(trimmed) {
			continue
		}
		if IsMeasurementLine(trimmed) {
			continue
		}
		if keyValueRe.MatchString(trimmed) {
			continue
		}
		text := Normalize(trimmed)
		if text == "" || isExcluded(text, excluded) {
			continue
		}
		return text
	}
	return ""
}

func isExcluded(text string, excluded []string) bool {
	h := strings.TrimSuffix(strings.ToLower(text), ":")
	for _, e := range excluded {
		if h == e {
			return true
		}
	}
	return false
}
