package textscan

import "strings"

// SectionSpec names one document section and the header synonyms that open
// it. Synonyms are matched case-insensitively against normalized lines, with
// or without a trailing colon.
type SectionSpec struct {
	Name     string
	Synonyms []string
}

// Table is the full set of sections a domain recognizes. Any section's start
// synonym terminates any other section.
type Table struct {
	Sections []SectionSpec
}

// Fallback is the content-pattern recovery strategy for one section. It runs
// only when header-based detection finds nothing; header detection always
// takes priority.
type Fallback struct {
	// Match reports whether a line belongs to the section by content alone.
	Match func(line string) bool
	// Stop, if set, aborts the scan early (e.g. an instructions-like header
	// means the ingredient region has ended).
	Stop func(line string) bool
}

// Spec returns the section with the given name, if present.
func (t Table) Spec(name string) (SectionSpec, bool) {
	for _, s := range t.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionSpec{}, false
}

// Matches reports whether the normalized header form of line equals one of
// the spec's synonyms.
func (s SectionSpec) Matches(line string) bool {
	h := normalizeHeader(line)
	for _, syn := range s.Synonyms {
		if h == syn {
			return true
		}
	}
	return false
}

// IsSectionHeader reports whether the line opens any section in the table.
func (t Table) IsSectionHeader(line string) bool {
	for _, s := range t.Sections {
		if s.Matches(line) {
			return true
		}
	}
	return false
}

// SectionNames returns the lowercase synonym set of every section, used to
// exclude section headers from title extraction.
func (t Table) SectionNames() []string {
	var names []string
	for _, s := range t.Sections {
		names = append(names, s.Synonyms...)
	}
	return names
}

// Section returns the contiguous non-empty lines belonging to the named
// section: everything after the first line matching one of its start
// synonyms, up to the first line matching any other section's synonym or end
// of text. A missing section yields an empty slice, never an error.
func (t Table) Section(lines []string, name string) []string {
	want, ok := t.Spec(name)
	if !ok {
		return nil
	}

	start := -1
	for i, line := range lines {
		if want.Matches(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var out []string
	for _, line := range lines[start:] {
		if t.isOtherSectionHeader(line, want.Name) {
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (t Table) isOtherSectionHeader(line, except string) bool {
	for _, s := range t.Sections {
		if s.Name == except {
			continue
		}
		if s.Matches(line) {
			return true
		}
	}
	return false
}

// SectionWithFallback applies header-based detection first and runs the
// content-pattern fallback only when it yields zero lines.
func (t Table) SectionWithFallback(lines []string, name string, fb Fallback) []string {
	if found := t.Section(lines, name); len(found) > 0 {
		return found
	}
	if fb.Match == nil {
		return nil
	}

	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if fb.Stop != nil && fb.Stop(trimmed) {
			break
		}
		if fb.Match(trimmed) {
			out = append(out, trimmed)
		}
	}
	return out
}
