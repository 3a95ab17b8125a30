package adl

import (
	"regexp"
	"strings"

	"github.com/careassess/careassess/internal/platform/assess"
)

// independenceCascade is an ordered cascade of substring checks; first
// match wins. Specific modifiers ("modified independent", assist grades)
// are checked before the bare "independent" match, and the bare
// "dependent" match comes last of all because "independent" contains it.
var independenceCascade = []struct {
	level    string
	keywords []string
}{
	{LevelModifiedIndependent, []string{"modified independent", "uses device", "uses a device", "with device"}},
	{LevelSupervision, []string{"supervision", "standby", "stand-by"}},
	{LevelMinimalAssistance, []string{"minimal assist", "min assist"}},
	{LevelModerateAssistance, []string{"moderate assist", "mod assist"}},
	{LevelMaximalAssistance, []string{"maximal assist", "max assist"}},
	{LevelTotalAssistance, []string{"total assist", "unable"}},
	{LevelIndependent, []string{"independent"}},
	{LevelTotalAssistance, []string{"dependent"}},
}

var canonicalLevels = map[string]bool{
	LevelIndependent:         true,
	LevelModifiedIndependent: true,
	LevelSupervision:         true,
	LevelMinimalAssistance:   true,
	LevelModerateAssistance:  true,
	LevelMaximalAssistance:   true,
	LevelTotalAssistance:     true,
	LevelNotApplicable:       true,
}

// MapIndependenceLevel classifies a clinical independence description
// ("Modified Independent - uses cane", "Min assist x1") into one of the
// eight categorical levels. Already-canonical values pass through; empty
// or unrecognized text maps to not_applicable.
func MapIndependenceLevel(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return LevelNotApplicable
	}
	if canonicalLevels[normalized] {
		return normalized
	}
	for _, step := range independenceCascade {
		if assess.ContainsAny(text, step.keywords...) {
			return step.level
		}
	}
	return LevelNotApplicable
}

// notePatterns are tried in order; the first non-empty capture wins.
var notePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)independent (?:in|with|for) (.+)`),
	regexp.MustCompile(`(?i)assistance:\s*(.+)`),
	regexp.MustCompile(`:\s*(.+)`),
	regexp.MustCompile(`-\s*(.+)`),
}

// ExtractNotes pulls the descriptive remainder out of an independence
// phrase, falling back to the full text when no pattern matches.
func ExtractNotes(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	for _, pattern := range notePatterns {
		m := pattern.FindStringSubmatch(trimmed)
		if len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return trimmed
}

// InferIndependenceFromText classifies descriptive narrative text that
// does not use the clinical scale ("struggles with buttons", "manages
// well on her own"). It is a separate cascade from MapIndependenceLevel
// with its own precedence, including a secondary sentiment fallback.
func InferIndependenceFromText(text string) string {
	if strings.TrimSpace(text) == "" {
		return LevelNotApplicable
	}
	switch {
	case assess.ContainsAny(text, "unable", "cannot", "not able"):
		return LevelTotalAssistance
	case assess.ContainsAny(text, "difficult", "challenge", "struggle", "hard"):
		return LevelModerateAssistance
	case assess.ContainsAny(text, "with help", "assistance", "assist"):
		return LevelMinimalAssistance
	case assess.ContainsAny(text, "modified", "adaptation", "adapted"):
		return LevelModifiedIndependent
	case assess.ContainsAny(text, "independent", "able to", "can do"):
		return LevelIndependent
	case assess.ContainsAny(text, "good", "well", "fine", "enjoy", "regular"):
		return LevelIndependent
	case assess.ContainsAny(text, "limited", "restrict", "reduced"):
		return LevelMinimalAssistance
	}
	return LevelNotApplicable
}

// equipmentKeywords maps phrases seen in free-text activity notes to
// canonical equipment names. Multi-word phrases come before the single
// words they contain.
var equipmentKeywords = []struct {
	keyword string
	name    string
}{
	{"grab bar", "Grab bars"},
	{"shower chair", "Shower chair"},
	{"shower bench", "Shower bench"},
	{"raised toilet", "Raised toilet seat"},
	{"commode", "Bedside commode"},
	{"sock aid", "Sock aid"},
	{"dressing stick", "Dressing stick"},
	{"built-up utensil", "Built-up utensils"},
	{"walker", "Walker"},
	{"cane", "Cane"},
	{"wheelchair", "Wheelchair"},
	{"reacher", "Reacher"},
}

// ScanEquipment collects canonical equipment names mentioned in free
// text. Always returns a non-nil slice.
func ScanEquipment(text string) []string {
	found := []string{}
	for _, entry := range equipmentKeywords {
		if assess.ContainsAny(text, entry.keyword) {
			found = append(found, entry.name)
		}
	}
	return found
}
