package environmental

import (
	"strings"

	"github.com/careassess/careassess/internal/platform/assess"
)

// equipmentRule adds a canned equipment entry when a safety text mentions
// its trigger and no equipment with a matching name exists yet.
type equipmentRule struct {
	safetyField string
	trigger     string
	nameMatch   string
	entry       Equipment
}

var equipmentRules = []equipmentRule{
	{
		safetyField: "bathroomSafety",
		trigger:     "grab bar",
		nameMatch:   "grab bar",
		entry: Equipment{
			Name:          "Grab bars",
			Type:          "Bathroom Safety",
			Location:      "Bathroom",
			Usage:         "Daily",
			Effectiveness: "Effective",
		},
	},
	{
		safetyField: "nighttimeSafety",
		trigger:     "night light",
		nameMatch:   "night light",
		entry: Equipment{
			Name:          "Night lights",
			Type:          "Safety Equipment",
			Location:      "Hallways and Bathroom",
			Usage:         "Nightly",
			Effectiveness: "Effective",
		},
	},
	{
		safetyField: "stairsSafety",
		trigger:     "handrail",
		nameMatch:   "handrail",
		entry: Equipment{
			Name:          "Stair handrails",
			Type:          "Safety Equipment",
			Location:      "Stairs",
			Usage:         "Daily",
			Effectiveness: "Effective",
		},
	},
}

// hazardAreas are the safety fields scanned for hazard language, with the
// issue area each maps to.
var hazardAreas = []struct {
	safetyField string
	area        string
}{
	{"bathroomSafety", "Bathroom"},
	{"bedroomSafety", "Bedroom"},
	{"kitchenSafety", "Kitchen"},
	{"stairsSafety", "Stairs"},
	{"exteriorSafety", "Exterior"},
}

// Enhance cross-references the original context's safety texts into the
// equipment and issue lists. Every rule is idempotent: re-running adds no
// duplicate entries.
func (m *Mapper) Enhance(ctx assess.Record, form *Form) {
	safety := ctx.Section("safetyAssessment")
	if safety == nil {
		return
	}

	for _, rule := range equipmentRules {
		text := safety.String(rule.safetyField)
		if text == "" || !assess.ContainsAny(text, rule.trigger) {
			continue
		}
		if hasEquipmentNamed(form.AdaptiveEquipment.Equipment, rule.nameMatch) {
			continue
		}
		entry := rule.entry
		entry.ID = m.ids.NewID()
		form.AdaptiveEquipment.Equipment = append(form.AdaptiveEquipment.Equipment, entry)
	}

	for _, hazard := range hazardAreas {
		text := safety.String(hazard.safetyField)
		if text == "" || !assess.ContainsAny(text, "hazard", "unsafe", "risk", "danger") {
			continue
		}
		if hasIssueForText(form.AccessibilityIssues.Issues, hazard.area, text) {
			continue
		}

		impact := ImpactModerate
		if assess.ContainsAny(text, "severe") {
			impact = ImpactSevere
		}
		form.AccessibilityIssues.Issues = append(form.AccessibilityIssues.Issues, Issue{
			ID:              m.ids.NewID(),
			Area:            hazard.area,
			Description:     "Safety concern: " + text,
			ImpactLevel:     impact,
			Recommendations: []string{},
		})
	}
}

func hasEquipmentNamed(equipment []Equipment, nameMatch string) bool {
	for _, eq := range equipment {
		if strings.Contains(strings.ToLower(eq.Name), nameMatch) {
			return true
		}
	}
	return false
}

func hasIssueForText(issues []Issue, area, text string) bool {
	for _, issue := range issues {
		if issue.Area == area && strings.Contains(issue.Description, text) {
			return true
		}
	}
	return false
}
