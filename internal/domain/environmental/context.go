package environmental

import (
	"github.com/careassess/careassess/internal/platform/assess"
)

// MapFormToContext reshapes a form back into a context record for
// persistence. No heuristics and no inference: field renaming and nesting
// only, with every entry id passed through unchanged. A nil form yields a
// fully structured record with empty collections.
func (m *Mapper) MapFormToContext(form *Form) assess.Record {
	if form == nil {
		m.logger.Warn().Msg("nil form passed to context mapping, returning defaults")
		form = DefaultForm()
	}

	occupants := make([]interface{}, 0, len(form.Dwelling.OtherOccupants))
	for _, occ := range form.Dwelling.OtherOccupants {
		occupants = append(occupants, map[string]interface{}{
			"id":           occ.ID,
			"relationship": occ.Relationship,
			"age":          occ.Age,
			"notes":        occ.Notes,
		})
	}

	issues := make([]interface{}, 0, len(form.AccessibilityIssues.Issues))
	for _, issue := range form.AccessibilityIssues.Issues {
		recommendations := make([]interface{}, 0, len(issue.Recommendations))
		for _, rec := range issue.Recommendations {
			recommendations = append(recommendations, rec)
		}
		issues = append(issues, map[string]interface{}{
			"id":              issue.ID,
			"area":            issue.Area,
			"description":     issue.Description,
			"impactLevel":     issue.ImpactLevel,
			"recommendations": recommendations,
		})
	}

	equipment := make([]interface{}, 0, len(form.AdaptiveEquipment.Equipment))
	for _, eq := range form.AdaptiveEquipment.Equipment {
		equipment = append(equipment, map[string]interface{}{
			"id":            eq.ID,
			"name":          eq.Name,
			"type":          eq.Type,
			"location":      eq.Location,
			"usage":         eq.Usage,
			"effectiveness": eq.Effectiveness,
		})
	}

	modifications := make([]interface{}, 0, len(form.RecommendedModifications.Modifications))
	for _, mod := range form.RecommendedModifications.Modifications {
		modifications = append(modifications, map[string]interface{}{
			"id":          mod.ID,
			"area":        mod.Area,
			"description": mod.Description,
			"priority":    mod.Priority,
			"cost":        mod.Cost,
			"status":      mod.Status,
		})
	}

	other := make([]interface{}, 0, len(form.Dwelling.Rooms.Other))
	for _, room := range form.Dwelling.Rooms.Other {
		other = append(other, room)
	}

	return assess.Record{
		"homeLayout": map[string]interface{}{
			"residenceType":   form.Dwelling.Type,
			"ownershipStatus": form.Dwelling.Ownership,
			"numberOfLevels":  form.Dwelling.Levels,
			"layout":          form.Dwelling.Layout,
			"rooms": map[string]interface{}{
				"bedrooms":  form.Dwelling.Rooms.Bedrooms,
				"bathrooms": form.Dwelling.Rooms.Bathrooms,
				"kitchens":  form.Dwelling.Rooms.Kitchens,
				"other":     other,
			},
			"entryAccess": map[string]interface{}{
				"stairsToEnter":  form.Dwelling.EntryAccess.StairsToEnter,
				"numberOfSteps":  form.Dwelling.EntryAccess.NumberOfSteps,
				"handrails":      form.Dwelling.EntryAccess.Handrails,
				"elevatorAccess": form.Dwelling.EntryAccess.ElevatorAccess,
				"notes":          form.Dwelling.EntryAccess.Notes,
			},
			"occupants": occupants,
		},
		"safetyAssessment": map[string]interface{}{
			"generalSafety":     form.SafetyAssessment.GeneralSafety,
			"bedroomSafety":     form.SafetyAssessment.BedroomSafety,
			"bathroomSafety":    form.SafetyAssessment.BathroomSafety,
			"kitchenSafety":     form.SafetyAssessment.KitchenSafety,
			"stairsSafety":      form.SafetyAssessment.StairsSafety,
			"exteriorSafety":    form.SafetyAssessment.ExteriorSafety,
			"nighttimeSafety":   form.SafetyAssessment.NighttimeSafety,
			"emergencyPlanning": form.SafetyAssessment.EmergencyPlanning,
		},
		"accessibilityIssues": map[string]interface{}{
			"issues": issues,
		},
		"adaptiveEquipment": map[string]interface{}{
			"equipment": equipment,
		},
		"recommendedModifications": map[string]interface{}{
			"modifications": modifications,
		},
	}
}
