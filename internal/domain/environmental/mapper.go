package environmental

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/careassess/careassess/internal/platform/assess"
)

// Mapper converts between untyped context records and the fixed-shape
// environmental assessment form. It holds no state between calls; every
// mapping starts from a fresh default form.
type Mapper struct {
	ids    assess.IDGenerator
	logger zerolog.Logger
}

func NewMapper(ids assess.IDGenerator, logger zerolog.Logger) *Mapper {
	return &Mapper{ids: ids, logger: logger}
}

// MapResult is the outcome of a context→form mapping. HasData is true iff
// the context contained at least one recognized section.
type MapResult struct {
	Form    *Form `json:"form"`
	HasData bool  `json:"has_data"`
}

// MapContextToForm maps an arbitrary, possibly partial context record onto
// a fully shaped form. The input is never mutated. A failure in one
// section leaves that section at its defaults and does not abort the rest.
func (m *Mapper) MapContextToForm(ctx assess.Record) MapResult {
	form := DefaultForm()
	if len(ctx) == 0 {
		return MapResult{Form: form}
	}

	hasData := false
	p := assess.NewPipeline(m.logger)
	p.Run(
		assess.Section{Name: "dwelling", Run: func() error {
			if ctx.Has("homeLayout", "dwelling") {
				hasData = true
				m.mapDwelling(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "safetyAssessment", Run: func() error {
			if ctx.Has("safetyAssessment") {
				hasData = true
				mapSafety(ctx.Section("safetyAssessment"), form)
			}
			return nil
		}},
		assess.Section{Name: "accessibilityIssues", Run: func() error {
			if ctx.Has("accessibilityIssues") {
				hasData = true
				m.mapIssues(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "adaptiveEquipment", Run: func() error {
			if ctx.Has("adaptiveEquipment") {
				hasData = true
				m.mapEquipment(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "recommendedModifications", Run: func() error {
			if ctx.Has("recommendedModifications") {
				hasData = true
				m.mapModifications(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "crossReference", Run: func() error {
			m.Enhance(ctx, form)
			return nil
		}},
	)

	return MapResult{Form: form, HasData: hasData}
}

func (m *Mapper) mapDwelling(ctx assess.Record, form *Form) {
	layout := ctx.Section("homeLayout")
	if layout == nil {
		layout = ctx.Section("dwelling")
	}
	if layout == nil {
		return
	}

	form.Dwelling.Type = layout.String("residenceType", "type")
	form.Dwelling.Ownership = layout.String("ownershipStatus", "ownership")
	form.Dwelling.Levels = layout.String("numberOfLevels", "levels")
	form.Dwelling.Layout = layout.String("layout")

	if rooms := layout.Section("rooms"); rooms != nil {
		form.Dwelling.Rooms = Rooms{
			Bedrooms:  rooms.Int(0, "bedrooms"),
			Bathrooms: rooms.Int(0, "bathrooms"),
			Kitchens:  rooms.Int(0, "kitchens"),
			Other:     rooms.StringList("other"),
		}
	} else if description := layout.String("description"); description != "" {
		form.Dwelling.Rooms = extractRooms(description)
	}

	if entry := layout.Section("entryAccess"); entry != nil {
		form.Dwelling.EntryAccess = EntryAccess{
			StairsToEnter:  entry.Bool("stairsToEnter"),
			NumberOfSteps:  entry.String("numberOfSteps"),
			Handrails:      entry.Bool("handrails"),
			ElevatorAccess: entry.Bool("elevatorAccess"),
			Notes:          entry.String("notes"),
		}
	} else if entryDescription := layout.String("entryDescription"); entryDescription != "" {
		form.Dwelling.EntryAccess = extractEntryAccess(entryDescription)
	}

	form.Dwelling.OtherOccupants = m.mapOccupants(layout["occupants"])
	if len(form.Dwelling.OtherOccupants) == 0 {
		form.Dwelling.OtherOccupants = m.mapOccupants(layout["otherOccupants"])
	}
}

// relationshipWords recognizes a bare relation as an occupant fragment.
var relationshipWords = map[string]bool{
	"spouse": true, "wife": true, "husband": true, "partner": true,
	"daughter": true, "son": true, "child": true,
	"mother": true, "father": true, "parent": true,
	"sibling": true, "sister": true, "brother": true,
	"caregiver": true, "aide": true, "friend": true, "roommate": true,
}

// mapOccupants accepts either a structured occupant array or a free-form
// string and converts each entry to the canonical occupant shape. IDs are
// preserved when present and generated otherwise.
func (m *Mapper) mapOccupants(value interface{}) []Occupant {
	occupants := []Occupant{}

	switch v := value.(type) {
	case []interface{}:
		for _, item := range v {
			if entry, ok := assess.AsRecord(item); ok {
				occ := Occupant{
					ID:           entry.String("id"),
					Relationship: entry.String("relationship"),
					Age:          entry.String("age"),
					Notes:        entry.String("notes"),
				}
				if occ.ID == "" {
					occ.ID = m.ids.NewID()
				}
				occupants = append(occupants, occ)
			} else if s := strings.TrimSpace(assess.Stringify(item)); s != "" {
				occupants = append(occupants, m.occupantFromText(s))
			}
		}
	case string:
		for _, fragment := range assess.SplitFragments(v) {
			occupants = append(occupants, m.occupantFromText(fragment))
		}
	}

	return occupants
}

func (m *Mapper) occupantFromText(text string) Occupant {
	occ := Occupant{ID: m.ids.NewID()}
	if relationshipWords[strings.ToLower(strings.TrimSpace(text))] {
		occ.Relationship = strings.TrimSpace(text)
	} else {
		occ.Notes = text
	}
	return occ
}

// mapSafety is a direct field-for-field copy; no heuristics.
func mapSafety(section assess.Record, form *Form) {
	form.SafetyAssessment = SafetyAssessment{
		GeneralSafety:     section.String("generalSafety"),
		BedroomSafety:     section.String("bedroomSafety"),
		BathroomSafety:    section.String("bathroomSafety"),
		KitchenSafety:     section.String("kitchenSafety"),
		StairsSafety:      section.String("stairsSafety"),
		ExteriorSafety:    section.String("exteriorSafety"),
		NighttimeSafety:   section.String("nighttimeSafety"),
		EmergencyPlanning: section.String("emergencyPlanning"),
	}
}

func (m *Mapper) mapIssues(ctx assess.Record, form *Form) {
	raw := ctx["accessibilityIssues"]

	if section, ok := assess.AsRecord(raw); ok {
		if items := section.Slice("issues"); items != nil {
			for _, item := range items {
				entry, ok := assess.AsRecord(item)
				if !ok {
					continue
				}
				issue := Issue{
					ID:              entry.String("id"),
					Area:            entry.String("area"),
					Description:     entry.String("description"),
					ImpactLevel:     entry.String("impactLevel"),
					Recommendations: entry.StringList("recommendations"),
				}
				if issue.ID == "" {
					issue.ID = m.ids.NewID()
				}
				if issue.ImpactLevel == "" {
					issue.ImpactLevel = ImpactModerate
				}
				form.AccessibilityIssues.Issues = append(form.AccessibilityIssues.Issues, issue)
			}
			return
		}
		if text := section.String("issues"); text != "" {
			form.AccessibilityIssues.Issues = append(form.AccessibilityIssues.Issues, parseIssues(text, m.ids.NewID)...)
		}
		return
	}

	// Unstructured: a bare string or a sequence of strings.
	for _, text := range unstructuredTexts(raw) {
		form.AccessibilityIssues.Issues = append(form.AccessibilityIssues.Issues, parseIssues(text, m.ids.NewID)...)
	}
}

func (m *Mapper) mapEquipment(ctx assess.Record, form *Form) {
	raw := ctx["adaptiveEquipment"]

	if section, ok := assess.AsRecord(raw); ok {
		if items := section.Slice("equipment"); items != nil {
			for _, item := range items {
				entry, ok := assess.AsRecord(item)
				if !ok {
					continue
				}
				eq := Equipment{
					ID:            entry.String("id"),
					Name:          entry.String("name"),
					Type:          entry.String("type"),
					Location:      entry.String("location"),
					Usage:         entry.String("usage"),
					Effectiveness: entry.String("effectiveness"),
				}
				if eq.ID == "" {
					eq.ID = m.ids.NewID()
				}
				form.AdaptiveEquipment.Equipment = append(form.AdaptiveEquipment.Equipment, eq)
			}
			return
		}
		if text := section.String("equipment"); text != "" {
			form.AdaptiveEquipment.Equipment = append(form.AdaptiveEquipment.Equipment, parseEquipment(text, m.ids.NewID)...)
		}
		return
	}

	for _, text := range unstructuredTexts(raw) {
		form.AdaptiveEquipment.Equipment = append(form.AdaptiveEquipment.Equipment, parseEquipment(text, m.ids.NewID)...)
	}
}

func (m *Mapper) mapModifications(ctx assess.Record, form *Form) {
	raw := ctx["recommendedModifications"]

	if section, ok := assess.AsRecord(raw); ok {
		if items := section.Slice("modifications"); items != nil {
			for _, item := range items {
				entry, ok := assess.AsRecord(item)
				if !ok {
					continue
				}
				mod := Modification{
					ID:          entry.String("id"),
					Area:        entry.String("area"),
					Description: entry.String("description"),
					Priority:    entry.String("priority"),
					Cost:        entry.String("cost"),
					Status:      entry.String("status"),
				}
				if mod.ID == "" {
					mod.ID = m.ids.NewID()
				}
				if mod.Priority == "" {
					mod.Priority = PriorityMedium
				}
				if mod.Status == "" {
					mod.Status = StatusRecommended
				}
				form.RecommendedModifications.Modifications = append(form.RecommendedModifications.Modifications, mod)
			}
			return
		}
		if text := section.String("modifications"); text != "" {
			form.RecommendedModifications.Modifications = append(form.RecommendedModifications.Modifications, parseModifications(text, m.ids.NewID)...)
		}
		return
	}

	for _, text := range unstructuredTexts(raw) {
		form.RecommendedModifications.Modifications = append(form.RecommendedModifications.Modifications, parseModifications(text, m.ids.NewID)...)
	}
}

// unstructuredTexts normalizes a bare string or a sequence of strings to a
// list of free-text values. Anything else yields nothing.
func unstructuredTexts(value interface{}) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []interface{}:
		var texts []string
		for _, item := range v {
			if s := strings.TrimSpace(assess.Stringify(item)); s != "" {
				texts = append(texts, s)
			}
		}
		return texts
	default:
		return nil
	}
}
