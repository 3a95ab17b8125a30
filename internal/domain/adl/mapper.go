package adl

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/careassess/careassess/internal/platform/assess"
)

// activityNames fixes the set and order of tracked activities; it drives
// both mapping directions and the pipeline section names.
var activityNames = []string{"bathing", "dressing", "toileting", "transfers", "feeding", "grooming"}

// Mapper converts between untyped context records and the fixed-shape ADL
// form. It holds no state between calls.
type Mapper struct {
	logger zerolog.Logger
}

func NewMapper(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger}
}

// MapResult is the outcome of a context→form mapping. HasData is true iff
// the context contained a recognized ADL section.
type MapResult struct {
	Form    *Form `json:"form"`
	HasData bool  `json:"has_data"`
}

// MapContextToForm maps an arbitrary, possibly partial context record onto
// a fully shaped ADL form. Each activity maps in its own pipeline section
// so one malformed entry cannot abort the rest.
func (m *Mapper) MapContextToForm(ctx assess.Record) MapResult {
	form := DefaultForm()
	if len(ctx) == 0 {
		return MapResult{Form: form}
	}

	if !ctx.Has("activitiesOfDailyLiving", "adl") {
		return MapResult{Form: form}
	}

	section := ctx.Section("activitiesOfDailyLiving")
	if section == nil {
		section = ctx.Section("adl")
	}
	if section == nil {
		// Recognized key with a malformed payload; report data present
		// and leave the form at defaults.
		return MapResult{Form: form, HasData: true}
	}

	p := assess.NewPipeline(m.logger)
	sections := make([]assess.Section, 0, len(activityNames))
	for _, name := range activityNames {
		name := name
		sections = append(sections, assess.Section{Name: name, Run: func() error {
			*form.activity(name) = mapActivity(section[name])
			return nil
		}})
	}
	p.Run(sections...)

	return MapResult{Form: form, HasData: true}
}

// activity returns the addressable form slot for a named activity.
func (f *Form) activity(name string) *Activity {
	switch name {
	case "bathing":
		return &f.Bathing
	case "dressing":
		return &f.Dressing
	case "toileting":
		return &f.Toileting
	case "transfers":
		return &f.Transfers
	case "feeding":
		return &f.Feeding
	case "grooming":
		return &f.Grooming
	default:
		return &Activity{}
	}
}

// mapActivity accepts either a structured activity record or a free-text
// description. Structured entries are normalized through the independence
// cascade; free text additionally goes through notes extraction,
// qualitative inference and an equipment keyword scan.
func mapActivity(value interface{}) Activity {
	activity := defaultActivity()

	if entry, ok := assess.AsRecord(value); ok {
		activity.IndependenceLevel = MapIndependenceLevel(entry.String("independenceLevel", "level"))
		activity.Equipment = entry.StringList("equipment")
		activity.Notes = entry.String("notes")
		return activity
	}

	text := strings.TrimSpace(assess.Stringify(value))
	if text == "" {
		return activity
	}

	level := MapIndependenceLevel(text)
	if level == LevelNotApplicable {
		level = InferIndependenceFromText(text)
	}
	activity.IndependenceLevel = level
	activity.Notes = ExtractNotes(text)
	activity.Equipment = ScanEquipment(text)
	return activity
}

// MapFormToContext is the symmetric reshape: pure restructuring, no
// heuristics. A nil form is logged and mapped as the default form.
func (m *Mapper) MapFormToContext(form *Form) assess.Record {
	if form == nil {
		m.logger.Warn().Msg("mapping nil adl form, substituting defaults")
		form = DefaultForm()
	}

	section := assess.Record{}
	for _, name := range activityNames {
		activity := form.activity(name)
		equipment := activity.Equipment
		if equipment == nil {
			equipment = []string{}
		}
		section[name] = map[string]interface{}{
			"independenceLevel": activity.IndependenceLevel,
			"equipment":         equipment,
			"notes":             activity.Notes,
		}
	}

	return assess.Record{"activitiesOfDailyLiving": section}
}
