package adl

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careassess/careassess/internal/platform/assess"
)

func newTestMapper() *Mapper {
	return NewMapper(zerolog.Nop())
}

func TestMapContextToForm_EmptyContext(t *testing.T) {
	m := newTestMapper()

	for _, ctx := range []assess.Record{nil, {}} {
		result := m.MapContextToForm(ctx)
		if result.HasData {
			t.Error("expected has_data=false for empty context")
		}
		if !reflect.DeepEqual(result.Form, DefaultForm()) {
			t.Errorf("expected default form, got %+v", result.Form)
		}
	}
}

func TestMapContextToForm_UnrecognizedSectionsOnly(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{"somethingElse": map[string]interface{}{"x": 1}})
	if result.HasData {
		t.Error("expected has_data=false for unrecognized sections")
	}
}

func TestMapContextToForm_StructuredActivities(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"activitiesOfDailyLiving": map[string]interface{}{
			"bathing": map[string]interface{}{
				"independenceLevel": "Modified Independent - uses shower chair",
				"equipment":         []interface{}{"Shower chair"},
				"notes":             "prefers evening showers",
			},
			"feeding": map[string]interface{}{
				"independenceLevel": "independent",
			},
		},
	})

	if !result.HasData {
		t.Fatal("expected has_data=true")
	}
	if result.Form.Bathing.IndependenceLevel != LevelModifiedIndependent {
		t.Errorf("bathing level = %q", result.Form.Bathing.IndependenceLevel)
	}
	if !reflect.DeepEqual(result.Form.Bathing.Equipment, []string{"Shower chair"}) {
		t.Errorf("bathing equipment = %v", result.Form.Bathing.Equipment)
	}
	if result.Form.Bathing.Notes != "prefers evening showers" {
		t.Errorf("bathing notes = %q", result.Form.Bathing.Notes)
	}
	if result.Form.Feeding.IndependenceLevel != LevelIndependent {
		t.Errorf("feeding level = %q", result.Form.Feeding.IndependenceLevel)
	}
	// Untouched activities keep their defaults.
	if result.Form.Grooming.IndependenceLevel != "" || len(result.Form.Grooming.Equipment) != 0 {
		t.Errorf("grooming should be default, got %+v", result.Form.Grooming)
	}
}

func TestMapContextToForm_FreeTextActivities(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"adl": map[string]interface{}{
			"dressing":  "Needs assistance: buttons and zippers",
			"transfers": "Unable to transfer without a sliding board",
			"feeding":   "Eats well with built-up utensils",
		},
	})

	if !result.HasData {
		t.Fatal("expected has_data=true")
	}
	if result.Form.Dressing.IndependenceLevel != LevelMinimalAssistance {
		t.Errorf("dressing level = %q", result.Form.Dressing.IndependenceLevel)
	}
	if result.Form.Dressing.Notes != "buttons and zippers" {
		t.Errorf("dressing notes = %q", result.Form.Dressing.Notes)
	}
	if result.Form.Transfers.IndependenceLevel != LevelTotalAssistance {
		t.Errorf("transfers level = %q", result.Form.Transfers.IndependenceLevel)
	}
	if result.Form.Feeding.IndependenceLevel != LevelIndependent {
		t.Errorf("feeding level = %q", result.Form.Feeding.IndependenceLevel)
	}
	if !reflect.DeepEqual(result.Form.Feeding.Equipment, []string{"Built-up utensils"}) {
		t.Errorf("feeding equipment = %v", result.Form.Feeding.Equipment)
	}
}

func TestMapContextToForm_MalformedActivityIsolated(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"activitiesOfDailyLiving": map[string]interface{}{
			"bathing":  []interface{}{"not", "a", "record"},
			"grooming": "Independent with electric razor",
		},
	})

	if !reflect.DeepEqual(result.Form.Bathing, defaultActivity()) {
		t.Errorf("malformed bathing should map to default, got %+v", result.Form.Bathing)
	}
	if result.Form.Grooming.IndependenceLevel != LevelIndependent {
		t.Errorf("grooming level = %q", result.Form.Grooming.IndependenceLevel)
	}
	if result.Form.Grooming.Notes != "electric razor" {
		t.Errorf("grooming notes = %q", result.Form.Grooming.Notes)
	}
}

func TestRoundTrip_StructuredForm(t *testing.T) {
	m := newTestMapper()

	form := DefaultForm()
	form.Bathing = Activity{IndependenceLevel: LevelMinimalAssistance, Equipment: []string{"Grab bars"}, Notes: "uses tub bench"}
	form.Toileting = Activity{IndependenceLevel: LevelSupervision, Equipment: []string{}, Notes: ""}

	ctx := m.MapFormToContext(form)
	result := m.MapContextToForm(ctx)

	if !reflect.DeepEqual(result.Form, &Form{
		Bathing:   form.Bathing,
		Dressing:  Activity{IndependenceLevel: LevelNotApplicable, Equipment: []string{}},
		Toileting: form.Toileting,
		Transfers: Activity{IndependenceLevel: LevelNotApplicable, Equipment: []string{}},
		Feeding:   Activity{IndependenceLevel: LevelNotApplicable, Equipment: []string{}},
		Grooming:  Activity{IndependenceLevel: LevelNotApplicable, Equipment: []string{}},
	}) {
		t.Errorf("round-trip mismatch: %+v", result.Form)
	}
}

func TestMapFormToContext_NilForm(t *testing.T) {
	m := newTestMapper()
	ctx := m.MapFormToContext(nil)

	section := ctx.Section("activitiesOfDailyLiving")
	if section == nil {
		t.Fatal("expected activitiesOfDailyLiving section")
	}
	for _, name := range activityNames {
		entry := section.Section(name)
		if entry == nil {
			t.Fatalf("expected entry for %q", name)
		}
		if entry["equipment"] == nil {
			t.Errorf("expected non-nil equipment for %q", name)
		}
	}
}
