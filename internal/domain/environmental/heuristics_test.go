package environmental

import (
	"reflect"
	"testing"

	"github.com/careassess/careassess/internal/platform/assess"
)

func testIDs() func() string {
	gen := &assess.SequenceGenerator{Prefix: "id"}
	return gen.NewID
}

func TestExtractRooms(t *testing.T) {
	cases := []struct {
		description string
		want        Rooms
	}{
		{
			"A 3 bedroom, 2 bathroom house with kitchen and living room.",
			Rooms{Bedrooms: 3, Bathrooms: 2, Kitchens: 1, Other: []string{"Living Room"}},
		},
		{
			"Small 1 bedroom apartment",
			Rooms{Bedrooms: 1, Other: []string{}},
		},
		{
			"Ranch with dining room, den, office and finished basement",
			Rooms{Other: []string{"Dining Room", "Den", "Office", "Basement"}},
		},
		{
			"",
			Rooms{Other: []string{}},
		},
	}

	for _, tc := range cases {
		if got := extractRooms(tc.description); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("extractRooms(%q) = %+v, want %+v", tc.description, got, tc.want)
		}
	}
}

func TestExtractRooms_CheckOrderPreserved(t *testing.T) {
	got := extractRooms("basement office den family room living room dining room")
	want := []string{"Dining Room", "Living Room", "Family Room", "Den", "Office", "Basement"}
	if !reflect.DeepEqual(got.Other, want) {
		t.Errorf("other rooms = %v, want fixed check order %v", got.Other, want)
	}
}

func TestExtractEntryAccess(t *testing.T) {
	text := "Entry has 5 steps with a handrail on the left side."
	got := extractEntryAccess(text)
	want := EntryAccess{
		StairsToEnter: true,
		NumberOfSteps: "5",
		Handrails:     true,
		Notes:         text,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractEntryAccess = %+v, want %+v", got, want)
	}
}

func TestExtractEntryAccess_ElevatorNoSteps(t *testing.T) {
	got := extractEntryAccess("Elevator access from the lobby")
	if got.StairsToEnter {
		t.Error("expected stairsToEnter=false")
	}
	if !got.ElevatorAccess {
		t.Error("expected elevatorAccess=true")
	}
	if got.NumberOfSteps != "" {
		t.Errorf("expected empty numberOfSteps, got %q", got.NumberOfSteps)
	}
}

func TestParseIssues(t *testing.T) {
	issues := parseIssues("Severe clutter on the stairs. Minor gap at the entry threshold.", testIDs())
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}

	if issues[0].Area != "Stairs" || issues[0].ImpactLevel != ImpactSevere {
		t.Errorf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Area != "Entry" || issues[1].ImpactLevel != ImpactMild {
		t.Errorf("unexpected second issue: %+v", issues[1])
	}
	if issues[0].ID == issues[1].ID {
		t.Error("expected unique ids")
	}
	if issues[0].Recommendations == nil {
		t.Error("expected non-nil recommendations")
	}
}

func TestParseEquipment(t *testing.T) {
	equipment := parseEquipment("Shower chair, walker for long distances; reacher, kitchen stool. TV remote", testIDs())
	if len(equipment) != 5 {
		t.Fatalf("expected 5 entries, got %+v", equipment)
	}

	cases := []struct {
		idx      int
		eqType   string
		location string
	}{
		{0, "Bathroom Safety", "Bathroom"},
		{1, "Mobility Aid", "Throughout home"},
		{2, "Reaching Aid", ""},
		{3, "Kitchen Aid", "Kitchen"},
		{4, "Other", ""},
	}
	for _, tc := range cases {
		if equipment[tc.idx].Type != tc.eqType || equipment[tc.idx].Location != tc.location {
			t.Errorf("entry %d = %+v, want type=%s location=%s",
				tc.idx, equipment[tc.idx], tc.eqType, tc.location)
		}
	}

	if equipment[0].Usage != "Daily" || equipment[0].Effectiveness != "Effective" {
		t.Errorf("expected Daily/Effective defaults, got %+v", equipment[0])
	}
}

func TestParseModifications(t *testing.T) {
	mods := parseModifications("Urgent grab bar install in bathroom; consider stair lift in future. Repaint hallway", testIDs())
	if len(mods) != 3 {
		t.Fatalf("expected 3 entries, got %+v", mods)
	}

	if mods[0].Area != "Bathroom" || mods[0].Priority != PriorityHigh {
		t.Errorf("unexpected first modification: %+v", mods[0])
	}
	if mods[1].Area != "Stairs" || mods[1].Priority != PriorityLow {
		t.Errorf("unexpected second modification: %+v", mods[1])
	}
	if mods[2].Area != "General" || mods[2].Priority != PriorityMedium {
		t.Errorf("unexpected third modification: %+v", mods[2])
	}
	if mods[0].Status != StatusRecommended {
		t.Errorf("expected recommended status, got %s", mods[0].Status)
	}
}

func TestParseHeuristics_EmptyInput(t *testing.T) {
	if got := parseIssues("", testIDs()); len(got) != 0 {
		t.Errorf("expected no issues for empty text, got %+v", got)
	}
	if got := parseEquipment("   ", testIDs()); len(got) != 0 {
		t.Errorf("expected no equipment for blank text, got %+v", got)
	}
	if got := parseModifications("...", testIDs()); len(got) != 0 {
		t.Errorf("expected no modifications for punctuation-only text, got %+v", got)
	}
}
