package environmental

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/careassess/careassess/internal/platform/assess"
)

var (
	bedroomPattern  = regexp.MustCompile(`(\d+)\s*bedroom`)
	bathroomPattern = regexp.MustCompile(`(\d+)\s*bathroom`)
	stepsPattern    = regexp.MustCompile(`(\d+)\s*step`)
)

// otherRoomLabels is scanned in this fixed order; each matched keyword adds
// its canonical label to rooms.other.
var otherRoomLabels = []struct {
	keyword string
	label   string
}{
	{"dining room", "Dining Room"},
	{"living room", "Living Room"},
	{"family room", "Family Room"},
	{"den", "Den"},
	{"office", "Office"},
	{"basement", "Basement"},
}

// extractRooms infers room counts from a free-text dwelling description.
func extractRooms(description string) Rooms {
	lower := strings.ToLower(description)
	rooms := Rooms{Other: []string{}}

	if m := bedroomPattern.FindStringSubmatch(lower); m != nil {
		rooms.Bedrooms, _ = strconv.Atoi(m[1])
	}
	if m := bathroomPattern.FindStringSubmatch(lower); m != nil {
		rooms.Bathrooms, _ = strconv.Atoi(m[1])
	}
	if strings.Contains(lower, "kitchen") {
		rooms.Kitchens = 1
	}

	for _, room := range otherRoomLabels {
		if strings.Contains(lower, room.keyword) {
			rooms.Other = append(rooms.Other, room.label)
		}
	}

	return rooms
}

// extractEntryAccess infers entry-access facts from a free-text entry
// description. The full original text is kept verbatim in notes.
func extractEntryAccess(text string) EntryAccess {
	lower := strings.ToLower(text)

	entry := EntryAccess{
		StairsToEnter:  assess.ContainsAny(lower, "stair", "step", "flight"),
		Handrails:      assess.ContainsAny(lower, "handrail", "railing"),
		ElevatorAccess: assess.ContainsAny(lower, "elevator", "lift"),
		Notes:          text,
	}
	if m := stepsPattern.FindStringSubmatch(lower); m != nil {
		entry.NumberOfSteps = m[1]
	}
	return entry
}

// issueAreas is checked in order; the first keyword match buckets the
// sentence into that area.
var issueAreas = []struct {
	keyword string
	area    string
}{
	{"bathroom", "Bathroom"},
	{"bedroom", "Bedroom"},
	{"kitchen", "Kitchen"},
	{"stair", "Stairs"},
	{"entry", "Entry"},
}

// parseIssues synthesizes structured accessibility issues from free text,
// one issue per sentence.
func parseIssues(text string, ids func() string) []Issue {
	issues := []Issue{}
	for _, sentence := range assess.SplitSentences(text) {
		area := "General"
		for _, candidate := range issueAreas {
			if assess.ContainsAny(sentence, candidate.keyword) {
				area = candidate.area
				break
			}
		}

		impact := ImpactModerate
		if assess.ContainsAny(sentence, "severe", "major", "serious") {
			impact = ImpactSevere
		} else if assess.ContainsAny(sentence, "minor", "slight", "mild") {
			impact = ImpactMild
		}

		issues = append(issues, Issue{
			ID:              ids(),
			Area:            area,
			Description:     sentence,
			ImpactLevel:     impact,
			Recommendations: []string{},
		})
	}
	return issues
}

// parseEquipment synthesizes equipment entries from free text, classifying
// type and location per fragment by keyword.
func parseEquipment(text string, ids func() string) []Equipment {
	equipment := []Equipment{}
	for _, fragment := range assess.SplitFragments(text) {
		eqType, location := "Other", ""
		switch {
		case assess.ContainsAny(fragment, "shower", "grab bar"):
			eqType, location = "Bathroom Safety", "Bathroom"
		case assess.ContainsAny(fragment, "walker", "cane", "wheelchair"):
			eqType, location = "Mobility Aid", "Throughout home"
		case assess.ContainsAny(fragment, "reacher", "gripper"):
			eqType = "Reaching Aid"
		case assess.ContainsAny(fragment, "kitchen"):
			eqType, location = "Kitchen Aid", "Kitchen"
		}

		equipment = append(equipment, Equipment{
			ID:            ids(),
			Name:          fragment,
			Type:          eqType,
			Location:      location,
			Usage:         "Daily",
			Effectiveness: "Effective",
		})
	}
	return equipment
}

// parseModifications synthesizes modification entries from free text.
func parseModifications(text string, ids func() string) []Modification {
	modifications := []Modification{}
	for _, fragment := range assess.SplitFragments(text) {
		area := "General"
		for _, candidate := range issueAreas {
			if assess.ContainsAny(fragment, candidate.keyword) {
				area = candidate.area
				break
			}
		}

		priority := PriorityMedium
		if assess.ContainsAny(fragment, "urgent", "immediate", "critical") {
			priority = PriorityHigh
		} else if assess.ContainsAny(fragment, "consider", "future", "optional") {
			priority = PriorityLow
		}

		modifications = append(modifications, Modification{
			ID:          ids(),
			Area:        area,
			Description: fragment,
			Priority:    priority,
			Status:      StatusRecommended,
		})
	}
	return modifications
}
