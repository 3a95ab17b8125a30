package environmental

import (
	"time"

	"github.com/google/uuid"

	"github.com/careassess/careassess/internal/platform/assess"
)

// Impact levels for accessibility issues.
const (
	ImpactMild     = "mild"
	ImpactModerate = "moderate"
	ImpactSevere   = "severe"
)

// Priorities for recommended modifications.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StatusRecommended is the default status for a newly mapped modification.
const StatusRecommended = "recommended"

// Form is the fixed-shape environmental assessment record the form UI
// binds to. Every section is present after mapping; lists are never nil.
type Form struct {
	Dwelling                 Dwelling                 `json:"dwelling"`
	SafetyAssessment         SafetyAssessment         `json:"safetyAssessment"`
	AccessibilityIssues      AccessibilityIssues      `json:"accessibilityIssues"`
	AdaptiveEquipment        AdaptiveEquipment        `json:"adaptiveEquipment"`
	RecommendedModifications RecommendedModifications `json:"recommendedModifications"`
}

type Dwelling struct {
	Type           string      `json:"type"`
	Ownership      string      `json:"ownership"`
	Levels         string      `json:"levels"`
	Rooms          Rooms       `json:"rooms"`
	Layout         string      `json:"layout"`
	EntryAccess    EntryAccess `json:"entryAccess"`
	OtherOccupants []Occupant  `json:"otherOccupants"`
}

type Rooms struct {
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Kitchens  int      `json:"kitchens"`
	Other     []string `json:"other"`
}

type EntryAccess struct {
	StairsToEnter  bool   `json:"stairsToEnter"`
	NumberOfSteps  string `json:"numberOfSteps"`
	Handrails      bool   `json:"handrails"`
	ElevatorAccess bool   `json:"elevatorAccess"`
	Notes          string `json:"notes"`
}

type Occupant struct {
	ID           string `json:"id"`
	Relationship string `json:"relationship"`
	Age          string `json:"age"`
	Notes        string `json:"notes"`
}

type SafetyAssessment struct {
	GeneralSafety     string `json:"generalSafety"`
	BedroomSafety     string `json:"bedroomSafety"`
	BathroomSafety    string `json:"bathroomSafety"`
	KitchenSafety     string `json:"kitchenSafety"`
	StairsSafety      string `json:"stairsSafety"`
	ExteriorSafety    string `json:"exteriorSafety"`
	NighttimeSafety   string `json:"nighttimeSafety"`
	EmergencyPlanning string `json:"emergencyPlanning"`
}

type AccessibilityIssues struct {
	Issues []Issue `json:"issues"`
}

type Issue struct {
	ID              string   `json:"id"`
	Area            string   `json:"area"`
	Description     string   `json:"description"`
	ImpactLevel     string   `json:"impactLevel"`
	Recommendations []string `json:"recommendations"`
}

type AdaptiveEquipment struct {
	Equipment []Equipment `json:"equipment"`
}

type Equipment struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Location      string `json:"location"`
	Usage         string `json:"usage"`
	Effectiveness string `json:"effectiveness"`
}

type RecommendedModifications struct {
	Modifications []Modification `json:"modifications"`
}

type Modification struct {
	ID          string `json:"id"`
	Area        string `json:"area"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Cost        string `json:"cost"`
	Status      string `json:"status"`
}

// DefaultForm returns a fresh, fully shaped form: numeric fields 0,
// strings "", booleans false, lists empty (never nil).
func DefaultForm() *Form {
	return &Form{
		Dwelling: Dwelling{
			Rooms:          Rooms{Other: []string{}},
			OtherOccupants: []Occupant{},
		},
		AccessibilityIssues:      AccessibilityIssues{Issues: []Issue{}},
		AdaptiveEquipment:        AdaptiveEquipment{Equipment: []Equipment{}},
		RecommendedModifications: RecommendedModifications{Modifications: []Modification{}},
	}
}

// Assessment maps to the environmental_assessment table. The context column
// stores the raw context record as jsonb.
type Assessment struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	ClientID  uuid.UUID     `db:"client_id" json:"client_id"`
	Context   assess.Record `db:"context" json:"context"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}
