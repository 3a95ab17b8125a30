// Package adl maps activities-of-daily-living context records to the
// fixed-shape ADL form and back. Each of the six tracked activities
// carries an independence level on the standard 8-level scale, an
// equipment list and free-text notes.
package adl

import (
	"time"

	"github.com/google/uuid"

	"github.com/careassess/careassess/internal/platform/assess"
)

// Independence levels, ordered from full independence to full dependence.
const (
	LevelIndependent         = "independent"
	LevelModifiedIndependent = "modified_independent"
	LevelSupervision         = "supervision"
	LevelMinimalAssistance   = "minimal_assistance"
	LevelModerateAssistance  = "moderate_assistance"
	LevelMaximalAssistance   = "maximal_assistance"
	LevelTotalAssistance     = "total_assistance"
	LevelNotApplicable       = "not_applicable"
)

// Activity is the per-activity slice of the form.
type Activity struct {
	IndependenceLevel string   `json:"independenceLevel"`
	Equipment         []string `json:"equipment"`
	Notes             string   `json:"notes"`
}

// Form is the shape the ADL form UI binds to.
type Form struct {
	Bathing   Activity `json:"bathing"`
	Dressing  Activity `json:"dressing"`
	Toileting Activity `json:"toileting"`
	Transfers Activity `json:"transfers"`
	Feeding   Activity `json:"feeding"`
	Grooming  Activity `json:"grooming"`
}

func defaultActivity() Activity {
	return Activity{Equipment: []string{}}
}

// DefaultForm returns the empty form with non-nil equipment lists so the
// UI always binds against complete structure.
func DefaultForm() *Form {
	return &Form{
		Bathing:   defaultActivity(),
		Dressing:  defaultActivity(),
		Toileting: defaultActivity(),
		Transfers: defaultActivity(),
		Feeding:   defaultActivity(),
		Grooming:  defaultActivity(),
	}
}

// Assessment is a stored ADL assessment row.
type Assessment struct {
	ID        uuid.UUID     `json:"id"`
	ClientID  uuid.UUID     `json:"client_id"`
	Context   assess.Record `json:"context"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
