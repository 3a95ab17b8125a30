// Package demographics maps client demographics context records to the
// fixed-shape demographics form and back: name, date of birth, contact
// details and emergency contacts.
package demographics

import (
	"time"

	"github.com/google/uuid"

	"github.com/careassess/careassess/internal/platform/assess"
)

type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

type Contact struct {
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

// Form is the shape the demographics form UI binds to.
type Form struct {
	Name              Name               `json:"name"`
	DateOfBirth       string             `json:"dateOfBirth"`
	Gender            string             `json:"gender"`
	Contact           Contact            `json:"contact"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

// DefaultForm returns the empty form with a non-nil contact list.
func DefaultForm() *Form {
	return &Form{EmergencyContacts: []EmergencyContact{}}
}

// Profile is a stored demographics record row.
type Profile struct {
	ID        uuid.UUID     `json:"id"`
	ClientID  uuid.UUID     `json:"client_id"`
	Context   assess.Record `json:"context"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
