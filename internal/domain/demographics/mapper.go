package demographics

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/careassess/careassess/internal/platform/assess"
)

// Mapper converts between untyped context records and the fixed-shape
// demographics form. It holds no state between calls.
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
// a fully shaped demographics form. The input is never mutated; a failure
// in one section leaves it at its defaults.
func (m *Mapper) MapContextToForm(ctx assess.Record) MapResult {
	form := DefaultForm()
	if len(ctx) == 0 {
		return MapResult{Form: form}
	}

	hasData := false
	p := assess.NewPipeline(m.logger)
	p.Run(
		assess.Section{Name: "identity", Run: func() error {
			if ctx.Has("identity", "demographics") {
				hasData = true
				mapIdentity(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "contact", Run: func() error {
			if ctx.Has("contact", "contactInfo") {
				hasData = true
				mapContact(ctx, form)
			}
			return nil
		}},
		assess.Section{Name: "emergencyContacts", Run: func() error {
			if ctx.Has("emergencyContacts") {
				hasData = true
				m.mapEmergencyContacts(ctx["emergencyContacts"], form)
			}
			return nil
		}},
	)

	return MapResult{Form: form, HasData: hasData}
}

func mapIdentity(ctx assess.Record, form *Form) {
	identity := ctx.Section("identity")
	if identity == nil {
		identity = ctx.Section("demographics")
	}
	if identity == nil {
		return
	}

	// Name is dual-mode: a structured record or a bare full-name string.
	if name := identity.Section("name"); name != nil {
		form.Name = Name{
			First:  name.String("first", "firstName"),
			Middle: name.String("middle", "middleName"),
			Last:   name.String("last", "lastName"),
		}
	} else if full := identity.String("name", "fullName"); full != "" {
		form.Name = splitName(full)
	}

	form.DateOfBirth = identity.String("dateOfBirth", "dob", "birthDate")
	form.Gender = identity.String("gender", "sex")
}

func mapContact(ctx assess.Record, form *Form) {
	contact := ctx.Section("contact")
	if contact == nil {
		contact = ctx.Section("contactInfo")
	}
	if contact == nil {
		return
	}

	form.Contact = Contact{
		Phone:      contact.String("phone", "phoneNumber"),
		Email:      contact.String("email"),
		Address:    contact.String("address", "street"),
		City:       contact.String("city"),
		State:      contact.String("state"),
		PostalCode: contact.String("postalCode", "zip", "zipCode"),
	}
}

// mapEmergencyContacts accepts either a structured contact array or a
// free-form string and converts each entry to the canonical shape. IDs
// are preserved when present and generated otherwise.
func (m *Mapper) mapEmergencyContacts(value interface{}, form *Form) {
	switch v := value.(type) {
	case []interface{}:
		for _, item := range v {
			if entry, ok := assess.AsRecord(item); ok {
				contact := EmergencyContact{
					ID:           entry.String("id"),
					Name:         entry.String("name"),
					Relationship: entry.String("relationship"),
					Phone:        entry.String("phone", "phoneNumber"),
					Notes:        entry.String("notes"),
				}
				if contact.ID == "" {
					contact.ID = m.ids.NewID()
				}
				form.EmergencyContacts = append(form.EmergencyContacts, contact)
			} else if s := strings.TrimSpace(assess.Stringify(item)); s != "" {
				form.EmergencyContacts = append(form.EmergencyContacts, contactFromText(s, m.ids.NewID()))
			}
		}
	case string:
		for _, fragment := range assess.SplitFragments(v) {
			form.EmergencyContacts = append(form.EmergencyContacts, contactFromText(fragment, m.ids.NewID()))
		}
	}
}

// MapFormToContext is the symmetric reshape: pure restructuring, no
// heuristics, ids passed through. A nil form is logged and mapped as the
// default form.
func (m *Mapper) MapFormToContext(form *Form) assess.Record {
	if form == nil {
		m.logger.Warn().Msg("mapping nil demographics form, substituting defaults")
		form = DefaultForm()
	}

	contacts := make([]interface{}, 0, len(form.EmergencyContacts))
	for _, contact := range form.EmergencyContacts {
		contacts = append(contacts, map[string]interface{}{
			"id":           contact.ID,
			"name":         contact.Name,
			"relationship": contact.Relationship,
			"phone":        contact.Phone,
			"notes":        contact.Notes,
		})
	}

	return assess.Record{
		"identity": map[string]interface{}{
			"name": map[string]interface{}{
				"first":  form.Name.First,
				"middle": form.Name.Middle,
				"last":   form.Name.Last,
			},
			"dateOfBirth": form.DateOfBirth,
			"gender":      form.Gender,
		},
		"contact": map[string]interface{}{
			"phone":      form.Contact.Phone,
			"email":      form.Contact.Email,
			"address":    form.Contact.Address,
			"city":       form.Contact.City,
			"state":      form.Contact.State,
			"postalCode": form.Contact.PostalCode,
		},
		"emergencyContacts": contacts,
	}
}
