package demographics

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careassess/careassess/internal/platform/assess"
)

func newTestMapper() *Mapper {
	return NewMapper(&assess.SequenceGenerator{Prefix: "contact"}, zerolog.Nop())
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

func TestMapContextToForm_StructuredIdentity(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"identity": map[string]interface{}{
			"name":        map[string]interface{}{"first": "Ruth", "last": "Okafor"},
			"dateOfBirth": "1943-05-12",
			"gender":      "female",
		},
	})

	if !result.HasData {
		t.Fatal("expected has_data=true")
	}
	if result.Form.Name != (Name{First: "Ruth", Last: "Okafor"}) {
		t.Errorf("name = %+v", result.Form.Name)
	}
	if result.Form.DateOfBirth != "1943-05-12" {
		t.Errorf("dateOfBirth = %q", result.Form.DateOfBirth)
	}
	if result.Form.Gender != "female" {
		t.Errorf("gender = %q", result.Form.Gender)
	}
}

func TestMapContextToForm_FullNameString(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"demographics": map[string]interface{}{
			"name": "Ruth Amara Okafor",
			"dob":  "1943-05-12",
		},
	})

	want := Name{First: "Ruth", Middle: "Amara", Last: "Okafor"}
	if result.Form.Name != want {
		t.Errorf("name = %+v, want %+v", result.Form.Name, want)
	}
	if result.Form.DateOfBirth != "1943-05-12" {
		t.Errorf("dateOfBirth = %q", result.Form.DateOfBirth)
	}
}

func TestMapContextToForm_ContactAliases(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"contactInfo": map[string]interface{}{
			"phoneNumber": "555-867-5309",
			"street":      "14 Maple Ave",
			"zip":         "04401",
		},
	})

	if !result.HasData {
		t.Fatal("expected has_data=true")
	}
	if result.Form.Contact.Phone != "555-867-5309" {
		t.Errorf("phone = %q", result.Form.Contact.Phone)
	}
	if result.Form.Contact.Address != "14 Maple Ave" {
		t.Errorf("address = %q", result.Form.Contact.Address)
	}
	if result.Form.Contact.PostalCode != "04401" {
		t.Errorf("postalCode = %q", result.Form.Contact.PostalCode)
	}
}

func TestMapContextToForm_EmergencyContactsStructured(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"emergencyContacts": []interface{}{
			map[string]interface{}{
				"id":           "existing-1",
				"name":         "Mary Okafor",
				"relationship": "daughter",
				"phone":        "555-123-4567",
			},
			map[string]interface{}{"name": "Joe Okafor"},
		},
	})

	contacts := result.Form.EmergencyContacts
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].ID != "existing-1" {
		t.Errorf("expected preserved id, got %q", contacts[0].ID)
	}
	if contacts[1].ID != "contact-1" {
		t.Errorf("expected generated id, got %q", contacts[1].ID)
	}
}

func TestMapContextToForm_EmergencyContactsFromString(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"emergencyContacts": "Daughter Mary 555-123-4567; neighbor checks in daily",
	})

	contacts := result.Form.EmergencyContacts
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Relationship != "Daughter" || contacts[0].Name != "Mary" || contacts[0].Phone != "555-123-4567" {
		t.Errorf("first contact = %+v", contacts[0])
	}
	if contacts[1].Relationship != "neighbor" || contacts[1].Name != "checks in daily" {
		t.Errorf("second contact = %+v", contacts[1])
	}
}

func TestMapContextToForm_MalformedIdentityIsolated(t *testing.T) {
	m := newTestMapper()
	result := m.MapContextToForm(assess.Record{
		"identity":    "not an object",
		"contactInfo": map[string]interface{}{"phone": "555-000-1111"},
	})

	if result.Form.Name != (Name{}) {
		t.Errorf("expected default name, got %+v", result.Form.Name)
	}
	if result.Form.Contact.Phone != "555-000-1111" {
		t.Errorf("phone = %q", result.Form.Contact.Phone)
	}
}

func TestRoundTrip_StructuredForm(t *testing.T) {
	m := newTestMapper()

	form := DefaultForm()
	form.Name = Name{First: "Ruth", Last: "Okafor"}
	form.DateOfBirth = "1943-05-12"
	form.Contact.Phone = "555-867-5309"
	form.EmergencyContacts = []EmergencyContact{
		{ID: "contact-9", Name: "Mary Okafor", Relationship: "daughter", Phone: "555-123-4567"},
	}

	result := m.MapContextToForm(m.MapFormToContext(form))
	if !reflect.DeepEqual(result.Form, form) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", result.Form, form)
	}
}

func TestMapFormToContext_NilForm(t *testing.T) {
	m := newTestMapper()
	ctx := m.MapFormToContext(nil)

	if ctx.Section("identity") == nil || ctx.Section("contact") == nil {
		t.Fatalf("expected fully structured context, got %v", ctx)
	}
	if ctx["emergencyContacts"] == nil {
		t.Error("expected non-nil emergencyContacts")
	}
}
