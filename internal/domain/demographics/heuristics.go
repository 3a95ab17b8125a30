package demographics

import (
	"regexp"
	"strings"
)

// splitName breaks a full name string into first/middle/last. One word is
// a first name, two are first and last, anything longer keeps the interior
// words as the middle name.
func splitName(full string) Name {
	parts := strings.Fields(strings.TrimSpace(full))
	switch len(parts) {
	case 0:
		return Name{}
	case 1:
		return Name{First: parts[0]}
	case 2:
		return Name{First: parts[0], Last: parts[1]}
	default:
		return Name{
			First:  parts[0],
			Middle: strings.Join(parts[1:len(parts)-1], " "),
			Last:   parts[len(parts)-1],
		}
	}
}

var phonePattern = regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

// extractPhone returns the first phone-shaped number in the text and the
// text with that number removed.
func extractPhone(text string) (phone, rest string) {
	phone = phonePattern.FindString(text)
	if phone == "" {
		return "", text
	}
	rest = strings.TrimSpace(strings.Replace(text, phone, "", 1))
	return phone, strings.Trim(rest, " ,-")
}

// relationshipWords recognizes a relation mentioned in an emergency
// contact fragment.
var relationshipWords = map[string]bool{
	"spouse": true, "wife": true, "husband": true, "partner": true,
	"daughter": true, "son": true, "child": true,
	"mother": true, "father": true, "parent": true,
	"sibling": true, "sister": true, "brother": true,
	"caregiver": true, "aide": true, "friend": true, "neighbor": true,
}

// contactFromText converts a free-text fragment ("Daughter Mary
// 555-123-4567") into an emergency contact: the phone number is pulled
// out, a leading relation word becomes the relationship, and whatever
// remains becomes the name. Fragments that fit no pattern land in notes.
func contactFromText(text, id string) EmergencyContact {
	contact := EmergencyContact{ID: id}
	phone, rest := extractPhone(text)
	contact.Phone = phone

	words := strings.Fields(rest)
	if len(words) > 0 && relationshipWords[strings.ToLower(words[0])] {
		contact.Relationship = words[0]
		contact.Name = strings.Join(words[1:], " ")
		return contact
	}
	if len(words) > 0 && relationshipWords[strings.ToLower(words[len(words)-1])] {
		contact.Relationship = words[len(words)-1]
		contact.Name = strings.Join(words[:len(words)-1], " ")
		return contact
	}
	contact.Notes = rest
	return contact
}
