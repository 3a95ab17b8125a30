package assess

import "encoding/json"

// ExportJSON renders a context record as indented JSON suitable for file
// download. Returns "" when the record cannot be serialized.
func ExportJSON(record Record) string {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// ImportJSON parses a previously exported context record. Returns nil when
// the input is not a valid JSON object.
func ImportJSON(data string) Record {
	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil
	}
	return record
}
