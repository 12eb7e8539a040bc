package branch

import (
	"github.com/tidwall/gjson"
)

// HasField matches a raw JSON input against a field-path key. The clause
// whose path exists in the document is selected:
//
//	branch.DoFunc(raw, []branch.Clause[string]{
//	    branch.On("Records.0.sns", handleSNS),
//	    branch.On("detail-type", handleEventBridge),
//	}, handleUnknown, branch.HasField)
//
// Paths use gjson syntax ("a.b", "items.0.id"). Invalid JSON matches
// nothing.
func HasField(raw []byte, path string) bool {
	return gjson.GetBytes(raw, path).Exists()
}

// Field is a path/value key for FieldEquals.
type Field struct {
	Path, Value string
}

// FieldEquals matches a raw JSON input when the key's path exists, holds
// a string, and equals the key's value:
//
//	branch.When(branch.Field{Path: "type", Value: "user/created"}, onboard)
func FieldEquals(raw []byte, key Field) bool {
	r := gjson.GetBytes(raw, key.Path)
	if r.Type != gjson.String {
		return false
	}
	return r.String() == key.Value
}
