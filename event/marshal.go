package event

import "encoding/json"

// marshalTagged marshals v normally, then injects a "type" key carrying the
// variant's stable snake_case tag.
func marshalTagged(tag string, v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	tagged, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	fields["type"] = tagged
	return json.Marshal(fields)
}
