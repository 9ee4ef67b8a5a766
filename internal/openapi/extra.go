package openapi

import "encoding/json"

// extractExtra re-decodes raw into a flat map and keeps only the "x-"
// prefixed keys, preserving vendor extensions the loader would otherwise
// drop. It never fails: a raw payload that isn't a JSON object (shouldn't
// happen for a conformant document) yields an empty map.
func extractExtra(raw []byte) map[string]json.RawMessage {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil
	}
	extra := make(map[string]json.RawMessage)
	for k, v := range flat {
		if len(k) >= 2 && k[0] == 'x' && k[1] == '-' {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

// UnmarshalJSON decodes the known Document fields normally, then captures
// any "x-" extension keys into Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Document(a)
	d.Extra = extractExtra(data)
	return nil
}

// MarshalJSON re-emits the known fields plus any preserved "x-" extensions.
func (d Document) MarshalJSON() ([]byte, error) {
	type alias Document
	base, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, d.Extra)
}

// UnmarshalJSON decodes the known PartialDocument fields, then captures any
// "x-" extension keys into Extra.
func (d *PartialDocument) UnmarshalJSON(data []byte) error {
	type alias PartialDocument
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = PartialDocument(a)
	d.Extra = extractExtra(data)
	return nil
}

// MarshalJSON re-emits the known fields plus any preserved "x-" extensions.
func (d PartialDocument) MarshalJSON() ([]byte, error) {
	type alias PartialDocument
	base, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, d.Extra)
}

// mergeExtra splices extra's keys into the object encoded in base.
func mergeExtra(base []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(base, &flat); err != nil {
		return nil, err
	}
	for k, v := range extra {
		flat[k] = v
	}
	return json.Marshal(flat)
}
