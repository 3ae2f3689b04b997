package identity

import "encoding/json"

// wireID is the persisted shape of an ID. Bytes use the standard base64
// encoding applied by encoding/json to byte slices.
type wireID struct {
	Bytes  []byte `json:"bytes"`
	Stable *bool  `json:"isStable,omitempty"`
}

// MarshalJSON encodes the ID as {"bytes": ..., "isStable": ...}.
func (id ID) MarshalJSON() ([]byte, error) {
	stable := id.Stable
	return json.Marshal(wireID{Bytes: id.Bytes, Stable: &stable})
}

// UnmarshalJSON decodes the persisted shape. Records written before the
// stability flag existed omit it; those IDs were always treated as stable,
// so a missing isStable field defaults to true.
func (id *ID) UnmarshalJSON(data []byte) error {
	var w wireID
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id.Bytes = w.Bytes
	if w.Stable == nil {
		id.Stable = true
	} else {
		id.Stable = *w.Stable
	}
	return nil
}
