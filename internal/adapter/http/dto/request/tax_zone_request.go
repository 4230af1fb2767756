package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Rate accepts either a JSON number (8.25) or a string ("8.25", "8.25%").
// The raw text is kept so the use case can reject non-numeric input with a
// field error instead of a decode failure.
type Rate string

func (r *Rate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Rate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rate must be a number or string: %w", err)
	}
	*r = Rate(n.String())
	return nil
}

type TaxZoneRequest struct {
	Name string `json:"name"`
	Rate Rate   `json:"rate"`
}
