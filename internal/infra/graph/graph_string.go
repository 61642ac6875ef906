package graph

import (
	"encoding/json"

	"adchecker/internal/errors"
)

// graphString decodes a JSON string or number into its string form.
// Graph reports ids and amounts as strings but some fields arrive as numbers.
type graphString string

func (s *graphString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return errors.Wrap(err, "invalid string value")
		}
		*s = graphString(v)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "expected string or number")
	}
	*s = graphString(n.String())

	return nil
}

func (s *graphString) value() string {
	if s == nil {
		return ""
	}

	return string(*s)
}
