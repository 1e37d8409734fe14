package models

import (
	"bytes"
	"encoding/json"
)

// Truthy decodes any JSON value into its truthiness. ViaCEP has answered
// unknown codes with both `"erro": true` and `"erro": "true"`.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = false
		return nil
	}

	switch data[0] {
	case 'n':
		*t = false
	case 't':
		*t = true
	case 'f':
		*t = false
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = s != ""
	case '{', '[':
		*t = true
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = n != 0
	}
	return nil
}
