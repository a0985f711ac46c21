package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageList ensures image fields can be decoded whether stored as a single
// URL string or an array of URLs.
type ImageList []string

// UnmarshalJSON accepts both string and array values, allowing legacy
// documents to be decoded without failing the entire collection.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var values []string
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return err
		}
		*l = values
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}

		value = strings.TrimSpace(value)
		if value == "" {
			*l = ImageList{}
			return nil
		}

		*l = ImageList{value}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into ImageList", string(trimmed))
	}
}

// MarshalJSON always emits an array, keeping new writes consistent even
// when legacy documents used a string value.
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
