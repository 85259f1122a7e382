// Package jsonutil contains JSON helpers for loosely-typed persisted blobs.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexFloat decodes JSON numbers that may also appear as numeric strings in
// older persisted blobs. Anything that cannot be interpreted as a number
// decodes to 0 rather than failing the whole collection.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			*f = FlexFloat(parsed)
			return nil
		}
	}

	*f = 0
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
