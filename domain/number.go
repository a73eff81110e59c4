package domain

import (
	"bytes"
	"encoding/json"
	"math"

	"loan-calculator/finance"
)

// Number is a numeric request field. It accepts JSON numbers and numeric
// strings such as "1 250,50"; anything unparseable decodes to NaN so the
// service can reject it in one place.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(finance.ToNumber(s))
		return nil
	}
	*n = Number(finance.ToNumber(json.Number(data)))
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// Valid reports whether n is a finite number.
func (n Number) Valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
