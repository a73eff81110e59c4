package finance

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ToNumber converts v to a float64. Numbers pass through; strings may use a
// comma as decimal separator and contain spaces. Anything else is NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		return parseNumber(x)
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.Replace(s, ",", ".", 1)
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.NaN()
	}
	return d.InexactFloat64()
}
