package finance

import (
	"fmt"
	"math"
	"strings"
)

// Period is a number of compounding periods per year.
type Period int

const (
	Annual     Period = 1
	Semiannual Period = 2
	Quarterly  Period = 4
	Monthly    Period = 12
)

var periods = []Period{Annual, Semiannual, Quarterly, Monthly}

func (p Period) String() string {
	switch p {
	case Annual:
		return "annual"
	case Semiannual:
		return "semiannual"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	}
	return fmt.Sprintf("period(%d)", int(p))
}

// ParsePeriod accepts a period name or its count of periods per year.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annual", "yearly", "1":
		return Annual, nil
	case "semiannual", "2":
		return Semiannual, nil
	case "quarterly", "4":
		return Quarterly, nil
	case "monthly", "12":
		return Monthly, nil
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

// ConvertRate converts a rate compounded per period from into the
// equivalent rate compounded per period to.
func ConvertRate(rate float64, from, to Period, dec int) float64 {
	if rate == 0 {
		return 0
	}
	if from == to {
		return rate
	}
	return Round(math.Pow(1+rate, float64(from)/float64(to))-1, dec)
}

// Conversion is a fixed (from, to) pair of the conversion table.
type Conversion struct {
	From Period
	To   Period
}

func (c Conversion) Apply(rate float64, dec int) float64 {
	return ConvertRate(rate, c.From, c.To, dec)
}

func (c Conversion) String() string {
	return c.From.String() + "->" + c.To.String()
}

type conversionKey struct{ from, to Period }

var conversions = buildConversions()

func buildConversions() map[conversionKey]Conversion {
	table := make(map[conversionKey]Conversion, len(periods)*(len(periods)-1))
	for _, from := range periods {
		for _, to := range periods {
			if from == to {
				continue
			}
			table[conversionKey{from, to}] = Conversion{From: from, To: to}
		}
	}
	return table
}

// LookupConversion returns the table entry converting from into to.
func LookupConversion(from, to Period) (Conversion, bool) {
	c, ok := conversions[conversionKey{from, to}]
	return c, ok
}

// Conversions lists every entry of the conversion table, ordered by source
// then target period.
func Conversions() []Conversion {
	out := make([]Conversion, 0, len(conversions))
	for _, from := range periods {
		for _, to := range periods {
			if c, ok := conversions[conversionKey{from, to}]; ok {
				out = append(out, c)
			}
		}
	}
	return out
}
