// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a percentage value between 0 and 100, held with a precision of
// two decimal places.
type Percent float64

func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f*100) / 100)
}

// Of returns value as a percentage of total. value is clamped to [0…total];
// a non-positive total results in 0%.
func Of(value, total float64) Percent {
	if total <= 0 || math.IsNaN(total) {
		return Percent(0)
	}
	return FromFloat(value / total * 100)
}

// FromString parses strings like "42", "42.5" or "42 %".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Percent(0), err
	}
	return FromFloat(f), nil
}

func (p Percent) Float() float64 {
	return float64(p)
}

// Number returns the percentage without a trailing percent sign, e.g. "42.5".
func (p Percent) Number() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

func (p Percent) String() string {
	return p.Number() + "%"
}
