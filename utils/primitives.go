package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	errNotNumber = errors.New("value is not a number")
	errNotCount  = errors.New("value is not a non-negative integer")
)

// ParseNumber converts a rule parameter or field value into a finite float64.
// Only plain decimals such as "12", "-0.5" or "+3." are accepted; hex floats,
// exponents and digit separators are not.
func ParseNumber(val string) (float64, error) {
	if !isDecimal(val) {
		return math.NaN(), errors.Wrapf(errNotNumber, "%q", val)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return math.NaN(), errors.Wrapf(errNotNumber, "%q", val)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), errors.Wrapf(errNotNumber, "%q", val)
	}
	return v, nil
}

// isDecimal matches an optional sign, digits and an optional fraction, with
// at least one digit overall.
func isDecimal(val string) bool {
	if val != "" && (val[0] == '+' || val[0] == '-') {
		val = val[1:]
	}
	whole, frac, _ := strings.Cut(val, ".")
	if whole == "" && frac == "" {
		return false
	}
	return allASCIIDigits(whole) && allASCIIDigits(frac)
}

func allASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseCount converts a length or precision parameter into an int.
func ParseCount(val string) (int, error) {
	v, err := strconv.Atoi(val)
	if err != nil || v < 0 {
		return 0, errors.Wrapf(errNotCount, "%q", val)
	}
	return v, nil
}

func IsNumber(val string) bool {
	_, err := ParseNumber(val)
	return err == nil
}

func IsCount(val string) bool {
	_, err := ParseCount(val)
	return err == nil
}

// IsInteger reports whether val is a plain decimal integer such as "0" or "12".
// Used to spot positional keys in rule documents.
func IsInteger(val string) bool {
	return val != "" && allASCIIDigits(val)
}
