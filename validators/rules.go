package validators

import (
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/leodido/go-urn"

	"github.com/michaelolof/fieldrules/utils"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+1\d{10}$`)
)

// Characters accepted by the symbol rule.
const symbolChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

// Predicates receive a param already checked against the rule's ParamKind,
// so count and number conversions below cannot fail.

// Checks that the value holds at least one letter, one digit and nothing else.
func IsAlphaNumeric(val, _ string) bool {
	return utils.AllAlphaNumeric(val) && utils.HasDigit(val) && utils.HasLetter(val)
}

func IsEmail(val, _ string) bool {
	return emailRegex.MatchString(val)
}

// IsLength checks that the value has exactly param characters.
func IsLength(val, param string) bool {
	n, _ := utils.ParseCount(param)
	return utils.RuneLen(val) == n
}

// IsFloat checks for digits, a decimal point and exactly param fractional digits.
func IsFloat(val, param string) bool {
	n, _ := utils.ParseCount(param)
	whole, frac, ok := strings.Cut(val, ".")
	if !ok || !utils.AllDigits(whole) || len(frac) != n {
		return false
	}
	return n == 0 || utils.AllDigits(frac)
}

// IsGreater compares the numeric value of the input with param.
// A value that is not a number never passes.
func IsGreater(val, param string) bool {
	limit, _ := utils.ParseNumber(param)
	v, err := utils.ParseNumber(val)
	return err == nil && v > limit
}

func IsLess(val, param string) bool {
	limit, _ := utils.ParseNumber(param)
	v, err := utils.ParseNumber(val)
	return err == nil && v < limit
}

func HasInt(val, _ string) bool {
	return utils.HasDigit(val)
}

// IsOneOf checks that the value equals one of the comma separated tokens in param.
func IsOneOf(val, param string) bool {
	return slices.Contains(utils.SplitList(param, ","), val)
}

func HasLower(val, _ string) bool {
	return utils.HasLower(val)
}

func HasUpper(val, _ string) bool {
	return utils.HasUpper(val)
}

func IsMixedCase(val, _ string) bool {
	return utils.HasLower(val) && utils.HasUpper(val)
}

// IsMatch compares the value with param. A param of the form "label|other"
// carries another field's value, and only the part after the pipe is compared.
func IsMatch(val, param string) bool {
	if _, other, ok := strings.Cut(param, "|"); ok {
		return val == other
	}
	return val == param
}

func IsMaxLength(val, param string) bool {
	n, _ := utils.ParseCount(param)
	return utils.RuneLen(val) <= n
}

func IsMinLength(val, param string) bool {
	n, _ := utils.ParseCount(param)
	return utils.RuneLen(val) >= n
}

func IsNumeric(val, _ string) bool {
	return utils.AllDigits(val)
}

// IsPhone accepts North American numbers written as +1 followed by 10 digits.
func IsPhone(val, _ string) bool {
	return phoneRegex.MatchString(val)
}

func IsRequired(val, _ string) bool {
	return !utils.IsBlank(val)
}

func HasSymbol(val, _ string) bool {
	return strings.ContainsAny(val, symbolChars)
}

// IsUUID only accepts the hyphenated 8-4-4-4-12 form, in any letter case.
func IsUUID(val, _ string) bool {
	if len(val) != 36 {
		return false
	}
	_, err := uuid.Parse(val)
	return err == nil
}

// Checks whether a value is a URN as described by RFC 2141.
func IsUrnRFC2141(val, _ string) bool {
	_, ok := urn.Parse([]byte(val))
	return ok
}

// Validates if the value is an absolute url with a scheme and a host.
func IsURL(val, _ string) bool {
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Validates if the value is a v4 or v6 ip address.
func IsIP(val, _ string) bool {
	return net.ParseIP(val) != nil
}
