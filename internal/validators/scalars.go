package validators

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const numberGrammar = `[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`

var (
	// numericString accepts the whole string as a number, surrounding
	// whitespace allowed.
	numericString = regexp.MustCompile(`^\s*` + numberGrammar + `\s*$`)

	// numericPrefix finds the leading number of a string, as used when a
	// string is coerced to a number ("12abc" -> 12, "abc" -> 0).
	numericPrefix = regexp.MustCompile(`^\s*(` + numberGrammar + `)`)

	integerPrefix = regexp.MustCompile(`^\s*([+-]?[0-9]+)`)
)

// isNumeric reports whether v is a JSON number or a numeric string that
// fits a finite float64.
func isNumeric(v any) bool {
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case json.Number:
		return finiteNumber(x.String())
	case int, int32, int64:
		return true
	case string:
		return finiteNumber(x)
	default:
		return false
	}
}

// finiteNumber reports whether s is a number that does not overflow float64.
func finiteNumber(s string) bool {
	if !numericString.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// toFloat coerces a scalar to float64. Strings contribute their leading
// numeric prefix and anything unparsable is 0.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case json.Number:
		return prefixFloat(x.String())
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return prefixFloat(x)
	default:
		return 0
	}
}

// toInt coerces a scalar to int64, truncating toward zero.
func toInt(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case json.Number:
		return prefixInt(x.String())
	case string:
		return prefixInt(x)
	default:
		return truncate(toFloat(v))
	}
}

// toString returns the string form of a scalar; ok is false for objects,
// arrays and null.
func toString(v any) (s string, ok bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		if x {
			return "1", true
		}
		return "", true
	default:
		return "", false
	}
}

func prefixFloat(s string) float64 {
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	// on overflow ParseFloat returns ±Inf along with the error
	f, _ := strconv.ParseFloat(m[1], 64)
	return f
}

func prefixInt(s string) int64 {
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	if !strings.ContainsAny(m[1], ".eE") {
		if im := integerPrefix.FindStringSubmatch(s); im != nil {
			if i, err := strconv.ParseInt(im[1], 10, 64); err == nil {
				return i
			}
		}
	}
	return truncate(prefixFloat(s))
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
