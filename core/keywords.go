package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/dashviz/schema"
	"github.com/tidwall/gjson"
)

// ParseKeywords decodes the keyword attribute.
// Invalid JSON is an error; any valid value that is not an array yields an empty list.
// Non-string elements are converted to text the way the page's script would.
func ParseKeywords(raw string) ([]string, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w in keywords: %s", ErrInvalidJSON, snippet(raw))
	}

	doc := gjson.Parse(raw)
	if !doc.IsArray() {
		return nil, nil
	}

	items := doc.Array()
	words := make([]string, 0, len(items))
	for _, item := range items {
		words = append(words, jsText(item))
	}
	return words, nil
}

// WeightKeywords pairs each keyword with weight (N - index) + offset, so the first
// keyword is the heaviest and each following one is lighter by exactly 1.
func WeightKeywords(words []string) []schema.WeightedKeyword {
	n := len(words)
	out := make([]schema.WeightedKeyword, n)
	for i, w := range words {
		out[i] = schema.WeightedKeyword{Text: w, Weight: (n - i) + schema.KeywordWeightOffset}
	}
	return out
}

// jsText converts a JSON value to its string form.
func jsText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return jsNumber(v.Num)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return "null"
	}

	if v.IsArray() {
		items := v.Array()
		parts := make([]string, len(items))
		for i, item := range items {
			// Array joins render null as an empty string.
			if item.Type != gjson.Null {
				parts[i] = jsText(item)
			}
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}

// jsNumber formats a float in shortest round-trip form, switching to exponent
// notation outside [1e-6, 1e21).
func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
