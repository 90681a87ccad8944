package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/dashviz/schema"
	"github.com/tidwall/gjson"
)

// Parse errors reported on the error channel.
var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNullScores  = errors.New("cannot enumerate null role scores")
)

// maxArrayIndex is the largest property name that enumerates as an array index.
const maxArrayIndex = math.MaxUint32 - 1

// scoreEntry is one raw key/value pair before coercion.
type scoreEntry struct {
	key   string
	value gjson.Result
}

// ParseRoleScores decodes the role-score attribute into labelled, coerced entries.
// Entries follow the page's enumeration order: array-index keys first in ascending
// numeric order, then every other key in insertion order. Duplicate keys keep their
// first position and their last value.
func ParseRoleScores(raw string) ([]schema.RoleScore, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w in role scores: %s", ErrInvalidJSON, snippet(raw))
	}

	doc := gjson.Parse(raw)
	var entries []scoreEntry
	switch {
	case doc.Type == gjson.Null:
		return nil, ErrNullScores
	case doc.IsObject():
		entries = objectEntries(doc)
	case doc.IsArray():
		for i, v := range doc.Array() {
			entries = append(entries, scoreEntry{key: strconv.Itoa(i), value: v})
		}
	case doc.Type == gjson.String:
		i := 0
		for _, r := range doc.Str {
			entries = append(entries, scoreEntry{key: strconv.Itoa(i), value: gjson.Result{Type: gjson.String, Str: string(r)}})
			i++
		}
	}

	scores := make([]schema.RoleScore, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, schema.RoleScore{
			Key:   e.key,
			Label: RoleLabel(e.key),
			Value: coerceScore(e.value),
		})
	}
	return scores, nil
}

// objectEntries collects object members in enumeration order.
func objectEntries(doc gjson.Result) []scoreEntry {
	var entries []scoreEntry
	pos := make(map[string]int)
	doc.ForEach(func(k, v gjson.Result) bool {
		if i, seen := pos[k.Str]; seen {
			entries[i].value = v
			return true
		}
		pos[k.Str] = len(entries)
		entries = append(entries, scoreEntry{key: k.Str, value: v})
		return true
	})

	var indexed, named []scoreEntry
	for _, e := range entries {
		if _, ok := arrayIndex(e.key); ok {
			indexed = append(indexed, e)
		} else {
			named = append(named, e)
		}
	}
	slices.SortStableFunc(indexed, func(a, b scoreEntry) int {
		ia, _ := arrayIndex(a.key)
		ib, _ := arrayIndex(b.key)
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		default:
			return 0
		}
	})
	return append(indexed, named...)
}

// arrayIndex reports whether key is a canonical array index and returns its value.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil || n > maxArrayIndex {
		return 0, false
	}
	return n, true
}

// coerceScore maps any JSON value to a plottable number; missing or falsy values become 0.
func coerceScore(v gjson.Result) float64 {
	switch v.Type {
	case gjson.Number:
		return finiteOrZero(v.Num)
	case gjson.True:
		return 1
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// snippet shortens raw attribute text for log messages.
func snippet(raw string) string {
	const maxLen = 40
	r := []rune(raw)
	if len(r) <= maxLen {
		return strconv.Quote(raw)
	}
	return strconv.Quote(string(r[:maxLen]) + "...")
}
