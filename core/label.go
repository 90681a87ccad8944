package core

import (
	"strings"
	"unicode/utf8"

	"github.com/huangsam/dashviz/schema"
)

// RoleLabel turns a role identifier such as "ui_ux_designer" into "Ui Ux Designer".
// Every separator-delimited token gets its first character upper-cased; empty tokens
// are kept, so "a__b" becomes "A  B".
func RoleLabel(key string) string {
	tokens := strings.Split(key, schema.RoleSeparator)
	for i, tok := range tokens {
		tokens[i] = capitalizeFirst(tok)
	}
	return strings.Join(tokens, " ")
}

// capitalizeFirst upper-cases the first character and leaves the rest untouched.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
