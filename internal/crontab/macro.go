package crontab

import (
	"sort"
	"strings"
)

// macros maps each supported shorthand to its five field tokens.
var macros = map[string][5]string{
	"@yearly":       {"0", "0", "1", "1", "*"},
	"@annually":     {"0", "0", "1", "1", "*"},
	"@monthly":      {"0", "0", "1", "*", "*"},
	"@weekly":       {"0", "0", "*", "*", "0"},
	"@daily":        {"0", "0", "*", "*", "*"},
	"@midnight":     {"0", "0", "*", "*", "*"},
	"@hourly":       {"0", "*", "*", "*", "*"},
	"@every_minute": {"*", "*", "*", "*", "*"},
}

// ExpandMacro replaces a leading known @name token with its field tokens.
// Unknown names and plain expressions are returned unchanged with ok false.
func ExpandMacro(tokens []string) (expanded []string, ok bool) {
	if len(tokens) == 0 || !strings.HasPrefix(tokens[0], "@") {
		return tokens, false
	}
	fields, ok := macros[tokens[0]]
	if !ok {
		return tokens, false
	}
	expanded = make([]string, 0, len(fields)+len(tokens)-1)
	expanded = append(expanded, fields[:]...)
	return append(expanded, tokens[1:]...), true
}

// Macros returns the supported macro names in sorted order.
func Macros() []string {
	names := make([]string, 0, len(macros))
	for name := range macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
