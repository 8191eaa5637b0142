// Package engine derives the resource grouping, method names, and content
// types that the composable emitter renders. All of it is pure computation
// over the immutable spec.Schema: the same schema always produces the same
// units, names, and orderings.
package engine

import (
	"strings"
	"unicode"
)

// Format normalizes a delimited or mixed-case string into one
// word-capitalized identifier: "user-limits", "user_limits", "userLimits"
// and "user limits" all become "UserLimits". Idempotent, total, and empty
// in means empty out.
func Format(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// splitWords inserts a boundary at every lowercase-to-uppercase transition,
// then splits on '-', '_' and whitespace, dropping empty tokens.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			flush()
			cur = append(cur, r)
			prevLower = false
		default:
			cur = append(cur, r)
			prevLower = unicode.IsLower(r)
		}
	}
	flush()
	return words
}

// capitalize uppercases the first rune. The remainder is lowercased only
// when the token carries a lowercase letter: an all-caps token ("AB", from
// single-letter words joined by a previous pass) is already a fixpoint, and
// re-splitting cannot recover its word boundaries.
func capitalize(w string) string {
	r := []rune(w)
	hasLower := false
	for _, c := range r {
		if unicode.IsLower(c) {
			hasLower = true
			break
		}
	}
	out := make([]rune, 0, len(r))
	out = append(out, unicode.ToUpper(r[0]))
	for _, c := range r[1:] {
		if hasLower {
			c = unicode.ToLower(c)
		}
		out = append(out, c)
	}
	return string(out)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// dashed lowercases a camel-or-space form into dash form, using the same
// word boundaries as Format: "HabitEntries" -> "habit-entries".
func dashed(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// singular strips a plural suffix from a formatted name: "Tasks" -> "Task",
// "Entries" -> "Entry". Names without a recognized plural pass through,
// as do -ss endings ("Access").
func singular(name string) string {
	switch {
	case len(name) > 3 && strings.HasSuffix(name, "ies"):
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "ss"):
		return name
	case len(name) > 1 && strings.HasSuffix(name, "s"):
		return name[:len(name)-1]
	default:
		return name
	}
}
