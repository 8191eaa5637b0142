package engine

import (
	"strconv"
	"strings"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

// Candidate pairs one (path, verb) operation with a method name.
type Candidate struct {
	Path string
	Verb spec.Verb
	Name string
}

// namePrefixes are the verb-like prefixes candidate names start with, in
// match order. A disambiguating segment is inserted right after the
// matched prefix.
var namePrefixes = []string{"get", "create", "delete", "patch", "put"}

// Uniquify resolves name collisions over one emitted unit's candidate set,
// guaranteeing injectivity. Input order is significant and must be
// path-then-declared-verb order; the result preserves it.
//
// Names occurring exactly once are claimed as-is in a first pass. Every
// duplicated name is then rewritten: first semantically, by walking the
// path's segments from the end (skipping the api root and parameters) and
// inserting the first usable segment after the verb prefix; then, when
// every such form is taken, by numeric suffix. Rerunning over the same
// ordered input reproduces the same final names.
func Uniquify(candidates []Candidate) []Candidate {
	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.Name]++
	}

	claimed := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if counts[c.Name] == 1 {
			claimed[c.Name] = true
		}
	}

	out := make([]Candidate, len(candidates))
	for i, c := range candidates {
		if counts[c.Name] == 1 {
			out[i] = c
			continue
		}
		out[i] = Candidate{Path: c.Path, Verb: c.Verb, Name: disambiguate(c, claimed)}
	}
	return out
}

func disambiguate(c Candidate, claimed map[string]bool) string {
	prefix, rest := splitNamePrefix(c.Name)
	segs := splitPath(c.Path)
	for i := len(segs) - 1; i >= 0; i-- {
		sg := segs[i]
		if sg == apiRootSegment || isParam(sg) {
			continue
		}
		var name string
		if prefix != "" {
			name = prefix + Format(sg) + rest
		} else {
			name = lowerFirst(Format(sg)) + upperFirst(c.Name)
		}
		if !claimed[name] {
			claimed[name] = true
			return name
		}
	}
	for n := 1; ; n++ {
		name := c.Name + strconv.Itoa(n)
		if !claimed[name] {
			claimed[name] = true
			return name
		}
	}
}

func splitNamePrefix(name string) (prefix, rest string) {
	for _, p := range namePrefixes {
		if strings.HasPrefix(name, p) {
			return p, name[len(p):]
		}
	}
	return "", ""
}
