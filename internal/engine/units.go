package engine

import (
	"errors"
	"sort"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

// ErrNoResources signals a schema in which no path resolves to any
// resource. Generation has nothing to do and must stop.
var ErrNoResources = errors.New("no resources found")

// Method is one generated operation record, the durable output of the
// whole pipeline.
type Method struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	HTTPVerb    spec.Verb `json:"httpVerb"`
	ContentType string    `json:"contentType"`
}

// Unit is one emitted output artifact: the methods of every resource whose
// identity formats to the same output name.
type Unit struct {
	Name      string   `json:"name"`
	Resources []string `json:"resources"`
	Methods   []Method `json:"methods"`
}

// Units partitions the schema into emitted units, sorted by unit name.
// Resources whose identities canonicalize to the same formatted name (say
// "habit-entries" and "habit_entries") land in one unit and share one
// collision-resolution pass. Returns ErrNoResources when nothing routes.
func Units(s *spec.Schema) ([]Unit, error) {
	resources := ExtractResources(s)
	if len(resources) == 0 {
		return nil, ErrNoResources
	}

	groups := make(map[string][]string)
	for _, r := range resources {
		key := Format(r)
		groups[key] = append(groups[key], r)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	units := make([]Unit, 0, len(names))
	for _, name := range names {
		units = append(units, BuildUnit(name, groups[name], s))
	}
	return units, nil
}

// UnitFor assembles the unit for one explicitly requested resource
// identity. An identity with no matching paths yields a unit with no
// methods, not an error; callers decide whether that is worth reporting.
func UnitFor(identity string, s *spec.Schema) Unit {
	return BuildUnit(Format(identity), []string{identity}, s)
}

// BuildUnit runs the full candidate pipeline over the member resources:
// enumerate operations in path-then-declared-verb order, synthesize
// candidate names, resolve collisions once over the combined set, then
// attach negotiated content types.
func BuildUnit(name string, resources []string, s *spec.Schema) Unit {
	members := append([]string(nil), resources...)
	sort.Strings(members)

	var candidates []Candidate
	for _, r := range members {
		for _, path := range ResourcePaths(r, s) {
			for _, verb := range Methods(s.Paths[path]) {
				candidates = append(candidates, Candidate{
					Path: path,
					Verb: verb,
					Name: Synthesize(path, verb, s),
				})
			}
		}
	}

	final := Uniquify(candidates)
	methods := make([]Method, 0, len(final))
	for _, c := range final {
		methods = append(methods, Method{
			Name:        c.Name,
			Path:        c.Path,
			HTTPVerb:    c.Verb,
			ContentType: Negotiate(c.Path, c.Verb, s),
		})
	}
	return Unit{Name: name, Resources: members, Methods: methods}
}
