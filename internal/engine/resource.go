package engine

import (
	"sort"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

// authResource is the fixed identity every authentication-flavored path
// collapses into, regardless of where it lives in the path tree.
const authResource = "authentication"

// resourceRule is one predicate-resolver pair. Rules run in order and the
// first one that fires wins, which keeps the precedence between the auth
// special case, the /api/<resource> shape, and the tag fallback explicit.
type resourceRule func(path string, item *spec.PathItem) (string, bool)

var resourceRules = []resourceRule{
	resolveAuthMarker,
	resolveRootSegment,
	resolveFirstTag,
}

// Resource maps a path to the logical resource identity it belongs to.
// The identity is a lowercase dash-or-word-separated string ("tasks",
// "habit-entries", "authentication"). Empty means the path is unroutable
// and belongs to no resource.
func Resource(path string, s *spec.Schema) string {
	var item *spec.PathItem
	if s != nil {
		item = s.Paths[path]
	}
	for _, rule := range resourceRules {
		if id, ok := rule(path, item); ok {
			return id
		}
	}
	return ""
}

// resolveAuthMarker routes any path with an auth segment, or a final
// login/token segment, into the authentication resource. Intentionally
// broad: it fires even for otherwise well-shaped resource paths that
// happen to carry these tokens.
func resolveAuthMarker(path string, _ *spec.PathItem) (string, bool) {
	segs := splitPath(path)
	for _, sg := range segs {
		if sg == "auth" {
			return authResource, true
		}
	}
	if n := len(segs); n > 0 {
		switch segs[n-1] {
		case "login", "token":
			return authResource, true
		}
	}
	return "", false
}

// resolveRootSegment extracts the first segment after the api root:
// /api/tasks/{id} -> "tasks". The segment keeps its original lowercase
// dash form. A parameter directly after the root does not qualify.
func resolveRootSegment(path string, _ *spec.PathItem) (string, bool) {
	segs := splitPath(path)
	for i, sg := range segs {
		if sg == apiRootSegment && i+1 < len(segs) && !isParam(segs[i+1]) {
			return segs[i+1], true
		}
	}
	return "", false
}

// resolveFirstTag scans the path item's operations in verb-priority order
// and adopts the first non-empty tag, normalized to dash form.
func resolveFirstTag(_ string, item *spec.PathItem) (string, bool) {
	if item == nil {
		return "", false
	}
	for _, v := range spec.OperationVerbs {
		if op := item.Operation(v); op != nil && len(op.Tags) > 0 {
			if id := dashed(op.Tags[0]); id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// ExtractResources computes the set of distinct non-empty resource
// identities over every path in the schema, sorted.
func ExtractResources(s *spec.Schema) []string {
	set := make(map[string]struct{})
	for path := range s.Paths {
		if id := Resource(path, s); id != "" {
			set[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ResourcePaths returns every path whose resolved identity equals the given
// one, sorted lexicographically by path string so output never depends on
// map iteration order.
func ResourcePaths(identity string, s *spec.Schema) []string {
	var out []string
	for path := range s.Paths {
		if Resource(path, s) == identity {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}
