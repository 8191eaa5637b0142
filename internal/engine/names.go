package engine

import "github.com/Habityzer/nuxt-openapi-composables/internal/spec"

// Synthesize produces the candidate method name for one (path, verb) pair,
// before collision resolution. Names are camelCase and follow the
// composable conventions:
//
//	get  /api/tasks               -> getTasks
//	post /api/tasks               -> createTask
//	get  /api/tasks/{id}          -> getTask
//	patch /api/tasks/{id}         -> patchTask
//	get  /api/stats/{entityType}  -> getStatsByEntityType
//	get  /api/habits/{id}/streak  -> streakHabit
//
// A path with no resolvable resource falls back to the bare verb string.
func Synthesize(path string, verb spec.Verb, s *spec.Schema) string {
	identity := Resource(path, s)
	if identity == "" {
		return string(verb)
	}
	base := Format(identity)

	segs := splitPath(path)
	hasParams, idPath := false, false
	firstParam := ""
	for _, sg := range segs {
		if !isParam(sg) {
			continue
		}
		hasParams = true
		if firstParam == "" {
			firstParam = paramName(sg)
		}
		if paramName(sg) == idToken {
			idPath = true
		}
	}

	// Actions always attach to the resource name, whatever the cardinality.
	if action := actionSegment(segs); action != "" {
		name := lowerFirst(Format(action))
		if idPath {
			return name + singular(base)
		}
		return name + base
	}

	switch {
	case !hasParams:
		// Pure collection path: list-returning GET and item-creating POST
		// must read differently even though both act on the same base.
		if verb == spec.GET {
			return "get" + base
		}
		if verb == spec.POST {
			return "create" + singular(base)
		}
		return verbPrefix(verb) + base
	case idPath:
		return verbPrefix(verb) + singular(base)
	default:
		// Keyed by a custom field rather than {id}: qualify the lookup so it
		// cannot be mistaken for an identifier-keyed one.
		return verbPrefix(verb) + base + "By" + Format(firstParam)
	}
}

// verbPrefix maps a verb to the leading prefix of the names it produces.
// POST creates, everything else keeps its verb.
func verbPrefix(v spec.Verb) string {
	if v == spec.POST {
		return "create"
	}
	return string(v)
}

// actionSegment reports a trailing literal segment that is neither the api
// root, a parameter, nor the resource segment itself: "streak" in
// /api/habits/{id}/streak. This is a heuristic; a resource root whose last
// segment merely looks like an action word will be misread.
func actionSegment(segs []string) string {
	if len(segs) < 2 {
		return ""
	}
	last := segs[len(segs)-1]
	if isParam(last) || last == apiRootSegment {
		return ""
	}
	resIdx := 0
	for i, sg := range segs {
		if sg == apiRootSegment && i+1 < len(segs) {
			resIdx = i + 1
			break
		}
	}
	if len(segs)-1 == resIdx {
		return ""
	}
	return last
}
