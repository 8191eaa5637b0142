package engine

import "github.com/Habityzer/nuxt-openapi-composables/internal/spec"

// Methods yields the operations declared under a path item, in declared key
// order, filtered to the recognized verb set. Metadata keys (shared
// parameters) and the rarely-emitted head/options/trace operations never
// appear in the output.
func Methods(item *spec.PathItem) []spec.Verb {
	if item == nil {
		return nil
	}
	var out []spec.Verb
	for _, e := range item.Entries {
		if e.Op != nil && spec.IsOperationVerb(e.Key) {
			out = append(out, spec.Verb(e.Key))
		}
	}
	return out
}
