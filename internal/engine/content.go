package engine

import "github.com/Habityzer/nuxt-openapi-composables/internal/spec"

// MIME types the negotiator has opinions about.
const (
	MimeJSON       = "application/json"
	MimeJSONLD     = "application/ld+json"
	MimeMergePatch = "application/merge-patch+json"
)

// Negotiate selects the one MIME type used to frame payloads for a
// (path, verb) pair.
//
// Request bodies win over responses. PATCH takes merge-patch when the
// server advertises it, since partial-update semantics differ from full
// replacement. For 200 responses, collection GETs prefer the linked-data
// variant (listings carry pagination and filtering metadata there) while
// single-item and write operations prefer plain JSON. No signal at all
// means application/json.
func Negotiate(path string, verb spec.Verb, s *spec.Schema) string {
	var op *spec.Operation
	if s != nil {
		op = s.Paths[path].Operation(verb)
	}
	if op == nil {
		return MimeJSON
	}

	if len(op.RequestBody) > 0 {
		if verb == spec.PATCH && op.RequestBody.Has(MimeMergePatch) {
			return MimeMergePatch
		}
		if op.RequestBody.Has(MimeJSON) {
			return MimeJSON
		}
		if op.RequestBody.Has(MimeJSONLD) {
			return MimeJSONLD
		}
		return op.RequestBody[0]
	}

	if ok := op.Responses["200"]; len(ok) > 0 {
		if verb == spec.GET && !isItemPath(path) {
			if ok.Has(MimeJSONLD) {
				return MimeJSONLD
			}
			return MimeJSON
		}
		if ok.Has(MimeJSON) {
			return MimeJSON
		}
		if ok.Has(MimeJSONLD) {
			return MimeJSONLD
		}
		return ok[0]
	}

	return MimeJSON
}
