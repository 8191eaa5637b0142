package spec

// Engine-facing view of an OpenAPI document: just enough structure to
// partition paths into resources, enumerate operations, and negotiate
// content types. Built once by BuildSchema and never mutated afterwards.

// Verb is a lowercase HTTP method name as it appears as a path item key.
type Verb string

const (
	GET     Verb = "get"
	POST    Verb = "post"
	PUT     Verb = "put"
	PATCH   Verb = "patch"
	DELETE  Verb = "delete"
	HEAD    Verb = "head"
	OPTIONS Verb = "options"
	TRACE   Verb = "trace"
)

// OperationVerbs is the recognized operation set, in the fixed order used
// for enumeration and for the resource resolver's tag fallback scan.
var OperationVerbs = []Verb{GET, POST, PUT, PATCH, DELETE}

// IsOperationVerb reports whether key names one of the recognized verbs.
// Path item keys outside this set ("parameters", vendor extensions) are
// metadata, not operations.
func IsOperationVerb(key string) bool {
	for _, v := range OperationVerbs {
		if key == string(v) {
			return true
		}
	}
	return false
}

// Schema is the parsed API description: path string -> PathItem.
type Schema struct {
	Paths map[string]*PathItem
}

// PathItem is the ordered set of keys declared under one path. Slice order
// pins the key declaration order, which operation enumeration depends on.
type PathItem struct {
	Entries []PathEntry
}

// PathEntry is one key under a path item. Op is nil for metadata keys.
type PathEntry struct {
	Key string
	Op  *Operation
}

// Operation returns the operation declared for the given verb, or nil.
func (pi *PathItem) Operation(v Verb) *Operation {
	if pi == nil {
		return nil
	}
	for _, e := range pi.Entries {
		if e.Key == string(v) {
			return e.Op
		}
	}
	return nil
}

// Operation describes one (path, verb) pair.
type Operation struct {
	Summary     string
	Tags        []string
	RequestBody Content            // nil when no request body is declared
	Responses   map[string]Content // keyed by status code ("200", "default")
}

// Content is the MIME types of a content map, in declared order.
type Content []string

// Has reports whether the content map declares the given MIME type.
func (c Content) Has(mime string) bool {
	for _, m := range c {
		if m == mime {
			return true
		}
	}
	return false
}
