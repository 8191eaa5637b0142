package spec

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// metadataKeyParameters is the shared-parameters path item key. It is kept
// in the built PathItem so enumeration can be exercised against metadata,
// but it never becomes an operation.
const metadataKeyParameters = "parameters"

// BuildSchema converts a loaded OpenAPI v3 document into the engine Schema.
// kin-openapi does not preserve the document's key order under a path item,
// so verbs materialize in the canonical order get, post, put, patch, delete,
// head, options, trace; that order is what enumeration and emission see.
//
// A document that declares no paths is malformed input and fails here,
// before any generation starts.
func BuildSchema(doc *openapi3.T) (*Schema, error) {
	if doc == nil {
		return nil, &SpecError{Code: InputError, Message: "spec: nil document"}
	}
	if len(doc.Paths) == 0 {
		return nil, &SpecError{Code: ValidationError, Message: "spec: document declares no paths"}
	}

	s := &Schema{Paths: make(map[string]*PathItem, len(doc.Paths))}
	for path, item := range doc.Paths {
		if item == nil {
			continue
		}
		pi := &PathItem{}
		if len(item.Parameters) > 0 {
			pi.Entries = append(pi.Entries, PathEntry{Key: metadataKeyParameters})
		}
		ordered := []struct {
			v Verb
			o *openapi3.Operation
		}{
			{GET, item.Get},
			{POST, item.Post},
			{PUT, item.Put},
			{PATCH, item.Patch},
			{DELETE, item.Delete},
			{HEAD, item.Head},
			{OPTIONS, item.Options},
			{TRACE, item.Trace},
		}
		for _, pair := range ordered {
			if pair.o == nil {
				continue
			}
			pi.Entries = append(pi.Entries, PathEntry{Key: string(pair.v), Op: toOperation(pair.o)})
		}
		if len(pi.Entries) == 0 {
			continue
		}
		s.Paths[path] = pi
	}

	if len(s.Paths) == 0 {
		return nil, &SpecError{Code: ValidationError, Message: "spec: document declares no operations"}
	}
	return s, nil
}

func toOperation(o *openapi3.Operation) *Operation {
	op := &Operation{Summary: strings.TrimSpace(o.Summary)}
	for _, t := range o.Tags {
		if t = strings.TrimSpace(t); t != "" {
			op.Tags = append(op.Tags, t)
		}
	}
	if o.RequestBody != nil && o.RequestBody.Value != nil {
		op.RequestBody = toContent(o.RequestBody.Value.Content)
	}
	if len(o.Responses) > 0 {
		op.Responses = make(map[string]Content, len(o.Responses))
		for code, rref := range o.Responses {
			if rref == nil || rref.Value == nil {
				continue
			}
			if c := toContent(rref.Value.Content); len(c) > 0 {
				op.Responses[code] = c
			}
		}
		if len(op.Responses) == 0 {
			op.Responses = nil
		}
	}
	return op
}

// toContent flattens a kin-openapi content map to its MIME keys. The map
// has no usable order, so keys are sorted; "first declared" fallbacks in
// the negotiator therefore mean lexicographically first for loaded docs.
func toContent(content openapi3.Content) Content {
	if len(content) == 0 {
		return nil
	}
	keys := make([]string, 0, len(content))
	for mime := range content {
		keys = append(keys, mime)
	}
	sort.Strings(keys)
	return Content(keys)
}
