package engine

import (
	"reflect"
	"testing"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

func TestMethods(t *testing.T) {
	t.Parallel()
	item := &spec.PathItem{Entries: []spec.PathEntry{
		{Key: "parameters"}, // metadata, no operation
		verbEntry(spec.POST, nil),
		verbEntry(spec.GET, nil),
		{Key: "head", Op: &spec.Operation{}}, // outside the recognized set
		verbEntry(spec.DELETE, nil),
	}}

	got := Methods(item)
	want := []spec.Verb{spec.POST, spec.GET, spec.DELETE}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Methods: got %v, want %v", got, want)
	}
}

func TestMethodsEmpty(t *testing.T) {
	t.Parallel()
	if got := Methods(nil); got != nil {
		t.Fatalf("Methods(nil): got %v, want nil", got)
	}
	item := &spec.PathItem{Entries: []spec.PathEntry{{Key: "parameters"}}}
	if got := Methods(item); got != nil {
		t.Fatalf("Methods(metadata only): got %v, want nil", got)
	}
}
