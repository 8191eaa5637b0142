package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

func sampleSchema() *spec.Schema {
	ldList := &spec.Operation{Responses: map[string]spec.Content{"200": {MimeJSON, MimeJSONLD}}}
	jsonItem := &spec.Operation{Responses: map[string]spec.Content{"200": {MimeJSON, MimeJSONLD}}}
	mergePatch := &spec.Operation{RequestBody: spec.Content{MimeJSON, MimeMergePatch}}
	return schemaOf(map[string]*spec.PathItem{
		"/api/tasks":      itemWithVerbs(verbEntry(spec.GET, ldList), verbEntry(spec.POST, nil)),
		"/api/tasks/{id}": itemWithVerbs(verbEntry(spec.GET, jsonItem), verbEntry(spec.PATCH, mergePatch), verbEntry(spec.DELETE, nil)),
		// Two raw identities that format to the same output name share a unit.
		"/api/habit-entries": itemWithVerbs(verbEntry(spec.GET, ldList)),
		"/api/habit_entries": itemWithVerbs(verbEntry(spec.POST, nil)),
		"/auth/login":        itemWithVerbs(verbEntry(spec.POST, nil)),
	})
}

func TestUnits(t *testing.T) {
	t.Parallel()
	units, err := Units(sampleSchema())
	if err != nil {
		t.Fatalf("Units: %v", err)
	}

	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	want := []string{"Authentication", "HabitEntries", "Tasks"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unit names: got %v, want %v", names, want)
	}

	// Identity merge: both separator styles land in one unit, with one
	// collision-resolution pass over the combined candidate set.
	he := units[1]
	if !reflect.DeepEqual(he.Resources, []string{"habit-entries", "habit_entries"}) {
		t.Fatalf("merged resources: got %v", he.Resources)
	}
	if len(he.Methods) != 2 {
		t.Fatalf("merged methods: got %d, want 2", len(he.Methods))
	}

	// Method records carry the negotiated content type.
	tasks := units[2]
	byName := map[string]Method{}
	for _, m := range tasks.Methods {
		byName[m.Name] = m
	}
	if m := byName["getTasks"]; m.ContentType != MimeJSONLD {
		t.Errorf("getTasks content type: got %q", m.ContentType)
	}
	if m := byName["getTask"]; m.ContentType != MimeJSON {
		t.Errorf("getTask content type: got %q", m.ContentType)
	}
	if m := byName["patchTask"]; m.ContentType != MimeMergePatch {
		t.Errorf("patchTask content type: got %q", m.ContentType)
	}

	// Path-then-declared-verb order within the unit.
	order := make([]string, 0, len(tasks.Methods))
	for _, m := range tasks.Methods {
		order = append(order, m.Name)
	}
	wantOrder := []string{"getTasks", "createTask", "getTask", "patchTask", "deleteTask"}
	if !reflect.DeepEqual(order, wantOrder) {
		t.Fatalf("method order: got %v, want %v", order, wantOrder)
	}
}

func TestUnitsDeterministic(t *testing.T) {
	t.Parallel()
	s := sampleSchema()
	first, err := Units(s)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Units(s)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pipeline not deterministic:\n%v\nvs\n%v", first, second)
	}
}

func TestUnitsInjectivePerUnit(t *testing.T) {
	t.Parallel()
	units, err := Units(sampleSchema())
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	for _, u := range units {
		seen := map[string]bool{}
		for _, m := range u.Methods {
			if seen[m.Name] {
				t.Errorf("unit %s: duplicate final name %q", u.Name, m.Name)
			}
			seen[m.Name] = true
		}
	}
}

func TestUnitsNoResources(t *testing.T) {
	t.Parallel()
	s := schemaOf(map[string]*spec.PathItem{
		"/unroutable": itemWithVerbs(verbEntry(spec.GET, nil)),
	})
	if _, err := Units(s); !errors.Is(err, ErrNoResources) {
		t.Fatalf("expected ErrNoResources, got %v", err)
	}
}

func TestUnitForUnknownResource(t *testing.T) {
	t.Parallel()
	u := UnitFor("missing", sampleSchema())
	if len(u.Methods) != 0 {
		t.Fatalf("unknown resource: got %d methods, want 0", len(u.Methods))
	}
	if u.Name != "Missing" {
		t.Fatalf("unit name: got %q", u.Name)
	}
}
