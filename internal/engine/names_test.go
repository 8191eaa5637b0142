package engine

import (
	"testing"

	"github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

func TestSynthesize(t *testing.T) {
	t.Parallel()
	s := schemaOf(map[string]*spec.PathItem{
		"/api/tasks":                itemWithVerbs(verbEntry(spec.GET, nil), verbEntry(spec.POST, nil)),
		"/api/tasks/{id}":           itemWithVerbs(verbEntry(spec.GET, nil), verbEntry(spec.PATCH, nil), verbEntry(spec.DELETE, nil), verbEntry(spec.PUT, nil)),
		"/api/tasks/reorder":        itemWithVerbs(verbEntry(spec.POST, nil)),
		"/api/habits/{id}/streak":   itemWithVerbs(verbEntry(spec.GET, nil)),
		"/api/habit-entries":        itemWithVerbs(verbEntry(spec.GET, nil)),
		"/api/stats/{entityType}":   itemWithVerbs(verbEntry(spec.GET, nil)),
		"/auth/login":               itemWithVerbs(verbEntry(spec.POST, nil)),
		"/api/auth/token":           itemWithVerbs(verbEntry(spec.POST, nil)),
		"/unroutable":               itemWithVerbs(verbEntry(spec.GET, nil)),
	})

	cases := []struct {
		path string
		verb spec.Verb
		want string
	}{
		// Collection GET and item-creating POST read differently.
		{"/api/tasks", spec.GET, "getTasks"},
		{"/api/tasks", spec.POST, "createTask"},
		// Single item by identifier: singular, verb-specific.
		{"/api/tasks/{id}", spec.GET, "getTask"},
		{"/api/tasks/{id}", spec.PATCH, "patchTask"},
		{"/api/tasks/{id}", spec.DELETE, "deleteTask"},
		{"/api/tasks/{id}", spec.PUT, "putTask"},
		// Actions attach to the resource name.
		{"/api/tasks/reorder", spec.POST, "reorderTasks"},
		{"/api/habits/{id}/streak", spec.GET, "streakHabit"},
		// Dash-form identities format into the name.
		{"/api/habit-entries", spec.GET, "getHabitEntries"},
		// Custom-parameter lookups carry a By qualifier.
		{"/api/stats/{entityType}", spec.GET, "getStatsByEntityType"},
		// Auth paths resolve to authentication, then name by action.
		{"/auth/login", spec.POST, "loginAuthentication"},
		{"/api/auth/token", spec.POST, "tokenAuthentication"},
		// No resource: bare verb.
		{"/unroutable", spec.GET, "get"},
	}
	for _, tc := range cases {
		if got := Synthesize(tc.path, tc.verb, s); got != tc.want {
			t.Errorf("Synthesize(%s %s): got %q, want %q", tc.verb, tc.path, got, tc.want)
		}
	}
}

func TestActionSegment(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path string
		want string
	}{
		{"/api/tasks", ""},
		{"/api/tasks/{id}", ""},
		{"/api/tasks/reorder", "reorder"},
		{"/api/habits/{id}/streak", "streak"},
		{"/auth/login", "login"},
		{"/api", ""},
		{"/", ""},
	}
	for _, tc := range cases {
		if got := actionSegment(splitPath(tc.path)); got != tc.want {
			t.Errorf("actionSegment(%q): got %q, want %q", tc.path, got, tc.want)
		}
	}
}
