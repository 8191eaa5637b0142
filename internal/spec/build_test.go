package spec

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

const sampleDoc = `openapi: 3.0.0
info:
  title: Habit API
  version: "1.0.0"
paths:
  /api/tasks:
    parameters:
      - in: query
        name: page
        required: false
        schema:
          type: integer
    get:
      summary: List tasks
      responses:
        "200":
          description: ok
          content:
            application/ld+json:
              schema:
                type: object
            application/json:
              schema:
                type: object
    post:
      summary: Create a task
      requestBody:
        content:
          application/json:
            schema:
              type: object
      responses:
        "201":
          description: created
  /api/tasks/{id}:
    patch:
      summary: Patch a task
      parameters:
        - in: path
          name: id
          required: true
          schema:
            type: string
      requestBody:
        content:
          application/merge-patch+json:
            schema:
              type: object
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
`

func loadDoc(t *testing.T, doc string) *openapi3.T {
	t.Helper()
	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData([]byte(strings.TrimSpace(doc)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := parsed.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return parsed
}

func TestBuildSchema(t *testing.T) {
	t.Parallel()
	s, err := BuildSchema(loadDoc(t, sampleDoc))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.Paths) != 2 {
		t.Fatalf("paths: got %d, want 2", len(s.Paths))
	}

	tasks := s.Paths["/api/tasks"]
	if tasks == nil {
		t.Fatalf("missing /api/tasks")
	}
	// Shared parameters come through as a metadata entry, then verbs in
	// canonical order.
	keys := make([]string, 0, len(tasks.Entries))
	for _, e := range tasks.Entries {
		keys = append(keys, e.Key)
	}
	want := []string{"parameters", "get", "post"}
	if len(keys) != len(want) {
		t.Fatalf("entries: got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("entries: got %v, want %v", keys, want)
		}
	}
	if tasks.Entries[0].Op != nil {
		t.Fatalf("metadata entry must carry no operation")
	}

	get := tasks.Operation(GET)
	if get == nil {
		t.Fatalf("missing get operation")
	}
	if get.Summary != "List tasks" {
		t.Errorf("summary: got %q", get.Summary)
	}
	content := get.Responses["200"]
	if !content.Has("application/json") || !content.Has("application/ld+json") {
		t.Errorf("200 content: got %v", content)
	}

	patch := s.Paths["/api/tasks/{id}"].Operation(PATCH)
	if patch == nil {
		t.Fatalf("missing patch operation")
	}
	if !patch.RequestBody.Has("application/merge-patch+json") {
		t.Errorf("request body: got %v", patch.RequestBody)
	}
}

func TestBuildSchemaNoPaths(t *testing.T) {
	t.Parallel()
	_, err := BuildSchema(&openapi3.T{})
	if err == nil {
		t.Fatalf("expected error for document without paths")
	}
	se, ok := err.(*SpecError)
	if !ok {
		t.Fatalf("expected SpecError, got %T", err)
	}
	if se.Code != ValidationError {
		t.Errorf("code: got %q", se.Code)
	}
}

func TestBuildSchemaNilDocument(t *testing.T) {
	t.Parallel()
	if _, err := BuildSchema(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}
