// Package composables renders one TypeScript composable file per emitted
// unit, plus an index barrel and a JSON manifest of every generated method.
package composables

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Habityzer/nuxt-openapi-composables/internal/engine"
	genspec "github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

// Options controls how the emitter renders the composable set.
type Options struct {
	OutDir         string   // required; target directory to write into
	BuilderImport  string   // import path of the runtime call builder
	BuilderFactory string   // exported factory name in BuilderImport
	Resources      []string // when set, only emit units for these identities
	Force          bool     // overwrite a non-empty output directory
	DryRun         bool     // don't write, only plan
	Verbose        bool
}

// DefaultBuilderImport and DefaultBuilderFactory locate the runtime helper
// generated code calls into when the host does not customize it.
const (
	DefaultBuilderImport  = "~/composables/useApiCaller"
	DefaultBuilderFactory = "useApiCaller"
)

// PlannedFile describes a file the emitter intends to write.
type PlannedFile struct {
	RelPath string
	Size    int
	Mode    os.FileMode
}

// Result returns the emitted units, the units skipped as empty, and the
// planned files in deterministic order.
type Result struct {
	Units   []engine.Unit
	Skipped []string
	Planned []PlannedFile
}

// Emit derives the emitted units from the schema and renders them. A
// schema in which no path routes to a resource surfaces
// engine.ErrNoResources; a unit that ends up with zero methods is skipped
// and reported in Result.Skipped, never an error.
func Emit(ctx context.Context, s *genspec.Schema, opts Options) (*Result, error) {
	_ = ctx
	if s == nil {
		return nil, fmt.Errorf("composables: nil schema")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("composables: OutDir is required")
	}
	if strings.TrimSpace(opts.BuilderImport) == "" {
		opts.BuilderImport = DefaultBuilderImport
	}
	if strings.TrimSpace(opts.BuilderFactory) == "" {
		opts.BuilderFactory = DefaultBuilderFactory
	}

	units, err := engine.Units(s)
	if err != nil {
		return nil, err
	}
	units = filterUnits(units, opts.Resources)

	res := &Result{}
	files := map[string][]byte{}
	for _, u := range units {
		if len(u.Methods) == 0 {
			res.Skipped = append(res.Skipped, u.Name)
			continue
		}
		files[composableFileName(u.Name)] = []byte(renderComposable(u, s, opts))
		res.Units = append(res.Units, u)
	}
	if len(res.Units) > 0 {
		files["index.ts"] = []byte(renderIndex(res.Units))
		manifest, err := json.MarshalIndent(res.Units, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("composables: marshal manifest: %w", err)
		}
		files["manifest.json"] = append(manifest, '\n')
	}

	rels := make([]string, 0, len(files))
	for p := range files {
		rels = append(rels, filepath.ToSlash(p))
	}
	sort.Strings(rels)
	for _, rel := range rels {
		res.Planned = append(res.Planned, PlannedFile{RelPath: rel, Size: len(files[rel]), Mode: 0o644})
	}

	if !opts.DryRun && len(files) > 0 {
		if err := writeFiles(opts.OutDir, files, opts.Force); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// filterUnits keeps only the units whose name matches one of the requested
// resource identities after canonicalization. An empty request keeps all.
func filterUnits(units []engine.Unit, resources []string) []engine.Unit {
	if len(resources) == 0 {
		return units
	}
	want := make(map[string]struct{}, len(resources))
	for _, r := range resources {
		want[engine.Format(r)] = struct{}{}
	}
	out := units[:0]
	for _, u := range units {
		if _, ok := want[u.Name]; ok {
			out = append(out, u)
		}
	}
	return out
}

func composableFileName(unitName string) string {
	return "use" + unitName + "Api.ts"
}

func writeFiles(outDir string, files map[string][]byte, force bool) error {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("composables: resolve out dir: %w", err)
	}
	if st, serr := os.Stat(abs); serr == nil && st.IsDir() && !force {
		entries, rerr := os.ReadDir(abs)
		if rerr == nil && len(entries) > 0 {
			return fmt.Errorf("composables: output directory %q is not empty (use --force to overwrite)", abs)
		}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("composables: mkdir: %w", err)
	}
	for rel, content := range files {
		if err := writeFileAtomic(abs, rel, content); err != nil {
			return fmt.Errorf("composables: write %s: %w", rel, err)
		}
	}
	return nil
}

// writeFileAtomic writes via a temp file in the target directory followed
// by a rename, so readers never observe a half-written composable.
func writeFileAtomic(baseDir, relPath string, content []byte) error {
	full := filepath.Join(baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(relPath), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(full), ".tmp-composables-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpPath, full); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
