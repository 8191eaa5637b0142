package cli

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
)

// typesRunner invokes the external strict-type generator. Swappable so
// tests don't shell out.
var typesRunner = runTypesGenerator

// runTypesGenerator is a thin wrapper around openapi-typescript: the
// declaration output lands next to the composables as types.ts.
func runTypesGenerator(ctx context.Context, input, outDir string) error {
	out := filepath.Join(outDir, "types.ts")
	cmd := exec.CommandContext(ctx, "npx", "--yes", "openapi-typescript", input, "--output", out)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
