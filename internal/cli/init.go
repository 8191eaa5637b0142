package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// InitConfig captures the options for the init command.
type InitConfig struct {
	OutputPath string
	Force      bool
	Verbose    bool
}

var initRunner = runInit

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a sample openapi-composables configuration file",
		Long:  "Scaffold a commented openapi-composables configuration file that documents available options.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			return initRunner(cmd.Context(), &InitConfig{
				OutputPath: out,
				Force:      force,
				Verbose:    verbose,
			})
		},
	}

	cmd.Flags().String("out", "openapi-composables.yaml", "Where to write the sample config file")
	cmd.Flags().Bool("force", false, "Overwrite the target file if it already exists")

	return cmd
}

const sampleConfig = `# openapi-composables configuration.
# Every field can also be set per-run via flags; flags win over this file.

# Path or URL to the OpenAPI/Swagger document.
input: openapi.yaml

# Directory the composables are written into.
out: composables

# Runtime call builder the generated code imports.
# builder-import: ~/composables/useApiCaller
# builder-factory: useApiCaller

# Only emit composables for these resources (raw identities).
# resources: [tasks, habit-entries]

# Also run the external strict-type generator (openapi-typescript).
types: false

# Overwrite a non-empty output directory.
force: false
`

func runInit(ctx context.Context, cfg *InitConfig) error {
	_ = ctx

	out := strings.TrimSpace(cfg.OutputPath)
	if out == "" {
		out = "openapi-composables.yaml"
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return newUsageError(fmt.Sprintf("init: resolve path %q: %v", out, err))
	}

	if _, err := os.Stat(abs); err == nil && !cfg.Force {
		return newUsageError(fmt.Sprintf("init: %s already exists (use --force to overwrite)", abs))
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return newUsageError(fmt.Sprintf("init: create parent directory: %v", err))
	}
	if err := os.WriteFile(abs, []byte(sampleConfig), 0o644); err != nil {
		return newUsageError(fmt.Sprintf("init: write %s: %v", abs, err))
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stdout, "Wrote sample config to %s\n", abs)
	}
	return nil
}
