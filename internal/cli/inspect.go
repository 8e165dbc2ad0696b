package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oasmap/oasmap/internal/config"
	"github.com/oasmap/oasmap/internal/loader"
	"github.com/oasmap/oasmap/internal/report"
)

func InspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [spec-file]",
		Short: "Print the structure and schema usage map of an OpenAPI spec",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}

	config.BindFlags(cmd)

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	arg := cfg.Spec
	if len(args) > 0 {
		arg = args[0]
	}

	path, err := loader.ResolvePath(arg, cfg.BaseDir, config.DefaultSpecFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Using spec: %s\n", path)

	if _, err := os.Stat(path); err != nil {
		cmd.PrintErrf("Error: spec file not found: %s\n", path)
		cmd.PrintErrf("  resolved from argument %q with base directory %s\n", arg, cfg.BaseDir)
		cmd.PrintErrf("Usage: oasmap inspect [spec-file]\n")
		return fmt.Errorf("spec file not found: %s", path)
	}

	result, err := loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Schemas: %d\n", len(spec.Schemas))
	cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))

	idx := report.BuildIndex(spec.Schemas)
	usages := report.Walk(out, spec, idx, report.Options{SchemaBodies: cfg.Output.SchemaBodies})

	if cfg.Output.UsageMap {
		report.WriteUsageMap(out, usages)
	}

	return nil
}
