package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nwgo/networth-projector/internal/config"
	"github.com/nwgo/networth-projector/internal/output"
	"github.com/nwgo/networth-projector/internal/simulation"
)

var (
	projectInput  string
	projectFormat string
	projectOutput string
	projectDebug  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a projection over a scenario file",
	Long: `Reads a scenario from a YAML or JSON file, runs the projection, and
writes the result in the chosen format (console, csv, or json).`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&projectInput, "input", "i", "", "scenario file (.yaml or .json)")
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "console", "output format: "+strings.Join(output.FormatterNames(), ", "))
	projectCmd.Flags().StringVarP(&projectOutput, "output", "o", "", "write to file instead of stdout")
	projectCmd.Flags().BoolVar(&projectDebug, "debug", false, "log per-year engine detail to stderr")
	_ = projectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	input, err := config.LoadFromFile(projectInput)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	engine := simulation.NewEngine()
	if projectDebug {
		engine.SetLogger(stderrLogger{})
	}

	formatter := output.GetFormatterByName(projectFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %s", projectFormat, strings.Join(output.FormatterNames(), ", "))
	}

	records := engine.Project(input)

	data, err := formatter.Format(records)
	if err != nil {
		return fmt.Errorf("failed to format projection: %w", err)
	}

	if projectOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(projectOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", projectOutput, err)
	}
	fmt.Printf("Projection written to %s\n", projectOutput)
	return nil
}

// stderrLogger satisfies the engine's Logger interface for --debug runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }
