package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nwgo/networth-projector/internal/config"
)

var exampleOutput string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example scenario file",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "o", "scenario.yaml", "destination file")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	input := config.CreateExampleInput(time.Now().Year())

	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode example: %w", err)
	}

	if err := os.WriteFile(exampleOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exampleOutput, err)
	}

	fmt.Printf("Example scenario written to %s\n", exampleOutput)
	return nil
}
