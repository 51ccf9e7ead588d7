// Command networth projects household net worth across a lifetime and can
// serve the projection engine over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "networth",
	Short: "Household net-worth projection",
	Long: `networth runs deterministic year-by-year net-worth projections for a
household holding assets and pensions in USD and JPY, from the primary
person's birth year through their expected life span.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
