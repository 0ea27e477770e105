package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobridge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobridge",
	Short: "Bridge Structural Model Generator",
	Long: `gobridge - Go Bridge Model Generator

A CLI tool that generates finite-element-ready structural models for
multi-span highway bridges laid out along an arbitrary road alignment.

This tool helps structural engineers produce:
  - Node, element, section and material tables from a small parameter set
  - AASHTO lane-load and tributary dead-load assignments
  - Conventional (FIX/EXP) and TFP-isolated support configurations
  - Curved alignments with compound horizontal and parabolic vertical curves

The emitted JSON model document is consumed by the companion viewer and
analysis service.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobridge v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Bridge Structural Model Generator                    ║")
		fmt.Printf("  ║   %s ©  %s                                 ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that generates analysis-ready bridge models along")
		fmt.Println("  an arbitrary road alignment.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Deterministic node/element/bearing/constraint generation")
		fmt.Println("    • Compound horizontal curves and parabolic vertical curves")
		fmt.Println("    • AASHTO lane count and multiple presence load rules")
		fmt.Println("    • Triple friction pendulum isolation at bearing or base level")
		fmt.Println()
		fmt.Println("  Use 'gobridge --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
