package cmd

import (
	"github.com/spf13/cobra"
)

var alignmentCmd = &cobra.Command{
	Use:   "alignment",
	Short: "Alignment geometry utilities",
	Long: `Evaluate and visualize road alignment geometry: station poses along
compound horizontal curves and parabolic vertical curves.

Use one of the subcommands:
  gobridge alignment station --file align.hcl --station 250
  gobridge alignment profile --file align.hcl --end 500`,
}

func init() {
	rootCmd.AddCommand(alignmentCmd)
}
