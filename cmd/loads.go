package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobridge/internal/aashto"
)

var (
	loadsWidth   float64
	loadsLength  float64
	loadsPercent float64
	loadsGirders int
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Compute AASHTO design lane loads for a roadway width",
	Long: `Compute the AASHTO LRFD design lane count, multiple presence factor and
lane load intensity for a roadway width, and the resulting per-girder
nodal live load over a tributary length.

Examples:
  gobridge loads --width 42
  gobridge loads --width 42 --length 135 --girders 6`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadsWidth, "width", "w", 0, "Roadway width (ft) [required]")
	loadsCmd.Flags().Float64VarP(&loadsLength, "length", "l", 0, "Tributary length (ft)")
	loadsCmd.Flags().Float64Var(&loadsPercent, "ll-percent", 100, "Applied live load percentage")
	loadsCmd.Flags().IntVarP(&loadsGirders, "girders", "g", 1, "Number of girder lines")
	loadsCmd.MarkFlagRequired("width")
}

func runLoads(cmd *cobra.Command, args []string) error {
	if loadsWidth <= 0 {
		return fmt.Errorf("roadway width must be positive, got %.2f ft", loadsWidth)
	}

	lanes := aashto.LaneCount(loadsWidth)

	fmt.Println()
	fmt.Println("AASHTO DESIGN LANE LOAD:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roadway Width:\t%.2f ft\n", loadsWidth)
	fmt.Fprintf(w, "  Design Lanes:\t%d\n", lanes)
	fmt.Fprintf(w, "  Multiple Presence Factor:\t%.2f\n", aashto.MultiplePresenceFactor(lanes))
	fmt.Fprintf(w, "  Lane Load:\t%.3f kip/ft\n", aashto.LaneLoadKLF(loadsWidth))
	if loadsLength > 0 {
		fmt.Fprintf(w, "  Tributary Length:\t%.2f ft\n", loadsLength)
		fmt.Fprintf(w, "  Nodal Live Load (%d girders):\t%.2f kips\n",
			loadsGirders, aashto.NodeLiveLoad(loadsWidth, loadsLength, loadsPercent, loadsGirders))
	}
	w.Flush()
	fmt.Println()

	return nil
}
