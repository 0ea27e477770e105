package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobridge/internal/diagram"
)

var (
	profileFile    string
	profileStart   float64
	profileEnd     float64
	profileSamples int
	profileBearing float64
	profileGrade   float64
	profileRefElev float64
	profileExport  string
	profilePlan    bool
)

var alignmentProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Draw the alignment profile",
	Long: `Draw the vertical profile (and optionally the horizontal plan) of an
alignment between two stations as a terminal graph, or export it as an
image file.

Examples:
  gobridge alignment profile --file bridge.hcl --end 500
  gobridge alignment profile --file bridge.hcl --end 500 --plan
  gobridge alignment profile --file bridge.hcl --end 500 -o profile.png`,
	RunE: runAlignmentProfile,
}

func init() {
	alignmentCmd.AddCommand(alignmentProfileCmd)

	alignmentProfileCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Parameter file with an alignment block (.json or .hcl)")
	alignmentProfileCmd.Flags().Float64Var(&profileStart, "start", 0, "Start station (ft)")
	alignmentProfileCmd.Flags().Float64Var(&profileEnd, "end", 0, "End station (ft) [required]")
	alignmentProfileCmd.Flags().IntVar(&profileSamples, "samples", 65, "Number of profile samples")
	alignmentProfileCmd.Flags().Float64Var(&profileBearing, "entry-bearing", 0, "Entry bearing (deg), used without --file")
	alignmentProfileCmd.Flags().Float64Var(&profileGrade, "entry-grade", 0, "Entry grade (percent), used without --file")
	alignmentProfileCmd.Flags().Float64Var(&profileRefElev, "ref-elevation", 0, "Reference elevation (ft), used without --file")
	alignmentProfileCmd.Flags().StringVarP(&profileExport, "output", "o", "", "Export profile to an image file (png, svg, pdf)")
	alignmentProfileCmd.Flags().BoolVar(&profilePlan, "plan", false, "Also draw the horizontal plan view")
	alignmentProfileCmd.MarkFlagRequired("end")
}

func runAlignmentProfile(cmd *cobra.Command, args []string) error {
	spec, err := alignmentSpecFromFlags(profileFile, profileRefElev, profileBearing, profileGrade)
	if err != nil {
		return err
	}

	fmt.Println(diagram.ProfileASCII(spec, profileStart, profileEnd, profileSamples))
	if profilePlan {
		fmt.Println(diagram.PlanASCII(spec, profileStart, profileEnd, profileSamples))
	}

	if profileExport != "" {
		if err := diagram.ExportProfileDiagram(spec, profileStart, profileEnd, profileExport); err != nil {
			return fmt.Errorf("exporting profile diagram: %w", err)
		}
		fmt.Printf("Profile diagram exported to: %s\n", profileExport)
	}

	return nil
}
