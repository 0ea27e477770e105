package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobridge/internal/aashto"
	"github.com/alexiusacademia/gobridge/internal/bridge"
	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/config"
	"github.com/alexiusacademia/gobridge/internal/diagram"
	"github.com/alexiusacademia/gobridge/internal/report"
)

var (
	generateFile        string
	generateOutput      string
	generateReportFile  string
	generatePlanFile    string
	generateProfileFile string
	generateShowProfile bool
	generateNoStabilize bool

	// Direct parameter flags, used when no parameter file is given
	generateSpans         []float64
	generateGirders       int
	generateSpacing       float64
	generateOverhang      float64
	generateGirderType    string
	generatePierTypes     []string
	generateGuided        bool
	generateColumns       int
	generateColumnHeights []float64
	generateIsolation     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a bridge structural model",
	Long: `Generate a complete finite-element-ready bridge model from a parameter
file (JSON or HCL) or from command line flags, and write it as a JSON
model document.

The generated model contains node coordinates and restraints, girder,
cross-beam, pier-cap and column elements, section and material tables,
gravity loads, and depending on the support configuration, triple
friction pendulum bearings, equal-DOF constraints and a deck diaphragm.

Unstable conventional configurations (every pier EXP) are corrected by
default and the correction is reported; use --no-stabilize to emit the
model exactly as configured.

Examples:
  gobridge generate --file bridge.hcl -o model.json
  gobridge generate --spans 120,150,120 --girders 6 --spacing 8 -o model.json
  gobridge generate --file bridge.json --report model.xlsx --profile`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Path to parameter file (.json or .hcl)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "model.json", "Output model document path")
	generateCmd.Flags().StringVar(&generateReportFile, "report", "", "Export an Excel report (.xlsx)")
	generateCmd.Flags().StringVar(&generatePlanFile, "plan", "", "Export a plan-view diagram (png, svg, pdf)")
	generateCmd.Flags().StringVar(&generateProfileFile, "profile-image", "", "Export a vertical profile diagram (png, svg, pdf)")
	generateCmd.Flags().BoolVar(&generateShowProfile, "profile", false, "Show ASCII vertical profile")
	generateCmd.Flags().BoolVar(&generateNoStabilize, "no-stabilize", false, "Do not auto-correct unstable configurations")

	generateCmd.Flags().Float64SliceVar(&generateSpans, "spans", nil, "Span lengths (ft)")
	generateCmd.Flags().IntVar(&generateGirders, "girders", 6, "Number of girder lines")
	generateCmd.Flags().Float64Var(&generateSpacing, "spacing", 8, "Girder spacing (ft)")
	generateCmd.Flags().Float64Var(&generateOverhang, "overhang", 3, "Deck overhang beyond exterior girders (ft)")
	generateCmd.Flags().StringVar(&generateGirderType, "girder-type", "steel", "Girder type: steel or concrete")
	generateCmd.Flags().StringSliceVar(&generatePierTypes, "pier-types", nil, "Per-pier connection types (FIX or EXP)")
	generateCmd.Flags().BoolVar(&generateGuided, "guided", false, "Guided expansion bearings (restrain transverse)")
	generateCmd.Flags().IntVar(&generateColumns, "columns", 2, "Columns per bent")
	generateCmd.Flags().Float64SliceVar(&generateColumnHeights, "column-heights", nil, "Per-pier column heights (ft)")
	generateCmd.Flags().StringVar(&generateIsolation, "isolation", "none", "Isolation strategy: none, bearing or base")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	params, err := generateParams()
	if err != nil {
		return err
	}

	result, err := bridge.Build(params, bridge.Options{AutoStabilize: !generateNoStabilize})
	if err != nil {
		return err
	}

	if err := result.Model.SaveToFile(generateOutput); err != nil {
		return fmt.Errorf("writing model document: %w", err)
	}

	printGenerateReport(params, result)

	end := 0.0
	for _, s := range params.SpanLengthsFt {
		end += s
	}

	if generateShowProfile {
		fmt.Println(diagram.ProfileASCII(params.AlignmentSpec(), 0, end, 65))
	}

	if generateReportFile != "" {
		if err := report.Export(result.Model, generateReportFile); err != nil {
			return fmt.Errorf("writing Excel report: %w", err)
		}
		fmt.Printf("  Excel report written to: %s\n", generateReportFile)
	}

	if generatePlanFile != "" {
		if err := diagram.ExportPlanDiagram(params.AlignmentSpec(), result.Model, 0, end, generatePlanFile); err != nil {
			return fmt.Errorf("exporting plan diagram: %w", err)
		}
		fmt.Printf("  Plan diagram written to: %s\n", generatePlanFile)
	}
	if generateProfileFile != "" {
		if err := diagram.ExportProfileDiagram(params.AlignmentSpec(), 0, end, generateProfileFile); err != nil {
			return fmt.Errorf("exporting profile diagram: %w", err)
		}
		fmt.Printf("  Profile diagram written to: %s\n", generateProfileFile)
	}

	fmt.Println()
	return nil
}

// generateParams builds the parameter set from the file or from flags.
func generateParams() (*bridge.Params, error) {
	if generateFile != "" {
		return config.Load(generateFile)
	}
	if len(generateSpans) == 0 {
		return nil, fmt.Errorf("either --file or --spans is required")
	}

	params := bridge.DefaultParams()
	params.Name = fmt.Sprintf("%d-span bridge", len(generateSpans))
	params.SpanLengthsFt = generateSpans
	params.NumGirders = generateGirders
	params.GirderSpacingFt = generateSpacing
	params.DeckOverhangFt = generateOverhang
	params.GirderType = catalog.GirderType(strings.ToLower(generateGirderType))
	params.GuidedExpansion = generateGuided
	params.ColumnsPerBent = generateColumns
	params.ColumnHeightsFt = generateColumnHeights
	params.Isolation = bridge.Isolation(strings.ToLower(generateIsolation))

	params.PierTypes = nil
	for _, t := range generatePierTypes {
		params.PierTypes = append(params.PierTypes, bridge.PierType(strings.ToUpper(t)))
	}

	return params, nil
}

func printGenerateReport(params *bridge.Params, result *bridge.BuildResult) {
	m := result.Model

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BRIDGE MODEL GENERATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CONFIGURATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model:\t%s\n", m.Info.Name)
	fmt.Fprintf(w, "  Spans:\t%d\n", len(params.SpanLengthsFt))
	fmt.Fprintf(w, "  Girder lines:\t%d (%s)\n", params.NumGirders, params.GirderType)
	fmt.Fprintf(w, "  Roadway width:\t%.1f ft\n", params.RoadwayWidthFt())
	fmt.Fprintf(w, "  Isolation:\t%s\n", params.Isolation)
	w.Flush()
	fmt.Println()

	fmt.Println("AASHTO LIVE LOAD:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	width := params.RoadwayWidthFt()
	lanes := aashto.LaneCount(width)
	fmt.Fprintf(w, "  Design lanes:\t%d\n", lanes)
	fmt.Fprintf(w, "  Multiple presence factor:\t%.2f\n", aashto.MultiplePresenceFactor(lanes))
	fmt.Fprintf(w, "  Lane load:\t%.3f kip/ft\n", aashto.LaneLoadKLF(width))
	w.Flush()
	fmt.Println()

	fmt.Println("GENERATED MODEL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(m.Nodes))
	fmt.Fprintf(w, "  Elements:\t%d\n", len(m.Elements))
	fmt.Fprintf(w, "  Loads:\t%d\n", len(m.Loads))
	fmt.Fprintf(w, "  Bearings:\t%d\n", len(m.Bearings))
	fmt.Fprintf(w, "  Equal-DOF constraints:\t%d\n", len(m.EqualDOF))
	fmt.Fprintf(w, "  Rigid diaphragms:\t%d\n", len(m.Diaphragms))
	w.Flush()
	fmt.Println()

	fmt.Println("STABILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.Stability.Stable {
		fmt.Println("  Configuration is longitudinally stable.")
	} else {
		fmt.Printf("  ⚠ %s\n", result.Stability.Reason)
	}
	for _, note := range result.Notes {
		fmt.Printf("  • %s\n", note)
	}
	fmt.Println()

	fmt.Printf("  Model document written to: %s\n", generateOutput)
}
