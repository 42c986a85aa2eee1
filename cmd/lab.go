package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/labcodec/convert"
)

var reference bool

// labCmd represents the lab command
var labCmd = &cobra.Command{
	Use:   "lab COLOR...",
	Short: "Converts colors to CIE L*a*b*",
	Long: `Converts colors to CIE L*a*b* through linear sRGB and CIE XYZ (D65).

With --reference the same color is also converted with go-chromath and both
results are printed. --verbose logs every intermediate stage.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := templateFor("lab")
		if reference && format == "" {
			src += referenceSuffix
		}

		r, e := newRenderer(cmd.OutOrStdout(), src)
		if e != nil {
			return e
		}

		for _, arg := range args {
			c, e := parseColor(arg, viper.GetBool("strict"))
			if e != nil {
				return e
			}

			if e := r.render(labContext(c)); e != nil {
				return e
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(labCmd)

	labCmd.Flags().BoolVar(&reference, "reference", false, "also print go-chromath's conversion")
}

// labContext runs c through the pipeline stage by stage.
func labContext(c int) map[string]interface{} {
	rgb := convert.PackedToRGB(c)
	srgb := convert.RGBToSRGB(rgb)
	xyz := convert.SRGBToXYZ(srgb)
	lab := convert.XYZToLab(xyz)

	if verbose {
		logger.Printf("%s: %v -> linear %+v -> %v -> %v", convert.Hex(c), rgb, srgb, xyz, lab)
	}

	ctxt := map[string]interface{}{
		"L":      lab.L,
		"a":      lab.A,
		"b":      lab.B,
		"X":      xyz.X,
		"Y":      xyz.Y,
		"Z":      xyz.Z,
		"packed": c,
		"hex":    convert.Hex(c),
	}
	if reference {
		ref := convert.ReferenceLab(c)
		ctxt["ref_L"] = ref.L
		ctxt["ref_a"] = ref.A
		ctxt["ref_b"] = ref.B
	}

	return ctxt
}
