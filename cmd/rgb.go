package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/labcodec/convert"
)

// rgbCmd represents the rgb command
var rgbCmd = &cobra.Command{
	Use:   "rgb COLOR...",
	Short: "Splits colors into red, green and blue bytes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, e := newRenderer(cmd.OutOrStdout(), templateFor("rgb"))
		if e != nil {
			return e
		}

		for _, arg := range args {
			c, e := parseColor(arg, viper.GetBool("strict"))
			if e != nil {
				return e
			}

			rgb := convert.PackedToRGB(c)
			e = r.render(map[string]interface{}{
				"r":      rgb.R,
				"g":      rgb.G,
				"b":      rgb.B,
				"packed": c,
				"hex":    convert.Hex(c),
			})
			if e != nil {
				return e
			}
		}

		return nil
	},
}

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack R G B",
	Short: "Packs red, green and blue bytes into one integer",
	Long: `Packs red, green and blue channel values into r*65536 + g*256 + b.
Channels are not clamped to [0, 255].`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ch [3]int
		for i, arg := range args {
			n, e := parseInt(arg)
			if e != nil {
				return e
			}
			ch[i] = n
		}

		r, e := newRenderer(cmd.OutOrStdout(), templateFor("pack"))
		if e != nil {
			return e
		}

		c := convert.RGBToPacked(convert.RGB{R: ch[0], G: ch[1], B: ch[2]})
		return r.render(map[string]interface{}{
			"packed": c,
			"hex":    convert.Hex(c),
		})
	},
}

func init() {
	rootCmd.AddCommand(rgbCmd)
	rootCmd.AddCommand(packCmd)
}
