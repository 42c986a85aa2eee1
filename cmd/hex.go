package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/labcodec/convert"
)

var noHash bool

// hexCmd represents the hex command
var hexCmd = &cobra.Command{
	Use:   "hex COLOR...",
	Short: "Formats packed colors as hex strings",
	Long: `Formats packed integer colors as six-digit uppercase hex strings.

  labcodec hex 255 0xC0FFEE      # #0000FF, #C0FFEE
  labcodec hex --no-hash 16777215 # FFFFFF`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := viper.GetBool("hash") && !noHash

		r, e := newRenderer(cmd.OutOrStdout(), templateFor("hex"))
		if e != nil {
			return e
		}

		for _, arg := range args {
			c, e := parseColor(arg, viper.GetBool("strict"))
			if e != nil {
				return e
			}

			e = r.render(map[string]interface{}{
				"hex":    convert.PackedToHex(c, hash),
				"packed": c,
			})
			if e != nil {
				return e
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(hexCmd)

	hexCmd.Flags().BoolVar(&noHash, "no-hash", false, "omit the leading '#'")
}
