package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var strict bool

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int HEX...",
	Short: "Parses hex strings into packed colors",
	Long: `Parses hex strings into packed integer colors. Leading '#' characters
are optional.

By default parsing is lenient: characters that are not hex digits are skipped
and input without any digit yields 0. With --strict (or "strict: true" in the
config file) such input is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, e := newRenderer(cmd.OutOrStdout(), templateFor("int"))
		if e != nil {
			return e
		}

		for _, arg := range args {
			c, e := parseHex(arg, strict || viper.GetBool("strict"))
			if e != nil {
				return e
			}

			e = r.render(map[string]interface{}{
				"packed": c,
				"hex":    arg,
			})
			if e != nil {
				return e
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(intCmd)

	intCmd.Flags().BoolVar(&strict, "strict", false, "reject input that is not entirely hex digits")
}
