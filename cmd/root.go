/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	format  string
	verbose bool

	logger = log.New(os.Stderr, "labcodec: ", 0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labcodec",
	Short: "Converts colors between packed integers, hex, RGB and CIE L*a*b*",
	Long: `Converts colors between 24-bit packed integers, "#RRGGBB" hex strings,
RGB triples and the CIE L*a*b* color space (sRGB primaries, D65 white).

Colors given as arguments are hex strings when they start with '#' and
integer literals (decimal, 0x hex, 0 octal) otherwise. Every result is
rendered through a pongo2 template, see --format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.labcodec.yaml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "pongo2 template rendered for each result")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log intermediate conversion stages")

	setConfigDefaults()
}

func setConfigDefaults() {
	viper.SetDefault("hash", true)
	viper.SetDefault("strict", false)
	for name, tpl := range defaultTemplates {
		viper.SetDefault("templates."+name, tpl)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".labcodec")
	}

	viper.SetEnvPrefix("labcodec")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		logger.Println("using config file:", viper.ConfigFileUsed())
	}
}
