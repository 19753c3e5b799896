package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal résumé and portfolio site",
	Long: `portfolio serves a one-page résumé site with scroll-linked effects,
an ambient particle background and a contact form, or renders the page to a
static file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default $PORTFOLIO_CONFIG)")
}
