package main

import (
	"fmt"
	"os"

	"github.com/clonelens/clonelens/internal/logger"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "clonelens",
	Short: "Detect near-clone smart contracts from their ABIs",
	Long: `clonelens fingerprints contract ABIs with a 64-bit SimHash over
weighted interface tokens, measures selector-set overlap and ranks
contract pairs by a combined similarity score.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		switch {
		case verbose:
			level = "debug"
		case quiet:
			level = "error"
		}
		logger.InitConsole(level)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(serveCmd)
}
