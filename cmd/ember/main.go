package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember expression language toolchain",
	Long:  `Ember tokenizes, parses and evaluates small arithmetic programs`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
