package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.em",
	Short: "Tokenize an ember source file",
	Long:  `Tokenize breaks down an ember source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
