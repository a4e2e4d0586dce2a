package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.em",
	Short: "Parse an ember source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|xml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("parsing produced errors")
	}

	switch format {
	case "tree":
		return diagfmt.FormatTree(os.Stdout, result.Builder, result.FileID)
	case "xml":
		return diagfmt.FormatXML(os.Stdout, result.Builder, result.FileID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
