package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ember/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Start an interactive evaluation session",
	Long: `Repl reads expressions line by line and prints their values. Bindings
from ember.toml and --var flags stay in effect for the whole session.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringArray("var", nil, "variable binding name=value (repeatable)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	varDefs, err := cmd.Flags().GetStringArray("var")
	if err != nil {
		return fmt.Errorf("failed to get var flag: %w", err)
	}
	flagVars, err := parseVarFlags(varDefs)
	if err != nil {
		return err
	}
	vars, err := sessionVars(".", flagVars)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewREPL(vars, maxDiag))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
