package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/diagfmt"
	"ember/internal/project"
	"ember/internal/source"
)

// useColor resolves the persistent --color flag against the terminal.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

// reportDiagnostics pretty-prints the bag to stderr.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}

// parseVarFlags turns repeated --var name=value flags into bindings.
func parseVarFlags(defs []string) (map[string]float64, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	vars := make(map[string]float64, len(defs))
	for _, def := range defs {
		name, raw, ok := strings.Cut(def, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=value", def)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", def, err)
		}
		vars[name] = v
	}
	return vars, nil
}

// sessionVars layers command-line bindings over the manifest's [eval] vars.
func sessionVars(startDir string, flagVars map[string]float64) (map[string]float64, error) {
	manifest, ok, err := project.LoadFromDir(startDir)
	if err != nil {
		return nil, err
	}
	if !ok && flagVars == nil {
		return nil, nil
	}
	vars := make(map[string]float64)
	if ok {
		for name, v := range manifest.Eval.Vars {
			vars[name] = v
		}
	}
	for name, v := range flagVars {
		vars[name] = v
	}
	return vars, nil
}
