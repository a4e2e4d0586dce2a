package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/driver"
	"ember/internal/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] (file.em | dir)",
	Short: "Evaluate ember programs and print their results",
	Long: `Eval computes the numeric value of a program. Given a directory it
evaluates every .em file inside it in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArray("var", nil, "variable binding name=value (repeatable)")
	evalCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	evalCmd.Flags().Bool("clear-cache", false, "drop all cached results before evaluating")
	evalCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = NumCPU)")
}

func runEval(cmd *cobra.Command, args []string) error {
	target := args[0]

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
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if clearCache {
		cache, err := driver.OpenDiskCache("ember")
		if err != nil {
			return err
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	vars, err := sessionVars(startDir, flagVars)
	if err != nil {
		return err
	}

	if info.IsDir() {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		return evalDirectory(cmd, target, vars, maxDiag, jobs)
	}
	return evalFile(cmd, target, vars, maxDiag, useCache)
}

func evalFile(cmd *cobra.Command, path string, vars map[string]float64, maxDiag int, useCache bool) error {
	var cache *driver.DiskCache
	var key driver.Digest
	if useCache {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cache, err = driver.OpenDiskCache("ember")
		if err != nil {
			return err
		}
		key = driver.EvalKey(content, vars)

		var cached driver.CachedEval
		hit, err := cache.Get(key, &cached)
		if err != nil {
			return err
		}
		if hit && !cached.HadErrors {
			printResult(eval.Result{Value: cached.Value, HasValue: cached.HasValue})
			return nil
		}
	}

	result, err := driver.Eval(path, vars, maxDiag)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	if cache != nil {
		payload := driver.CachedEval{
			Schema:    driver.SchemaVersion,
			Value:     result.Result.Value,
			HasValue:  result.Result.HasValue,
			HadErrors: result.Bag.HasErrors(),
		}
		if err := cache.Put(key, &payload); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to update cache: %v\n", err)
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("evaluation produced errors")
	}
	printResult(result.Result)
	return nil
}

func evalDirectory(cmd *cobra.Command, dir string, vars map[string]float64, maxDiag, jobs int) error {
	results, err := driver.EvalDir(cmd.Context(), dir, vars, maxDiag, jobs)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Printf("no .em files under %s\n", dir)
		return nil
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			failed++
			continue
		}
		reportDiagnostics(cmd, res.Bag, res.FileSet)
		if res.Bag != nil && res.Bag.HasErrors() {
			failed++
			continue
		}
		fmt.Printf("%s: ", driver.RelPath(dir, res.Path))
		printResult(res.Result)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func printResult(res eval.Result) {
	if res.HasValue {
		fmt.Printf("Result: %g\n", res.Value)
	} else {
		fmt.Println("No result")
	}
}
