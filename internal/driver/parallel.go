package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/eval"
	"ember/internal/source"
)

// EvalDirResult is the outcome for one file of an EvalDir run.
type EvalDirResult struct {
	Path    string
	FileSet *source.FileSet
	Result  eval.Result
	Bag     *diag.Bag
	Err     error // I/O failure; diagnostics go to Bag
}

// listSourceFiles returns every *.em file under dir, sorted for a
// deterministic result order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".em") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// EvalDir evaluates every *.em file under dir in parallel. Each file gets
// its own FileSet, arenas and Bag, so the workers share nothing but the
// read-only vars map. Results come back in sorted path order regardless of
// completion order.
func EvalDir(ctx context.Context, dir string, vars map[string]float64, maxDiagnostics, jobs int) ([]EvalDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]EvalDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Eval(path, vars, maxDiagnostics)
			if err != nil {
				results[i] = EvalDirResult{Path: path, Bag: diag.NewBag(maxDiagnostics), Err: err}
				return nil
			}
			results[i] = EvalDirResult{
				Path:    path,
				FileSet: res.FileSet,
				Result:  res.Result,
				Bag:     res.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RelPath shortens path relative to base for display; on failure the
// original path comes back unchanged.
func RelPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
