package analysis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yasmramos/veld-bench/internal/jmh"
)

// resultFiles pairs each category with its fixed result filename
// under the results directory.
var resultFiles = []struct {
	category Category
	filename string
}{
	{Scalability, "scalability-results.json"},
	{Contention, "contention-results.json"},
	{Memory, "memory-results.json"},
	{HashCollision, "hash-collision-results.json"},
	{Efficiency, "efficiency-results.json"},
	{LoadFactor, "load-factor-results.json"},
}

// Run loads and analyzes the six fixed result files under dir,
// writing one progress line per category. Missing or malformed files
// degrade to categories without data.
func Run(dir string, progress io.Writer) Set {
	set := make(Set, len(resultFiles))
	for _, rf := range resultFiles {
		fmt.Fprintf(progress, "📊 Analyzing %s results...\n", rf.category) //nolint:errcheck
		res := jmh.Load(filepath.Join(dir, rf.filename))
		if v := Analyzers[rf.category](res); v != nil {
			set[rf.category] = v
		}
	}
	return set
}

// ResultPaths returns the fixed result file paths under dir that
// exist on disk.
func ResultPaths(dir string) []string {
	var paths []string
	for _, rf := range resultFiles {
		p := filepath.Join(dir, rf.filename)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}
