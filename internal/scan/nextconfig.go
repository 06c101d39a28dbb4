package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kodelint/next-prune/internal/pathutil"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
	distDirRe      = regexp.MustCompile("\\bdistDir\\s*:\\s*(['\"`])([^'\"`]+)\\1")
)

var nextConfigNames = []string{
	"next.config.js",
	"next.config.mjs",
	"next.config.cjs",
	"next.config.ts",
	"next.config.mts",
	"next.config.cts",
}

// findNextConfigDistDir reads the first next.config.* file present in
// dir and extracts a custom distDir, normalized and resolved relative
// to dir. It returns "", false if no config file is present, none
// declares distDir, or the declared value is unsafe (absolute,
// drive-prefixed, or a traversal).
func findNextConfigDistDir(dir string) (string, bool) {
	for _, name := range nextConfigNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		stripped := stripComments(string(data))
		m := distDirRe.FindStringSubmatch(stripped)
		if m == nil {
			return "", false
		}

		raw := strings.TrimSpace(m[2])
		if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
			return "", false
		}
		normalized, err := pathutil.NormalizePathPattern(raw, false)
		if err != nil {
			return "", false
		}
		return filepath.Join(dir, filepath.FromSlash(normalized)), true
	}
	return "", false
}

func stripComments(source string) string {
	source = blockCommentRe.ReplaceAllString(source, "")
	source = lineCommentRe.ReplaceAllString(source, "")
	return source
}
