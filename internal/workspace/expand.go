package workspace

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// expandPattern walks root according to pattern's slash-separated
// segments and returns the absolute directories that satisfy it: every
// non-wildcard segment must exist as a directory, every wildcard
// segment ("*", "?") is matched against sibling directory names
// (skipping skipDirs), and "**" matches zero or more segments. A
// directory only terminates a match if it contains a package.json
// file.
func expandPattern(root, pattern string) []string {
	segments := strings.Split(pattern, "/")
	return expandSegments(root, segments)
}

func expandSegments(currentDir string, segments []string) []string {
	if len(segments) == 0 {
		if hasPackageJSON(currentDir) {
			return []string{currentDir}
		}
		return nil
	}

	seg := segments[0]
	rest := segments[1:]

	switch {
	case seg == "**":
		var results []string
		results = append(results, expandSegments(currentDir, rest)...)

		entries, err := os.ReadDir(currentDir)
		if err != nil {
			return results
		}
		for _, e := range entries {
			if !e.IsDir() || isSkipDir(e.Name()) {
				continue
			}
			child := filepath.Join(currentDir, e.Name())
			results = append(results, expandSegments(child, segments)...)
		}
		return results

	case strings.ContainsAny(seg, "*?"):
		entries, err := os.ReadDir(currentDir)
		if err != nil {
			return nil
		}
		re := wildcardSegmentToRegex(seg)
		var results []string
		for _, e := range entries {
			if !e.IsDir() || isSkipDir(e.Name()) {
				continue
			}
			if !re.MatchString(e.Name()) {
				continue
			}
			child := filepath.Join(currentDir, e.Name())
			results = append(results, expandSegments(child, rest)...)
		}
		return results

	default:
		child := filepath.Join(currentDir, seg)
		info, err := os.Stat(child)
		if err != nil || !info.IsDir() {
			return nil
		}
		return expandSegments(child, rest)
	}
}

func hasPackageJSON(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "package.json"))
	return err == nil && !info.IsDir()
}

func wildcardSegmentToRegex(seg string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range seg {
		switch r {
		case '*':
			sb.WriteString("[^/]*")
		case '?':
			sb.WriteString("[^/]")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}
