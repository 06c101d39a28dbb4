package pathutil

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var workspaceGlobLiterals = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`)

// MatchesWorkspacePattern reports whether relativePath matches pattern
// under the narrow workspace-pattern grammar of spec §6: segment-wise
// "*" and "?" wildcards, and "**" matching any number of path segments
// (including zero), anchored to full segments. There are no bracket
// classes and no brace expansion.
//
// A leading "!" on pattern is a negation marker at the caller's level
// (the Workspace Resolver drops a match rather than keeping one); here
// it means "does NOT match" so that negated patterns read naturally at
// call sites that don't want to special-case the prefix.
func MatchesWorkspacePattern(relativePath, pattern string) bool {
	negated := strings.HasPrefix(pattern, "!")
	body := pattern
	if negated {
		body = pattern[1:]
	}

	rel, err := NormalizePathPattern(relativePath, true)
	if err != nil {
		return false
	}

	// Escape the characters doublestar would read as bracket classes,
	// brace alternatives or escapes, so they match literally.
	matched, err := doublestar.Match(workspaceGlobLiterals.Replace(body), rel)
	if err != nil {
		return false
	}
	if negated {
		return !matched
	}
	return matched
}

// IsNegatedWorkspacePattern reports whether pattern carries a leading
// "!" negation marker.
func IsNegatedWorkspacePattern(pattern string) bool {
	return strings.HasPrefix(pattern, "!")
}

// TrimNegation strips a leading "!" from pattern, if present.
func TrimNegation(pattern string) string {
	return strings.TrimPrefix(pattern, "!")
}
