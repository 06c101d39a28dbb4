package workspace

// skipDirs lists directory names the manifest-pattern expander and the
// heuristic discoverer never descend into or emit as workspace members,
// even when a wildcard segment would otherwise match them.
var skipDirs = map[string]bool{
	".git":               true,
	".svn":               true,
	".hg":                true,
	"node_modules":       true,
	".next":              true,
	".turbo":             true,
	".vercel":            true,
	"coverage":           true,
	".swc":               true,
	".docusaurus":        true,
	"storybook-static":   true,
}

func isSkipDir(name string) bool {
	return skipDirs[name]
}
