package scan

// artifactNames are directory names that are always candidates
// (cleanupType=artifact), regardless of depth, and are never recursed
// into.
var artifactNames = map[string]bool{
	".next":              true,
	"out":                true,
	".turbo":              true,
	".vercel_build_output": true,
	"coverage":            true,
	".swc":                true,
	".docusaurus":         true,
	"storybook-static":    true,
}

// defaultSkipNames are directory names never recursed into and never
// emitted as candidates, unless the traversal handles them first: names
// that are also artifactNames (.next, .turbo, coverage, ...) are emitted
// as artifacts, and node_modules and .vercel are special-cased.
var defaultSkipNames = map[string]bool{
	".git":             true,
	".svn":              true,
	".hg":               true,
	".next":             true,
	".turbo":            true,
	".vercel":           true,
	"node_modules":      true,
	"coverage":          true,
	".swc":              true,
	".docusaurus":       true,
	"storybook-static":  true,
}

// projectLocalPmCachePaths are relative, forward-slash POSIX paths
// checked only directly under each scan root (not recursively); each
// one that exists as a directory is emitted with cleanupType=pm-cache.
var projectLocalPmCachePaths = []string{
	".npm",
	".pnpm-store",
	".yarn/cache",
	".yarn/unplugged",
	".bun/install/cache",
}

func isArtifactName(name string) bool {
	return artifactNames[name]
}

func isDefaultSkipName(name string, userSkips map[string]bool) bool {
	return defaultSkipNames[name] || userSkips[name]
}
