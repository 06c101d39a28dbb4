// Package assets correlates a public image-asset tree against a
// source-code tree by substring reference, returning the asset files
// no source file appears to reference.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".avif": true,
	".ico":  true,
	".bmp":  true,
}

var sourceExtensions = map[string]bool{
	".js":   true,
	".jsx":  true,
	".ts":   true,
	".tsx":  true,
	".css":  true,
	".scss": true,
	".sass": true,
	".less": true,
	".html": true,
	".md":   true,
	".mdx":  true,
}

var defaultSourceDirectories = []string{"src", "app", "pages", "components", "lib", "utils", "hooks"}

var defaultSkipDirs = map[string]bool{
	".git":             true,
	".svn":             true,
	".hg":               true,
	".next":             true,
	".turbo":            true,
	".vercel":           true,
	"node_modules":      true,
	"coverage":          true,
	".swc":              true,
	".docusaurus":       true,
	"storybook-static":  true,
	"public":            true,
	"dist":              true,
	"build":             true,
	"out":               true,
}

type publicAsset struct {
	fullPath     string
	filename     string
	relativePath string
}

// Options configures a single FindUnused call.
type Options struct {
	SourceDirectories []string
	ExtraSkipDirs     []string
}

// FindUnused runs the unused-asset algorithm of spec §4.F: it requires
// a public/ directory under root (returning nothing if absent), walks
// it for image files, then scans source files for a substring
// reference to each asset's relative path or, for globally unique
// basenames, its bare filename. It returns the absolute paths of
// assets no source file appears to reference.
func FindUnused(root string, opts Options) []string {
	publicDir := filepath.Join(root, "public")
	info, err := os.Stat(publicDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	skipDirs := mergeSkipDirs(opts.ExtraSkipDirs)
	assetsFound := walkPublicImages(publicDir)
	if len(assetsFound) == 0 {
		return nil
	}

	basenameCounts := make(map[string]int, len(assetsFound))
	for _, a := range assetsFound {
		basenameCounts[a.filename]++
	}

	sourceDirs := opts.SourceDirectories
	if len(sourceDirs) == 0 {
		sourceDirs = defaultSourceDirectories
	}
	sourceFiles := collectSourceFiles(root, sourceDirs, skipDirs)

	unresolved := make(map[int]bool, len(assetsFound))
	for i := range assetsFound {
		unresolved[i] = true
	}

	for _, sourcePath := range sourceFiles {
		if len(unresolved) == 0 {
			break
		}
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			continue
		}
		content := string(data)

		for i := range assetsFound {
			if !unresolved[i] {
				continue
			}
			a := assetsFound[i]
			if strings.Contains(content, a.relativePath) || strings.Contains(content, "/"+a.relativePath) {
				delete(unresolved, i)
				continue
			}
			if basenameCounts[a.filename] == 1 && strings.Contains(content, a.filename) {
				delete(unresolved, i)
			}
		}
	}

	result := make([]string, 0, len(unresolved))
	for i := range assetsFound {
		if unresolved[i] {
			result = append(result, assetsFound[i].fullPath)
		}
	}
	return result
}

func mergeSkipDirs(extra []string) map[string]bool {
	merged := make(map[string]bool, len(defaultSkipDirs)+len(extra))
	for k := range defaultSkipDirs {
		merged[k] = true
	}
	for _, e := range extra {
		merged[e] = true
	}
	return merged
}

func walkPublicImages(publicDir string) []publicAsset {
	var found []publicAsset
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if e.IsDir() {
				walk(full)
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !imageExtensions[ext] {
				continue
			}
			rel, err := filepath.Rel(publicDir, full)
			if err != nil {
				continue
			}
			found = append(found, publicAsset{
				fullPath:     full,
				filename:     e.Name(),
				relativePath: filepath.ToSlash(rel),
			})
		}
	}
	walk(publicDir)
	return found
}

func collectSourceFiles(root string, sourceDirs []string, skipDirs map[string]bool) []string {
	var files []string

	entries, err := os.ReadDir(root)
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if sourceExtensions[ext] {
				files = append(files, filepath.Join(root, e.Name()))
			}
		}
	}

	for _, dirName := range sourceDirs {
		dir := filepath.Join(root, dirName)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		files = append(files, walkSourceFiles(dir, skipDirs)...)
	}
	return files
}

func walkSourceFiles(dir string, skipDirs map[string]bool) []string {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if skipDirs[e.Name()] {
				continue
			}
			files = append(files, walkSourceFiles(full, skipDirs)...)
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if sourceExtensions[ext] {
			files = append(files, full)
		}
	}
	return files
}
