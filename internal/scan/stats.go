package scan

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// computeStatsParallel fills in each item's recursive ArtifactStats in
// parallel across items; within a single item, child directories fan
// out the same way.
func computeStatsParallel(items []ScanItem) {
	var wg sync.WaitGroup
	wg.Add(len(items))
	for i := range items {
		i := i
		go func() {
			defer wg.Done()
			items[i].Stats = computeStats(items[i].Path)
		}()
	}
	wg.Wait()
}

func computeStats(path string) ArtifactStats {
	info, err := os.Lstat(path)
	if err != nil {
		return ArtifactStats{Error: err.Error()}
	}
	if !info.IsDir() {
		return ArtifactStats{Size: info.Size(), FileCount: 1, Mtime: info.ModTime()}
	}
	return computeDirStats(path, info.ModTime())
}

// computeDirStats sums size and file count recursively and tracks the
// most recent mtime across self and every descendant. A subtree that
// cannot be listed contributes nothing and is not treated as an error
// on the parent; only the top-level candidate's own Lstat failure
// (handled in computeStats) surfaces as ScanItem.Stats.Error.
func computeDirStats(dir string, selfMtime time.Time) ArtifactStats {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ArtifactStats{IsDirectory: true, Mtime: selfMtime}
	}

	results := make([]ArtifactStats, len(entries))
	var wg sync.WaitGroup
	wg.Add(len(entries))
	for i, e := range entries {
		i, e := i, e
		go func() {
			defer wg.Done()
			childPath := filepath.Join(dir, e.Name())
			info, err := os.Lstat(childPath)
			if err != nil {
				return
			}
			if info.IsDir() {
				results[i] = computeDirStats(childPath, info.ModTime())
			} else {
				results[i] = ArtifactStats{Size: info.Size(), FileCount: 1, Mtime: info.ModTime()}
			}
		}()
	}
	wg.Wait()

	var totalSize, totalFiles int64
	maxMtime := selfMtime
	for _, r := range results {
		totalSize += r.Size
		totalFiles += r.FileCount
		if r.Mtime.After(maxMtime) {
			maxMtime = r.Mtime
		}
	}

	return ArtifactStats{
		Size:        totalSize,
		FileCount:   totalFiles,
		Mtime:       maxMtime,
		IsDirectory: true,
	}
}
