package assets

import (
	"os"

	"github.com/kodelint/next-prune/internal/config"
	"github.com/kodelint/next-prune/internal/scan"
)

// ToScanItems wraps unused-asset paths as ScanItems so the rest of the
// pipeline (classification, policy, deletion) can treat them exactly
// like any other candidate.
func ToScanItems(paths []string, scope config.CleanupScope) []scan.ScanItem {
	items := make([]scan.ScanItem, 0, len(paths))
	for _, path := range paths {
		items = append(items, scan.ScanItem{
			Path:         path,
			Stats:        statFile(path),
			CleanupScope: scope,
			CleanupType:  scan.CleanupTypeAsset,
		})
	}
	return items
}

func statFile(path string) scan.ArtifactStats {
	info, err := os.Lstat(path)
	if err != nil {
		return scan.ArtifactStats{Error: err.Error()}
	}
	return scan.ArtifactStats{Size: info.Size(), FileCount: 1, Mtime: info.ModTime()}
}
