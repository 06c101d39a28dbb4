package scan

import (
	"sync"

	"github.com/kodelint/next-prune/internal/config"
)

// discovered is the shared, mutex-protected collector every concurrent
// directory walker emits candidates into, keyed by real path so the
// "workspace beats project" collision rule and cross-root
// deduplication both fall out of a single map.
type discovered struct {
	mu         sync.Mutex
	byRealPath map[string]*ScanItem
}

func newDiscovered() *discovered {
	return &discovered{byRealPath: make(map[string]*ScanItem)}
}

func (d *discovered) emit(item ScanItem, realPath string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.byRealPath[realPath]
	if !ok {
		clone := item
		d.byRealPath[realPath] = &clone
		return
	}
	if existing.CleanupScope != config.ScopeWorkspace && item.CleanupScope == config.ScopeWorkspace {
		clone := item
		d.byRealPath[realPath] = &clone
	}
}

func (d *discovered) items() []ScanItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]ScanItem, 0, len(d.byRealPath))
	for _, v := range d.byRealPath {
		items = append(items, *v)
	}
	return items
}
