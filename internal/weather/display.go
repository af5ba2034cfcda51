package weather

import "sync"

// Display is the shared rendered-output surface. Lookups take a generation
// before fetching; a commit from a lookup that started before the newest one
// is rejected, so a slow early response can never overwrite a later lookup's
// cards. Prior output is replaced only on commit, never on a failed fetch.
type Display struct {
	mu     sync.RWMutex
	gen    uint64
	latest *LookupResult
}

func NewDisplay() *Display {
	return &Display{}
}

// Begin registers a new lookup and returns its generation.
func (d *Display) Begin() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	return d.gen
}

// Commit stores the result unless a newer lookup has begun since gen was
// issued. It reports whether the result became the displayed one.
func (d *Display) Commit(gen uint64, result *LookupResult) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.latest = result
	return true
}

// Latest returns the most recently committed lookup result.
func (d *Display) Latest() (*LookupResult, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.latest == nil {
		return nil, false
	}
	return d.latest, true
}
