package constants

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type cacheKey struct {
	tag string
	id  int64
}

// Resolver answers (typeTag, id) -> display label. The table is read-mostly,
// so resolved pairs are cached in-process; administrative edits go through
// Invalidate.
type Resolver struct {
	db *gorm.DB

	mu    sync.RWMutex
	cache map[cacheKey]string
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:    db,
		cache: make(map[cacheKey]string),
	}
}

// ResolveLabel returns the label for (typeTag, id), or nil when id is nil,
// zero, or unknown. A missing pair is not an error. When the schema carries
// duplicate (typeTag, id) pairs the first row returned by the store wins.
func (r *Resolver) ResolveLabel(ctx context.Context, typeTag string, id *int64) (*string, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}

	key := cacheKey{tag: typeTag, id: *id}
	r.mu.RLock()
	label, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return &label, nil
	}

	var names []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT cnst_name FROM constants
		WHERE cnst_type = ? AND oid = ?
		LIMIT 1
	`, typeTag, *id).Scan(&names).Error
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.Lock()
	r.cache[key] = names[0]
	r.mu.Unlock()
	return &names[0], nil
}

// Labels resolves a batch of ids for one tag in a single query. Unknown ids
// are simply absent from the result map.
func (r *Resolver) Labels(ctx context.Context, typeTag string, ids []int64) (map[int64]string, error) {
	labels := make(map[int64]string, len(ids))
	missing := make([]int64, 0, len(ids))

	r.mu.RLock()
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if label, ok := r.cache[cacheKey{tag: typeTag, id: id}]; ok {
			labels[id] = label
		} else {
			missing = append(missing, id)
		}
	}
	r.mu.RUnlock()

	if len(missing) == 0 {
		return labels, nil
	}

	var rows []struct {
		OID  int64 `gorm:"column:oid"`
		Name string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT oid, cnst_name AS name FROM constants
		WHERE cnst_type = ? AND oid IN ?
	`, typeTag, missing).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	for _, row := range rows {
		if _, seen := labels[row.OID]; seen {
			continue // first row wins on duplicate pairs
		}
		labels[row.OID] = row.Name
		r.cache[cacheKey{tag: typeTag, id: row.OID}] = row.Name
	}
	r.mu.Unlock()
	return labels, nil
}

// Invalidate drops the cache after an administrative edit of the table.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[cacheKey]string)
	r.mu.Unlock()
}
