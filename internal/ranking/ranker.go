package ranking

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
)

// Ranker ranks a fixed career list and memoizes results per selection.
type Ranker struct {
	careers []catalog.Career
	logger  *zap.Logger

	cacheMu sync.RWMutex
	cache   map[string]*Recommendations
}

func NewRanker(careers []catalog.Career, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		careers: careers,
		logger:  logger,
		cache:   make(map[string]*Recommendations),
	}
}

// Rank returns the ranked careers for the selection. The result is a deep
// copy the caller may modify.
func (r *Ranker) Rank(selected []string) *Recommendations {
	key := selectionKey(selected)

	r.cacheMu.RLock()
	cached, ok := r.cache[key]
	r.cacheMu.RUnlock()
	if ok {
		r.logger.Debug("ranking cache hit", zap.Strings("selected", selected))
		return cached.Clone()
	}

	ranked := Rank(selected, r.careers)

	// Concurrent misses compute the same result; the first stored entry wins.
	r.cacheMu.Lock()
	if existing, ok := r.cache[key]; ok {
		ranked = existing
	} else {
		r.cache[key] = ranked
	}
	r.cacheMu.Unlock()

	r.logger.Debug("ranked careers",
		zap.Strings("selected", selected),
		zap.Strings("order", ranked.IDs()),
	)

	return ranked.Clone()
}

// CacheLen reports how many selections are memoized.
func (r *Ranker) CacheLen() int {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()
	return len(r.cache)
}

// selectionKey hashes the normalized selection so that order and duplicates
// do not produce distinct entries.
func selectionKey(selected []string) string {
	needles := normalize(selected)
	sort.Strings(needles)

	unique := make([]string, 0, len(needles))
	for _, n := range needles {
		if len(unique) > 0 && unique[len(unique)-1] == n {
			continue
		}
		unique = append(unique, n)
	}

	sum := sha256.Sum256([]byte(strings.Join(unique, "\x00")))
	return fmt.Sprintf("%x", sum[:])
}
