package pathfinder

import (
	"sync"

	"github.com/crossplay/wordquest/pkg/board"
	lru "github.com/hashicorp/golang-lru/simplelru"
)

// Cache memoizes Enumerate results keyed by (board row-major form, word).
// The Quality-Controlled Puzzle Builder re-queries the same candidate
// board against the whole dictionary across threshold-relaxation
// retries, so memoizing within one builder run avoids repeating the
// same DFS. Safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	lru *lru.LRU
}

type cacheKey struct {
	board string
	word  string
}

// NewCache builds a Cache holding at most size entries.
func NewCache(size int) *Cache {
	l, _ := lru.NewLRU(size, nil)
	return &Cache{lru: l}
}

// Enumerate returns Enumerate(b, word), transparently caching the result
// under (b.RowMajor(), word).
func (c *Cache) Enumerate(b *board.Board, word string) []Result {
	key := cacheKey{board: b.RowMajor(), word: word}

	c.mu.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.mu.Unlock()
		return v.([]Result)
	}
	c.mu.Unlock()

	results := Enumerate(b, word)

	c.mu.Lock()
	c.lru.Add(key, results)
	c.mu.Unlock()

	return results
}
