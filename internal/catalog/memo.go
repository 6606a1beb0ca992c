package catalog

import (
	"strings"
	"sync"

	"storefront/internal/domain"
)

type memoKey struct {
	version     uint64
	hasCategory bool
	category    string
	query       string
}

func keyFor(version uint64, c Criteria) memoKey {
	k := memoKey{version: version, query: strings.TrimSpace(c.Query)}
	if c.CategoryID != nil {
		k.hasCategory = true
		k.category = *c.CategoryID
	}
	return k
}

// Memo remembers the last VisibleProducts result. The catalog version stands
// in for the identity of the product list: callers must pass a new version
// whenever the list changes.
type Memo struct {
	mu     sync.Mutex
	key    memoKey
	result []domain.Product
	valid  bool
	hits   uint64
}

func NewMemo() *Memo {
	return &Memo{}
}

// Visible returns VisibleProducts(all, c), reusing the previous result when
// version and criteria are the same as last time. The returned slice is a copy.
func (m *Memo) Visible(all []domain.Product, version uint64, c Criteria) []domain.Product {
	k := keyFor(version, c)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == k {
		m.hits++
	} else {
		m.result = VisibleProducts(all, c)
		m.key = k
		m.valid = true
	}
	out := make([]domain.Product, len(m.result))
	copy(out, m.result)
	return out
}

// Hits reports how many calls were served from the cache.
func (m *Memo) Hits() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}
