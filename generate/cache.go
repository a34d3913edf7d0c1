package generate

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache memoizes unit transforms across File and Apply calls. A result
// depends only on the unit's text, its base indentation and the transform
// applied, so hits are invocation-order independent. Safe for concurrent
// use.
type Cache struct {
	entries sync.Map // uint64 -> string
}

// NewCache creates an empty transform cache.
func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) lookup(key uint64) (string, bool) {
	if v, ok := c.entries.Load(key); ok {
		return v.(string), true
	}
	return "", false
}

func (c *Cache) store(key uint64, out string) {
	c.entries.Store(key, out)
}

const (
	kindStructural = 's'
	kindTextual    = 't'
)

// unitKey hashes the inputs a unit transform depends on. Indent is pure
// whitespace, so the NUL byte separates it from the unit text
// unambiguously.
func unitKey(kind byte, indent, unit string) uint64 {
	h := xxhash.New()
	_, _ = h.Write([]byte{kind})
	_, _ = h.WriteString(indent)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(unit)
	return h.Sum64()
}
